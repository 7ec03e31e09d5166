package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "gallery.toml"

// Config holds all configuration for a gallery build.
type Config struct {
	Input     string      `mapstructure:"input"`
	Output    string      `mapstructure:"output"`
	Theme     ThemeConfig `mapstructure:"theme"`
	Thumbnail Size        `mapstructure:"thumbnail"`
	// Resize is the optional target size for full-size copies. When nil,
	// sources are copied unchanged.
	Resize *Size       `mapstructure:"resize"`
	Build  BuildConfig `mapstructure:"build"`
}

// ThemeConfig points at the template/static directory and carries the grid
// layout hints passed through to the templates.
type ThemeConfig struct {
	Path              string `mapstructure:"path"`
	ImageColumns      int    `mapstructure:"image_columns"`
	CollectionColumns int    `mapstructure:"collection_columns"`
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// BuildConfig holds knobs for the build itself.
type BuildConfig struct {
	// Workers is the image pipeline parallelism, 0 means one per CPU.
	Workers int `mapstructure:"workers"`
	// Hook is an optional shell command run before the build starts.
	Hook string `mapstructure:"hook"`
}

// ErrInputNotSet is returned when the config has no input directory.
var ErrInputNotSet = errors.New("input directory not set")

// ErrOutputNotSet is returned when the config has no output directory.
var ErrOutputNotSet = errors.New("output directory not set")

// Load reads the TOML config from path (DefaultFile when empty) and applies
// defaults and validation.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", path, err)
	}

	if cfg.Input == "" {
		return nil, ErrInputNotSet
	}
	if cfg.Output == "" {
		return nil, ErrOutputNotSet
	}
	if cfg.Thumbnail.Width <= 0 || cfg.Thumbnail.Height <= 0 {
		return nil, fmt.Errorf("invalid thumbnail size %dx%d", cfg.Thumbnail.Width, cfg.Thumbnail.Height)
	}
	if cfg.Resize != nil && (cfg.Resize.Width <= 0 || cfg.Resize.Height <= 0) {
		return nil, fmt.Errorf("invalid resize size %dx%d", cfg.Resize.Width, cfg.Resize.Height)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "input")
	v.SetDefault("output", "_build")

	v.SetDefault("theme.path", "theme")
	v.SetDefault("theme.image_columns", 4)
	v.SetDefault("theme.collection_columns", 3)

	v.SetDefault("thumbnail.width", 450)
	v.SetDefault("thumbnail.height", 300)

	v.SetDefault("build.workers", 0)
	v.SetDefault("build.hook", "")
}

// TemplatesDir returns the directory holding the theme's templates.
func (c *Config) TemplatesDir() string {
	return filepath.Join(c.Theme.Path, "templates")
}

// StaticDir returns the theme's static asset directory and whether it exists.
func (c *Config) StaticDir() (string, bool) {
	dir := filepath.Join(c.Theme.Path, "static")
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return dir, true
}

const starterConfig = `input = "input"
output = "_build"

[theme]
path = "theme"
image_columns = 4
collection_columns = 3

[thumbnail]
width = 450
height = 300

# Uncomment to resize full-size images instead of copying them verbatim.
# [resize]
# width = 1920
# height = 1280

[build]
# 0 means one worker per CPU.
workers = 0
`

// WriteStarter writes a commented starter config to path. It refuses to
// overwrite an existing file.
func WriteStarter(path string) error {
	if path == "" {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return os.WriteFile(path, []byte(starterConfig), 0644)
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"photo-gallery/pkg/config"
	"photo-gallery/pkg/render"
	"photo-gallery/pkg/services"
)

// newBuildCmd creates a new command for building the static gallery
func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the static gallery",
		Long: `Build the static gallery: scan the input tree, regenerate stale thumbnails
and full-size copies in parallel, and render one page per collection.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			if err := runBuild(cfg); err != nil {
				log.Fatalf("Build failed: %v", err)
			}
		},
	}
}

// runBuild runs the whole pipeline: hook, static assets, scan, transform,
// render. Per-image failures are reported by the pipeline and do not abort
// the build; everything else here is fatal.
func runBuild(cfg *config.Config) error {
	if _, err := os.Stat(cfg.Input); err != nil {
		return fmt.Errorf("input directory %s does not exist", cfg.Input)
	}
	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}

	if cfg.Build.Hook != "" {
		log.Infof("Running build hook: %s", cfg.Build.Hook)
		hook := exec.Command("sh", "-c", cfg.Build.Hook)
		hook.Stdout = os.Stdout
		hook.Stderr = os.Stderr
		if err := hook.Run(); err != nil {
			return fmt.Errorf("build hook failed: %w", err)
		}
	}

	if staticDir, ok := cfg.StaticDir(); ok {
		log.Infof("Copying static assets from %s", staticDir)
		if err := services.CopyStatic(staticDir, cfg.Output); err != nil {
			return err
		}
	}

	log.Infof("Scanning %s", cfg.Input)
	root, err := services.NewScanner(cfg).Scan()
	if err != nil {
		return err
	}
	if root == nil {
		return errors.New("no images found")
	}

	items := root.AllItems()
	stale := services.FilterStale(items)
	log.Infof("Found %d images, %d need processing", len(items), len(stale))

	summary := services.NewPipeline(cfg).Run(stale)
	if summary.Failed > 0 {
		log.Warnf("%d images failed processing and will be left out", summary.Failed)
	}

	renderer := render.NewPugRenderer(cfg.TemplatesDir())
	return services.NewAssembler(cfg, renderer).WriteTree(root)
}

package cmd

import (
	"github.com/spf13/cobra"

	"photo-gallery/pkg/config"
)

// Configuration flags
var cfgFile string

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "photo-gallery",
		Short: "Photo Gallery is a static photo gallery generator",
		Long: `Photo Gallery builds a static HTML gallery from a directory tree of images.
It discovers nested collections, regenerates thumbnails and resized copies only
when sources changed, and renders one page per collection from a pug theme.`,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the config file (default: ./"+config.DefaultFile+")")

	// Add commands to root
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPublishCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"photo-gallery/pkg/config"
)

// newNewCmd creates a new command for writing a starter config file
func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a new " + config.DefaultFile + " config",
		Long:  `Create a commented starter config file in the current directory.`,
		Run: func(cmd *cobra.Command, args []string) {
			path := cfgFile
			if path == "" {
				path = config.DefaultFile
			}
			if err := config.WriteStarter(path); err != nil {
				log.Fatalf("Failed to write config: %v", err)
			}
			fmt.Printf("Wrote %s\n", path)
		},
	}
}

package cmd

import (
	"fmt"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var servePort string

// newServeCmd creates a new command for previewing the built gallery
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the built gallery locally",
		Long:  `Serve the built output directory over HTTP for a local preview.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			if _, err := os.Stat(cfg.Output); err != nil {
				log.Fatalf("Output directory %s does not exist, run build first", cfg.Output)
			}

			http.Handle("/", http.FileServer(http.Dir(cfg.Output)))

			fmt.Printf("Serving %s at http://localhost:%s/\n", cfg.Output, servePort)
			if err := http.ListenAndServe(":"+servePort, nil); err != nil {
				log.Fatalf("Server error: %v", err)
			}
		},
	}

	cmd.Flags().StringVarP(&servePort, "port", "p", "8080", "Port to listen on")

	return cmd
}

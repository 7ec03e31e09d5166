package cmd

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"photo-gallery/pkg/publish"
)

var publishBucket string

// newPublishCmd creates a new command for uploading the gallery to GCS
func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the built gallery to a Cloud Storage bucket",
		Long: `Upload the built output directory to a Google Cloud Storage bucket.
Objects whose size already matches the local file are skipped.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			bucket := publishBucket
			if bucket == "" {
				bucket = os.Getenv("BUCKET_NAME")
			}
			if bucket == "" {
				log.Fatalf("No bucket given: use --bucket or set BUCKET_NAME")
			}

			if _, err := os.Stat(cfg.Output); err != nil {
				log.Fatalf("Output directory %s does not exist, run build first", cfg.Output)
			}

			stats, err := publish.Upload(context.Background(), bucket, cfg.Output)
			if err != nil {
				log.Fatalf("Publish failed: %v", err)
			}

			fmt.Printf("\nSummary:\n")
			fmt.Printf("  Uploaded: %d\n", stats.Uploaded)
			fmt.Printf("  Skipped (up to date): %d\n", stats.Skipped)
			fmt.Printf("  Failed: %d\n", stats.Failed)
		},
	}

	cmd.Flags().StringVarP(&publishBucket, "bucket", "b", "", "Destination bucket name (overrides BUCKET_NAME)")

	return cmd
}

package cmd

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"photo-gallery/pkg/models"
	"photo-gallery/pkg/services"
)

// newListCmd creates a new command for listing discovered collections
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all collections",
		Long:  `List the collections discovered under the input directory, with image counts.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			root, err := services.NewScanner(cfg).Scan()
			if err != nil {
				log.Fatalf("Scan failed: %v", err)
			}
			if root == nil {
				fmt.Println("No images found")
				return
			}

			fmt.Println("Collections:")
			fmt.Println("============")
			listCollections(root, 0)
			fmt.Printf("\nTotal: %d images\n", len(root.AllItems()))
		},
	}
}

// listCollections prints the collection tree with indentation
func listCollections(collection *models.Collection, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s (images: %d)\n", indent, collection.Title(), len(collection.Items))

	for _, child := range collection.Collections {
		listCollections(child, depth+1)
	}
}

// Package publish uploads a built gallery to a Google Cloud Storage bucket.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
)

// Stats summarizes an upload run.
type Stats struct {
	Uploaded int
	Skipped  int
	Failed   int
}

// Upload syncs the output directory into the bucket. Objects whose size
// already matches the local file are skipped; individual upload failures
// are logged and counted without stopping the sync.
func Upload(ctx context.Context, bucketName, outputDir string) (Stats, error) {
	var stats Stats

	client, err := storage.NewClient(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Warnf("Error closing storage client: %v", err)
		}
	}()

	bucket := client.Bucket(bucketName)

	existing, err := existingObjects(ctx, bucket)
	if err != nil {
		return stats, err
	}

	err = filepath.WalkDir(outputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(outputDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		if size, ok := existing[name]; ok && size == info.Size() {
			stats.Skipped++
			return nil
		}

		if err := uploadFile(ctx, bucket, path, name); err != nil {
			log.Warnf("Error uploading %s: %v", name, err)
			stats.Failed++
			return nil
		}
		stats.Uploaded++
		return nil
	})

	return stats, err
}

// existingObjects lists the bucket into a name-to-size map.
func existingObjects(ctx context.Context, bucket *storage.BucketHandle) (map[string]int64, error) {
	objects := make(map[string]int64)

	it := bucket.Objects(ctx, nil)
	for {
		obj, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating objects: %w", err)
		}
		objects[obj.Name] = obj.Size
	}

	return objects, nil
}

// uploadFile streams one local file into the bucket.
func uploadFile(ctx context.Context, bucket *storage.BucketHandle, src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("os.Open: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("Error closing %s: %v", src, err)
		}
	}()

	writer := bucket.Object(dst).NewWriter(ctx)
	if ctype := mime.TypeByExtension(filepath.Ext(dst)); ctype != "" {
		writer.ContentType = ctype
	}

	if _, err := io.Copy(writer, f); err != nil {
		return fmt.Errorf("Writer.Write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("Writer.Close: %w", err)
	}
	return nil
}

package services

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	log "github.com/sirupsen/logrus"

	"photo-gallery/pkg/config"
	"photo-gallery/pkg/images"
	"photo-gallery/pkg/models"
)

// FailureKind classifies why processing a single item failed.
type FailureKind int

const (
	// FailureSourceRead means the source image is missing or unreadable.
	FailureSourceRead FailureKind = iota
	// FailureDecode means the source is not a valid image.
	FailureDecode
	// FailureWrite means an output artifact could not be written.
	FailureWrite
	// FailureMkdir means an output directory could not be created.
	FailureMkdir
)

// String returns a short label for the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureSourceRead:
		return "source unreadable"
	case FailureDecode:
		return "decode failed"
	case FailureWrite:
		return "write failed"
	case FailureMkdir:
		return "mkdir failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ProcessError is the per-item failure reported over the progress channel.
type ProcessError struct {
	Kind FailureKind
	Path string
	Err  error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// ProcessResult is one progress message: the processed item and its outcome.
type ProcessResult struct {
	Item models.Item
	Err  error
}

// Summary aggregates the outcome of a pipeline run. Individual failures are
// collected rather than aborting the batch.
type Summary struct {
	Processed int
	Failed    int
	Failures  []ProcessResult
}

// Pipeline regenerates thumbnails and full-size outputs for stale items
// using a fixed-size worker pool.
type Pipeline struct {
	cfg     *config.Config
	workers int
}

// NewPipeline creates a pipeline. Worker count comes from the build config,
// defaulting to one worker per available CPU.
func NewPipeline(cfg *config.Config) *Pipeline {
	workers := cfg.Build.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pipeline{cfg: cfg, workers: workers}
}

// Run processes all items and blocks until every progress message has been
// received. One failing item never stops the others; the caller gets a
// summary with per-item failures. A zero-item batch is a no-op.
func (p *Pipeline) Run(items []models.Item) Summary {
	if len(items) == 0 {
		return Summary{}
	}

	log.Infof("Processing %d images with %d workers", len(items), p.workers)

	jobs := make(chan models.Item)
	results := make(chan ProcessResult, len(items))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range jobs {
				results <- ProcessResult{Item: item, Err: p.process(item)}
			}
		}()
	}

	// Single consumer: drains exactly one message per submitted item, so
	// the pipeline cannot finish before the last worker has reported.
	var summary Summary
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < len(items); i++ {
			res := <-results
			if res.Err != nil {
				summary.Failed++
				summary.Failures = append(summary.Failures, res)
				log.Warnf("Skipping %s: %v", res.Item.Source, res.Err)
				continue
			}
			summary.Processed++
		}
	}()

	for _, item := range items {
		jobs <- item
	}
	close(jobs)

	wg.Wait()
	<-done

	log.Infof("Processed %d images, %d failed", summary.Processed, summary.Failed)
	return summary
}

// process regenerates whatever is stale for one item. The thumbnail and the
// full-size output are checked independently.
func (p *Pipeline) process(item models.Item) error {
	if _, err := os.Stat(item.Source); err != nil {
		return &ProcessError{Kind: FailureSourceRead, Path: item.Source, Err: err}
	}

	needThumb := IsStale(item.Thumbnail, item.Source)
	needOutput := IsStale(item.Output, item.Source)
	if !needThumb && !needOutput {
		return nil
	}

	// The source is decoded at most once, even when both artifacts are
	// regenerated.
	var source image.Image
	load := func() error {
		if source != nil {
			return nil
		}
		img, err := images.Load(item.Source)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				return &ProcessError{Kind: FailureSourceRead, Path: item.Source, Err: err}
			}
			return &ProcessError{Kind: FailureDecode, Path: item.Source, Err: err}
		}
		source = img
		return nil
	}

	if needThumb {
		if err := os.MkdirAll(filepath.Dir(item.Thumbnail), 0755); err != nil {
			return &ProcessError{Kind: FailureMkdir, Path: filepath.Dir(item.Thumbnail), Err: err}
		}
		if err := load(); err != nil {
			return err
		}
		if err := images.SaveFill(source, item.Thumbnail, p.cfg.Thumbnail.Width, p.cfg.Thumbnail.Height); err != nil {
			return &ProcessError{Kind: FailureWrite, Path: item.Thumbnail, Err: err}
		}
	}

	if needOutput {
		if err := os.MkdirAll(filepath.Dir(item.Output), 0755); err != nil {
			return &ProcessError{Kind: FailureMkdir, Path: filepath.Dir(item.Output), Err: err}
		}
		if p.cfg.Resize != nil {
			if err := load(); err != nil {
				return err
			}
			if err := images.SaveFill(source, item.Output, p.cfg.Resize.Width, p.cfg.Resize.Height); err != nil {
				return &ProcessError{Kind: FailureWrite, Path: item.Output, Err: err}
			}
		} else if err := images.Copy(item.Source, item.Output); err != nil {
			return &ProcessError{Kind: FailureWrite, Path: item.Output, Err: err}
		}
	}

	return nil
}

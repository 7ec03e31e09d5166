package images

import (
	"fmt"
	"image"
	"os"

	// Decoders for the formats a gallery output tree can contain.
	_ "image/jpeg"

	"github.com/patrickmn/go-cache"
)

type dimensions struct {
	width  int
	height int
}

// DimensionCache reads image dimensions without decoding pixel data and
// memoizes them. The same output file is consulted once per build even when
// it appears on several pages.
type DimensionCache struct {
	cache *cache.Cache
}

// NewDimensionCache returns an empty cache. Entries never expire; the cache
// lives for the duration of one build.
func NewDimensionCache() *DimensionCache {
	return &DimensionCache{cache: cache.New(cache.NoExpiration, 0)}
}

// Dimensions returns the pixel width and height of the image at path.
func (d *DimensionCache) Dimensions(path string) (int, int, error) {
	if v, ok := d.cache.Get(path); ok {
		dims := v.(dimensions)
		return dims.width, dims.height, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}

	d.cache.Set(path, dimensions{width: cfg.Width, height: cfg.Height}, cache.NoExpiration)
	return cfg.Width, cfg.Height, nil
}

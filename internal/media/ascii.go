package media

import (
	"context"
	"image"
	"strings"
	"sync"

	"github.com/qeesung/image2ascii/convert"
)

// RenderASCII converts an image to coloured ASCII art of the given cell size.
func RenderASCII(img image.Image, width, height int) string {
	converter := convert.NewImageConverter()

	opts := convert.DefaultOptions
	opts.FixedWidth = width
	opts.FixedHeight = height
	opts.Colored = true
	opts.Ratio = 0.5 // terminal cells are about twice as tall as wide

	return strings.TrimRight(converter.Image2ASCIIString(img, &opts), "\n")
}

type artKey struct {
	url           string
	width, height int
}

// ArtCache fetches and renders images, remembering results per URL and size.
type ArtCache struct {
	source Source

	mu  sync.Mutex
	art map[artKey]string
}

// NewArtCache wraps source with a render cache.
func NewArtCache(source Source) *ArtCache {
	return &ArtCache{source: source, art: make(map[artKey]string)}
}

// Render returns the ASCII art for url at the given size, fetching it on a miss.
func (c *ArtCache) Render(ctx context.Context, url string, width, height int) (string, error) {
	key := artKey{url: url, width: width, height: height}

	c.mu.Lock()
	if art, ok := c.art[key]; ok {
		c.mu.Unlock()
		return art, nil
	}
	c.mu.Unlock()

	img, err := c.source.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	art := RenderASCII(img, width, height)

	c.mu.Lock()
	c.art[key] = art
	c.mu.Unlock()
	return art, nil
}

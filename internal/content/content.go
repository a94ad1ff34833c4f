package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"shree/internal/gallery"
	"shree/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// Default returns the built-in page content.
func Default() (*model.Content, error) {
	return Parse(defaultDocument)
}

// Load reads page content from path, or the built-in content when path is empty.
func Load(path string) (*model.Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a content document. Unknown keys are rejected.
func Parse(data []byte) (*model.Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c model.Content
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the fields the page cannot render without.
func Validate(c *model.Content) error {
	var errs []error

	if strings.TrimSpace(c.Brand.Name) == "" {
		errs = append(errs, errors.New("brand.name is required"))
	}
	if len(c.Gallery.Images) == 0 {
		errs = append(errs, errors.New("gallery.images needs at least one image"))
	}
	for i, img := range c.Gallery.Images {
		if strings.TrimSpace(img.Title) == "" {
			errs = append(errs, fmt.Errorf("gallery.images[%d].title is required", i))
		}
		if err := checkURL(img.URL); err != nil {
			errs = append(errs, fmt.Errorf("gallery.images[%d].url: %w", i, err))
		}
	}
	for i, link := range c.Order.Links {
		if strings.TrimSpace(link.Platform) == "" {
			errs = append(errs, fmt.Errorf("order.links[%d].platform is required", i))
		}
		if err := checkURL(link.URL); err != nil {
			errs = append(errs, fmt.Errorf("order.links[%d].url: %w", i, err))
		}
	}
	for i, r := range c.Reviews.Items {
		if r.Rating < 1 || r.Rating > 5 {
			errs = append(errs, fmt.Errorf("reviews.items[%d].rating must be between 1 and 5", i))
		}
	}

	return errors.Join(errs...)
}

// Catalog builds the gallery catalog from the content's images.
func Catalog(c *model.Content) (gallery.Catalog, error) {
	items := make([]gallery.Item, 0, len(c.Gallery.Images))
	for _, img := range c.Gallery.Images {
		items = append(items, gallery.Item{URL: img.URL, Title: img.Title})
	}
	return gallery.NewCatalog(items)
}

func checkURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q is not an http(s) URL", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

package media

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	_ "golang.org/x/image/webp"
)

// maxImageBytes caps a single download.
const maxImageBytes = 16 << 20

// Source returns decoded images for URLs.
type Source interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// HTTPSource downloads images over HTTP.
type HTTPSource struct {
	httpClient *http.Client
	userAgent  string
}

// NewHTTPSource creates an image source with the given request timeout.
func NewHTTPSource(timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  "shree-landing/1.0",
	}
}

// Fetch downloads and decodes the image at url.
func (s *HTTPSource) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	// Ask for a format the decoders above understand.
	req.Header.Set("Accept", "image/jpeg,image/png,image/webp;q=0.8")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("image fetch failed: status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("image decode error: %w", err)
	}
	return img, nil
}

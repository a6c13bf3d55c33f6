package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
)

// Fetcher pulls JSON documents and images from upstream services. Every call
// is bounded by the client timeout and the caller's context so a hung
// upstream cannot stall a request forever.
type Fetcher interface {
	FetchJSON(ctx context.Context, url string, v interface{}) error
	FetchImage(ctx context.Context, url string) (image.Image, error)
}

type httpFetcher struct {
	client *http.Client
}

func New(timeout time.Duration) Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

func (f *httpFetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: status code %d", url, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (f *httpFetcher) FetchJSON(ctx context.Context, url string, v interface{}) error {
	body, err := f.get(ctx, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}

func (f *httpFetcher) FetchImage(ctx context.Context, url string) (image.Image, error) {
	body, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image from %s: %w", url, err)
	}
	return img, nil
}

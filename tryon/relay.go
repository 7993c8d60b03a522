package tryon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// RelayFetcher retrieves catalog images through an image relay that
// re-serves the target bytes with permissive cross-origin headers.
type RelayFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewRelayFetcher creates a fetcher for the given relay endpoint.
func NewRelayFetcher(baseURL string) *RelayFetcher {
	return &RelayFetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// AcquireProductImage fetches the image behind target via the relay. The
// relay receives the percent-encoded original URL as its url query
// parameter. The MIME type is taken from the relay's Content-Type header,
// never assumed.
func (f *RelayFetcher) AcquireProductImage(ctx context.Context, target string) (*ImageAsset, error) {
	relayURL := fmt.Sprintf("%s?url=%s", f.BaseURL, url.QueryEscape(target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, relayURL, nil)
	if err != nil {
		return nil, &FetchError{Status: err.Error()}
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &FetchError{Status: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Status: err.Error()}
	}

	return &ImageAsset{Data: data, MIMEType: resp.Header.Get("Content-Type")}, nil
}

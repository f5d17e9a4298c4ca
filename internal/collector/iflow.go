package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"SteamSentinel/internal/model"
)

// IFlowFetcher implements Fetcher against the iflow analysis REST endpoint.
// The endpoint rejects requests without a browser User-Agent and Referer.
type IFlowFetcher struct {
	URL       string
	UserAgent string
	Referer   string
	Client    *http.Client
}

// NewIFlowFetcher creates a new fetcher with optional proxy support.
func NewIFlowFetcher(endpoint, userAgent, referer, proxyURL string) *IFlowFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &IFlowFetcher{
		URL:       endpoint,
		UserAgent: userAgent,
		Referer:   referer,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (f *IFlowFetcher) Name() string { return "iflow" }

// Fetch downloads and decodes the full analysis payload.
func (f *IFlowFetcher) Fetch() ([]model.IndexRecord, []byte, error) {
	req, err := http.NewRequest("GET", f.URL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: build request: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Referer", f.Referer)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read body: %v", ErrFetch, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("%w: status %d, body: %s", ErrFetch, resp.StatusCode, string(body))
	}

	var records []model.IndexRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return records, body, nil
}

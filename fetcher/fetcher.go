package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/motemen/go-loghttp"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrBadStatus means the chart endpoint answered outside the 2xx range
	ErrBadStatus = errors.New("unexpected http status")
	// ErrEmptyResponse means the chart endpoint answered 2xx with no payload
	ErrEmptyResponse = errors.New("empty response body")
)

// Fetcher performs the single GET against the chart endpoint.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
	Timeout   time.Duration
}

// New returns a Fetcher with the given per-request timeout and
// User-Agent. With verbose set, every request and response is traced
// at debug level.
func New(timeout time.Duration, userAgent string, verbose bool) *Fetcher {
	client := &http.Client{
		// one request per run, redirects are not followed
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	if verbose {
		client.Transport = &loghttp.Transport{
			Transport: http.DefaultTransport,
			LogRequest: func(req *http.Request) {
				log.Debugf("--> %s %s", req.Method, req.URL)
			},
			LogResponse: func(resp *http.Response) {
				log.Debugf("<-- %d %s", resp.StatusCode, resp.Request.URL)
			},
		}
	}

	return &Fetcher{
		Client:    client,
		UserAgent: userAgent,
		Timeout:   timeout,
	}
}

// Fetch downloads the chart image and returns its bytes unmodified.
// Exactly one request is made, no retries.
func (f *Fetcher) Fetch(chartURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", chartURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make http request: %w", err)
	}
	defer resp.Body.Close()

	// read all the bytes
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read http response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	if len(raw) == 0 {
		return nil, ErrEmptyResponse
	}

	return raw, nil
}

package teletext

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public teletext front end this viewer was
// written against.
const DefaultBaseURL = "https://www.ndr.de/public/teletext"

const indexDocument = "pages.js"

// FetchError reports a failed document retrieval. A fetch is never
// retried here; the caller decides what a failed navigation means.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("teletext: fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("teletext: fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client retrieves teletext documents from the remote front end.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the front end rooted at baseURL. A
// nil httpClient gets a 10 second timeout client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// FetchIndex retrieves and parses the page directory document.
func (c *Client) FetchIndex(ctx context.Context) (*Index, error) {
	doc, err := c.get(ctx, fmt.Sprintf("%s/%s", c.baseURL, indexDocument))
	if err != nil {
		return nil, err
	}
	return ParseIndex(doc)
}

// FetchPage retrieves the raw markup for one page/sub-page. The target
// address is derived from the page number and the zero-padded two-digit
// sub-page number, e.g. <base>/100_01.htm.
func (c *Client) FetchPage(ctx context.Context, page, subPage int) (string, error) {
	return c.get(ctx, fmt.Sprintf("%s/%d_%02d.htm", c.baseURL, page, subPage))
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	return string(body), nil
}

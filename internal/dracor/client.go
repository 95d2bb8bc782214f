// Package dracor is a minimal client for DraCor-style drama corpus APIs.
package dracor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const userAgent = "actharvest"

// Client communicates with a corpus HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client

	metadataTimeout time.Duration
	documentTimeout time.Duration
}

// NewClient creates a client for the API rooted at baseURL. The timeouts
// bound individual metadata and document requests.
func NewClient(baseURL string, metadataTimeout, documentTimeout time.Duration) *Client {
	return &Client{
		baseURL:         baseURL,
		httpClient:      &http.Client{},
		metadataTimeout: metadataTimeout,
		documentTimeout: documentTimeout,
	}
}

// PlayMeta is one play's entry in a corpus metadata listing. Fields beyond
// these are ignored.
type PlayMeta struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	FirstAuthor string `json:"firstAuthor"`
}

// StatusError is a non-2xx API response, carrying an excerpt of the body.
type StatusError struct {
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.URL, e.Status, e.Body)
}

// Metadata lists every play in the corpus.
func (c *Client) Metadata(ctx context.Context, corpus string) ([]PlayMeta, error) {
	u := c.baseURL + "/corpora/" + url.PathEscape(corpus) + "/metadata"
	ctx, cancel := context.WithTimeout(ctx, c.metadataTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, statusError(u, resp)
	}

	var plays []PlayMeta
	if err := json.NewDecoder(resp.Body).Decode(&plays); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return plays, nil
}

// PlayTEI fetches the TEI source of one play.
func (c *Client) PlayTEI(ctx context.Context, corpus, slug string) (string, error) {
	u := c.baseURL + "/corpora/" + url.PathEscape(corpus) + "/plays/" + url.PathEscape(slug) + "/tei"
	ctx, cancel := context.WithTimeout(ctx, c.documentTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch tei: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", statusError(u, resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read tei: %w", err)
	}
	return string(body), nil
}

func statusError(u string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return &StatusError{URL: u, Status: resp.StatusCode, Body: string(body)}
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

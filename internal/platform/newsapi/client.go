package newsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// HTTPClient matches net/http.Client Do signature for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the NewsAPI v2 endpoints. Requests are rate limited on the
// client side and never retried.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
	limiter    *rate.Limiter
	mock       bool
}

// Config defines settings for the NewsAPI client.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	Mock       bool
	RatePerSec float64
	Burst      int
}

// New creates a NewsAPI client. A nil httpClient gets a net/http client with
// cfg.Timeout (10s when zero).
func New(httpClient HTTPClient, cfg Config) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://newsapi.org"
	}
	perSec := cfg.RatePerSec
	if perSec <= 0 {
		perSec = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    base,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(perSec), burst),
		mock:       cfg.Mock,
	}
}

// Mock reports whether the client serves canned data.
func (c *Client) Mock() bool { return c.mock }

// TopHeadlines returns the current US health headlines.
func (c *Client) TopHeadlines(ctx context.Context) ([]Article, error) {
	if c.mock {
		return mockArticles(), nil
	}
	params := url.Values{}
	params.Set("country", "us")
	params.Set("category", "health")

	var resp articlesResponse
	if err := c.get(ctx, "top-headlines", "/v2/top-headlines", params, &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// Everything searches all articles for a free-text query.
func (c *Client) Everything(ctx context.Context, query string) ([]Article, error) {
	if c.mock {
		return mockSearch(query), nil
	}
	params := url.Values{}
	params.Set("q", query)

	var resp articlesResponse
	if err := c.get(ctx, "everything", "/v2/everything", params, &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// Sources lists the news outlets NewsAPI knows about.
func (c *Client) Sources(ctx context.Context) ([]Source, error) {
	if c.mock {
		return mockSources(), nil
	}
	var resp sourcesResponse
	if err := c.get(ctx, "sources", "/v2/sources", url.Values{}, &resp); err != nil {
		return nil, err
	}
	return resp.Sources, nil
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values, out statusPayload) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &ExternalServiceError{Op: op, Err: fmt.Errorf("rate limit: %w", err)}
	}

	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &ExternalServiceError{Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ExternalServiceError{Op: op, Err: fmt.Errorf("request: %w", err)}
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ExternalServiceError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// NewsAPI puts a status/code/message body on most failures.
		var e errorBody
		_ = json.Unmarshal(bytes.TrimSpace(buf), &e)
		return &ExternalServiceError{Op: op, StatusCode: resp.StatusCode, Code: e.Code, Message: e.Message}
	}

	if err := json.Unmarshal(bytes.TrimSpace(buf), out); err != nil {
		return &ExternalServiceError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if status, code, message := out.status(); status != "ok" {
		return &ExternalServiceError{Op: op, StatusCode: resp.StatusCode, Code: code, Message: message}
	}
	return nil
}

// Package search wraps the product-search service that supplies shoppable
// listings for planned queries.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/stylehaulhq/stylehaul-backend/pkg/errors"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
)

const (
	defaultBaseURL             = "https://api.productsearch.io/v1"
	errorBodyReadLimit   int64 = 1024
	defaultClientTimeout       = 15 * time.Second
)

var errAPIKeyRequired = errors.New("search api key is required")

// Client calls the product search endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logg       *logger.Logger
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured search base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithLogger attaches a logger for response-shape warnings.
func WithLogger(logg *logger.Logger) Option {
	return func(c *Client) {
		if logg != nil {
			c.logg = logg
		}
	}
}

// WithTimeout overrides the default HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds the search client given an API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, errAPIKeyRequired
	}

	client := &Client{
		apiKey:     trimmedKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultClientTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// Result is one shoppable listing returned for a query.
type Result struct {
	ID       string
	Name     string
	Brand    string
	ImageURL string
	Price    float64
	Currency string
	URL      string
}

type rawResult struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Images   []string `json:"images"`
	ImageURL string   `json:"image_url"`
	Price    struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"price"`
	URL string `json:"url"`
}

// Search returns up to limit listings for the query. A non-array top-level
// response is treated as an empty result set, not an error; upstream failures
// embed the HTTP status code in the error text for retry classification.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "search client not configured")
	}
	if strings.TrimSpace(query) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "search query is required")
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&limit=%s",
		strings.TrimRight(c.baseURL, "/"),
		url.QueryEscape(query),
		strconv.Itoa(limit),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build search request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute search request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "search request failed")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read search response")
	}

	var raws []rawResult
	if err := json.Unmarshal(body, &raws); err != nil {
		// Some upstream error shapes come back as JSON objects with a 200.
		// Treat anything non-array as no results rather than failing the query.
		if c.logg != nil {
			c.logg.Warn(ctx, "search returned non-array payload, treating as empty result set")
		}
		return []Result{}, nil
	}

	results := make([]Result, 0, len(raws))
	for _, r := range raws {
		results = append(results, r.normalize())
	}
	return results, nil
}

func (r rawResult) normalize() Result {
	name := r.Name
	if name == "" {
		name = r.Title
	}
	image := r.ImageURL
	if len(r.Images) > 0 {
		image = r.Images[0]
	}
	return Result{
		ID:       r.ID,
		Name:     name,
		Brand:    r.Brand,
		ImageURL: image,
		Price:    r.Price.Amount,
		Currency: r.Price.Currency,
		URL:      r.URL,
	}
}

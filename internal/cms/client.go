package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"care-site-backend/config"
	"care-site-backend/internal/model"
)

const apiKeyHeader = "X-MICROCMS-API-KEY"

// API is the request/response contract of the CMS. Content accessors depend
// on this interface rather than on *Client.
type API interface {
	// List fetches a list endpoint and decodes the envelope into out.
	List(ctx context.Context, endpoint string, q *Queries, out any) error
	// Detail fetches one record of a list endpoint by content id.
	Detail(ctx context.Context, endpoint, contentID string, q *Queries, out any) error
	// Object fetches a singleton (object-type) endpoint.
	Object(ctx context.Context, endpoint string, q *Queries, out any) error
}

// Client talks to the microCMS content API over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a client for the given service domain and key.
func NewClient(cfg config.CMSConfig) *Client {
	var transport http.RoundTripper = http.DefaultTransport
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			log.Warn().Err(err).Str("proxy", cfg.HTTPProxy).Msg("cms: invalid proxy URL; connecting directly")
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.microcms.io", cfg.ServiceDomain)
	}

	return &Client{
		baseURL: base + "/api/v1",
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// List implements API.
func (c *Client) List(ctx context.Context, endpoint string, q *Queries, out any) error {
	return c.get(ctx, endpoint, q, out)
}

// Detail implements API.
func (c *Client) Detail(ctx context.Context, endpoint, contentID string, q *Queries, out any) error {
	if contentID == "" {
		return fmt.Errorf("cms: empty content id for %s", endpoint)
	}
	return c.get(ctx, endpoint+"/"+url.PathEscape(contentID), q, out)
}

// Object implements API.
func (c *Client) Object(ctx context.Context, endpoint string, q *Queries, out any) error {
	return c.get(ctx, endpoint, q, out)
}

func (c *Client) get(ctx context.Context, path string, q *Queries, out any) error {
	u := c.baseURL + "/" + path
	if values := q.Values(); len(values) > 0 {
		u += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("cms: failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("cms: request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cms: failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("cms: failed to unmarshal %s response: %w", path, err)
	}
	return nil
}

// GetList fetches a list endpoint into a typed envelope.
func GetList[T any](ctx context.Context, api API, endpoint string, q *Queries) (*model.ListResponse[T], error) {
	var resp model.ListResponse[T]
	if err := api.List(ctx, endpoint, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListDetail fetches a single list record by content id.
func GetListDetail[T any](ctx context.Context, api API, endpoint, contentID string, q *Queries) (*T, error) {
	var record T
	if err := api.Detail(ctx, endpoint, contentID, q, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetObject fetches an object-type endpoint.
func GetObject[T any](ctx context.Context, api API, endpoint string, q *Queries) (*T, error) {
	var record T
	if err := api.Object(ctx, endpoint, q, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

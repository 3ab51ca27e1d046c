// Package gateway is a stateless relay to the upstream item store. Each call
// maps to exactly one outbound request: no retries, no caching, no partial
// results.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"sweetbliss/internal/domain"
)

// ListParams are the recognized list-query parameters. Empty fields are not
// forwarded; present ones are copied verbatim, no renaming or coercion.
type ListParams struct {
	Search   string
	Category string
	MinPrice string
	MaxPrice string
	MinStock string
	MaxStock string
	Page     string
	Size     string
	SortBy   string
	SortDir  string
}

// Values builds the upstream query string from the present parameters.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	set := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	set("search", p.Search)
	set("category", p.Category)
	set("minPrice", p.MinPrice)
	set("maxPrice", p.MaxPrice)
	set("minStock", p.MinStock)
	set("maxStock", p.MaxStock)
	set("page", p.Page)
	set("size", p.Size)
	set("sortBy", p.SortBy)
	set("sortDir", p.SortDir)
	return v
}

type Client struct {
	base string
	http *http.Client
}

// New returns a client for the store at base (e.g. http://localhost:8080).
// Every outbound call is bounded by timeout in addition to ctx.
func New(base string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

type ctxKey struct{}

// WithRequestID tags ctx with an inbound request id; outbound calls relay it
// as X-Request-ID so the two sides of the proxy can be correlated.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// do performs one upstream round trip and returns the raw body on 2xx.
func (c *Client) do(ctx context.Context, op, method, path string, q url.Values, body []byte) ([]byte, error) {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, &GatewayError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &GatewayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GatewayError{Op: op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(b)}
	}
	return b, nil
}

// ListItemsRaw forwards a list query and returns the upstream JSON body
// unmodified, for pass-through responses.
func (c *Client) ListItemsRaw(ctx context.Context, p ListParams) ([]byte, error) {
	return c.do(ctx, "list", http.MethodGet, "/api/items", p.Values(), nil)
}

// ListItems is the decoded variant used by the query-pipeline endpoints.
func (c *Client) ListItems(ctx context.Context, p ListParams) ([]domain.Item, error) {
	b, err := c.ListItemsRaw(ctx, p)
	if err != nil {
		return nil, err
	}
	var items []domain.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, &GatewayError{Op: "list decode", Err: err}
	}
	return items, nil
}

// CreateItemRaw forwards a create payload as-is and returns the upstream
// body of the created record.
func (c *Client) CreateItemRaw(ctx context.Context, payload []byte) ([]byte, error) {
	return c.do(ctx, "create", http.MethodPost, "/api/items", nil, payload)
}

// CreateItem posts payload and returns the created record, including the
// server-assigned id, untouched.
func (c *Client) CreateItem(ctx context.Context, payload domain.ItemPayload) (domain.Item, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Item{}, &GatewayError{Op: "create encode", Err: err}
	}
	b, err := c.CreateItemRaw(ctx, body)
	if err != nil {
		return domain.Item{}, err
	}
	var it domain.Item
	if err := json.Unmarshal(b, &it); err != nil {
		return domain.Item{}, &GatewayError{Op: "create decode", Err: err}
	}
	return it, nil
}

// Package source abstracts where an item snapshot comes from. The dashboard
// read paths use a Fallback source so a dead upstream degrades to the static
// dataset instead of an empty page.
package source

import (
	"context"

	"sweetbliss/internal/domain"
	"sweetbliss/internal/gateway"
	applog "sweetbliss/internal/log"
)

// DataSource produces an item snapshot for one request.
type DataSource interface {
	FetchItems(ctx context.Context, p gateway.ListParams) ([]domain.Item, error)
}

// Remote fetches from the upstream store through the gateway client.
type Remote struct {
	Client *gateway.Client
}

func (r *Remote) FetchItems(ctx context.Context, p gateway.ListParams) ([]domain.Item, error) {
	return r.Client.ListItems(ctx, p)
}

// Static serves the built-in demo dataset. It ignores the query parameters
// (the original fallback substituted the whole mock list) and never fails.
type Static struct{}

func (Static) FetchItems(context.Context, gateway.ListParams) ([]domain.Item, error) {
	out := make([]domain.Item, len(demoSweets))
	copy(out, demoSweets)
	return out, nil
}

// Fallback tries Primary and, on any read failure, logs and serves Standby.
// Writes never go through here; only reads degrade.
type Fallback struct {
	Primary DataSource
	Standby DataSource
}

func (f *Fallback) FetchItems(ctx context.Context, p gateway.ListParams) ([]domain.Item, error) {
	items, err := f.Primary.FetchItems(ctx, p)
	if err == nil {
		return items, nil
	}
	applog.Error(nil, "source.fallback", err, map[string]any{"reason": "primary fetch failed"})
	return f.Standby.FetchItems(ctx, p)
}

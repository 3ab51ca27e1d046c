package handlers

import (
	"github.com/jmoiron/sqlx"

	"sweetbliss/internal/gateway"
	"sweetbliss/internal/repos"
	"sweetbliss/internal/services"
	"sweetbliss/internal/source"
)

// GatewayDeps wires the dashboard gateway handlers.
type GatewayDeps struct {
	Proxy     *ProxyHandler
	Dashboard *DashboardHandler
	Inventory *InventoryHandler
}

func NewGatewayDeps(client *gateway.Client, src source.DataSource) *GatewayDeps {
	return &GatewayDeps{
		Proxy:     &ProxyHandler{Client: client},
		Dashboard: &DashboardHandler{Source: src},
		Inventory: &InventoryHandler{Source: src},
	}
}

// StoreDeps wires the sweetstore handlers.
type StoreDeps struct {
	Items      *StoreItemsHandler
	Categories *StoreCategoriesHandler
}

func NewStoreDeps(db *sqlx.DB) *StoreDeps {
	itemRepo := repos.NewItemRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	return &StoreDeps{
		Items:      &StoreItemsHandler{Svc: services.NewItemService(itemRepo, catRepo)},
		Categories: &StoreCategoriesHandler{Cats: catRepo},
	}
}

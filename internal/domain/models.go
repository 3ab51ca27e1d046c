package domain

// Category is a grouping label. Items carry a denormalized copy of their
// category rather than a foreign-key reference.
type Category struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	ItemCount   int    `json:"itemCount,omitempty" db:"item_count"`
}

// Item is one sellable product.
type Item struct {
	ID          int64    `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Category    Category `json:"category"`
	Stock       int      `json:"stock" db:"stock"`
	Price       float64  `json:"price" db:"price"`
	Description string   `json:"description" db:"description"`
}

// ItemPayload is the create/update request body. The category is referenced
// by name; the store resolves or creates the row.
type ItemPayload struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// DashboardStats summarizes an item snapshot for the dashboard cards.
type DashboardStats struct {
	TotalItems    int     `json:"totalItems"`
	TotalStock    int     `json:"totalStock"`
	TotalValue    float64 `json:"totalValue"`
	LowStockItems int     `json:"lowStockItems"`
}

// CategoryStats summarizes the items of a single category.
type CategoryStats struct {
	ItemCount  int     `json:"itemCount"`
	TotalStock int     `json:"totalStock"`
	TotalValue float64 `json:"totalValue"`
}

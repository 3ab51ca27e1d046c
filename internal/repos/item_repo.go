package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"sweetbliss/internal/domain"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

// ItemFilter holds the optional list criteria. Zero values mean "no bound".
type ItemFilter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	MinStock *int
	MaxStock *int
	SortBy   string // name | stock | price | id
	SortDir  string // asc | desc
	Page     *int   // 0-based; pagination applies only when Size is set
	Size     *int
}

// itemRow is the joined items+categories projection.
type itemRow struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	Stock        int     `db:"stock"`
	Price        float64 `db:"price"`
	Description  string  `db:"description"`
	CategoryID   int64   `db:"category_id"`
	CategoryName string  `db:"category_name"`
	CategoryDesc string  `db:"category_desc"`
}

func (r itemRow) toDomain() domain.Item {
	return domain.Item{
		ID:   r.ID,
		Name: r.Name,
		Category: domain.Category{
			ID:          r.CategoryID,
			Name:        r.CategoryName,
			Description: r.CategoryDesc,
		},
		Stock:       r.Stock,
		Price:       r.Price,
		Description: r.Description,
	}
}

const itemSelect = `
  SELECT i.id, i.name, i.stock, i.price, i.description,
         c.id AS category_id, c.name AS category_name, c.description AS category_desc
  FROM items i
  JOIN categories c ON c.id = i.category_id`

// sortColumns whitelists sortBy values; anything else falls back to name.
var sortColumns = map[string]string{
	"name":  "i.name COLLATE NOCASE",
	"stock": "i.stock",
	"price": "i.price",
	"id":    "i.id",
}

func (f ItemFilter) orderBy() string {
	col, ok := sortColumns[f.SortBy]
	if !ok {
		col = sortColumns["name"]
	}
	dir := "ASC"
	if strings.EqualFold(f.SortDir, "desc") {
		dir = "DESC"
	}
	return col + " " + dir
}

// List applies the filter and returns matching items with their categories
// embedded.
func (r *ItemRepo) List(f ItemFilter) ([]domain.Item, error) {
	where := `1=1`
	args := []any{}
	if f.Search != "" {
		where += ` AND LOWER(i.name) LIKE ?`
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
	}
	if f.Category != "" {
		where += ` AND LOWER(c.name) = LOWER(?)`
		args = append(args, f.Category)
	}
	if f.MinPrice != nil {
		where += ` AND i.price >= ?`
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where += ` AND i.price <= ?`
		args = append(args, *f.MaxPrice)
	}
	if f.MinStock != nil {
		where += ` AND i.stock >= ?`
		args = append(args, *f.MinStock)
	}
	if f.MaxStock != nil {
		where += ` AND i.stock <= ?`
		args = append(args, *f.MaxStock)
	}

	q := itemSelect + `
  WHERE ` + where + `
  ORDER BY ` + f.orderBy()

	if f.Size != nil && *f.Size > 0 {
		page := 0
		if f.Page != nil && *f.Page > 0 {
			page = *f.Page
		}
		offset := page * *f.Size
		q += ` LIMIT ? OFFSET ?`
		args = append(args, *f.Size, offset)
	}

	var rows []itemRow
	if err := r.db.Select(&rows, q, args...); err != nil {
		return nil, err
	}
	out := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ItemRepo) Get(id int64) (domain.Item, error) {
	var row itemRow
	if err := r.db.Get(&row, itemSelect+` WHERE i.id = ?`, id); err != nil {
		return domain.Item{}, err
	}
	return row.toDomain(), nil
}

// ExistsByName reports a case-insensitive name collision.
func (r *ItemRepo) ExistsByName(name string) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM items WHERE LOWER(name) = LOWER(?)`, name)
	return n > 0, err
}

// Create inserts a row and returns the assigned id.
func (r *ItemRepo) Create(categoryID int64, name string, stock int, price float64, description string) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO items(category_id, name, stock, price, description)
		VALUES (?, ?, ?, ?, ?)
	`, categoryID, name, stock, price, description)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites a row in place. The bool reports whether the row existed.
func (r *ItemRepo) Update(id, categoryID int64, name string, stock int, price float64, description string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE items
		SET category_id = ?, name = ?, stock = ?, price = ?, description = ?
		WHERE id = ?
	`, categoryID, name, stock, price, description, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *ItemRepo) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// LowStock returns items with stock strictly below threshold.
func (r *ItemRepo) LowStock(threshold int) ([]domain.Item, error) {
	var rows []itemRow
	err := r.db.Select(&rows, itemSelect+` WHERE i.stock < ? ORDER BY i.stock`, threshold)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Stats computes the dashboard totals in SQL.
func (r *ItemRepo) Stats(lowStockThreshold int) (domain.DashboardStats, error) {
	var s struct {
		TotalItems int     `db:"total_items"`
		TotalStock int     `db:"total_stock"`
		TotalValue float64 `db:"total_value"`
		LowStock   int     `db:"low_stock"`
	}
	err := r.db.Get(&s, `
		SELECT COUNT(*)                              AS total_items,
		       COALESCE(SUM(stock), 0)               AS total_stock,
		       COALESCE(SUM(stock * price), 0)       AS total_value,
		       COALESCE(SUM(stock < ?), 0)           AS low_stock
		FROM items
	`, lowStockThreshold)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return domain.DashboardStats{
		TotalItems:    s.TotalItems,
		TotalStock:    s.TotalStock,
		TotalValue:    s.TotalValue,
		LowStockItems: s.LowStock,
	}, nil
}

package repos

import (
	"github.com/jmoiron/sqlx"

	"sweetbliss/internal/domain"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// List returns all categories with their item counts, name order.
func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
		SELECT c.id, c.name, c.description, COUNT(i.id) AS item_count
		FROM categories c
		LEFT JOIN items i ON i.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name
	`)
	return out, err
}

func (r *CategoryRepo) Get(id int64) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
		SELECT id, name, description, 0 AS item_count
		FROM categories WHERE id = ?
	`, id)
	return c, err
}

// GetByName looks a category up case-insensitively.
func (r *CategoryRepo) GetByName(name string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
		SELECT id, name, description, 0 AS item_count
		FROM categories WHERE LOWER(name) = LOWER(?)
	`, name)
	return c, err
}

func (r *CategoryRepo) Create(name, description string) (int64, error) {
	res, err := r.db.Exec(`INSERT INTO categories(name, description) VALUES (?, ?)`, name, description)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

package services

import (
	"database/sql"
	"errors"

	"sweetbliss/internal/domain"
	"sweetbliss/internal/repos"
)

var (
	ErrNotFound      = errors.New("item not found")
	ErrDuplicateName = errors.New("an item with that name already exists")
)

// ItemService owns item CRUD for the store. Categories are resolved by name
// and created on the fly when unknown, so callers never manage them
// directly.
type ItemService struct {
	Items *repos.ItemRepo
	Cats  *repos.CategoryRepo
}

func NewItemService(items *repos.ItemRepo, cats *repos.CategoryRepo) *ItemService {
	return &ItemService{Items: items, Cats: cats}
}

func (s *ItemService) List(f repos.ItemFilter) ([]domain.Item, error) {
	return s.Items.List(f)
}

func (s *ItemService) Get(id int64) (domain.Item, error) {
	it, err := s.Items.Get(id)
	if err == sql.ErrNoRows {
		return domain.Item{}, ErrNotFound
	}
	return it, err
}

// Create rejects duplicate names, resolves the category, and returns the
// stored record with its assigned id.
func (s *ItemService) Create(p domain.ItemPayload) (domain.Item, error) {
	dup, err := s.Items.ExistsByName(p.Name)
	if err != nil {
		return domain.Item{}, err
	}
	if dup {
		return domain.Item{}, ErrDuplicateName
	}
	cat, err := s.findOrCreateCategory(p.Category)
	if err != nil {
		return domain.Item{}, err
	}
	id, err := s.Items.Create(cat.ID, p.Name, p.Stock, p.Price, p.Description)
	if err != nil {
		return domain.Item{}, err
	}
	return s.Items.Get(id)
}

func (s *ItemService) Update(id int64, p domain.ItemPayload) (domain.Item, error) {
	cat, err := s.findOrCreateCategory(p.Category)
	if err != nil {
		return domain.Item{}, err
	}
	found, err := s.Items.Update(id, cat.ID, p.Name, p.Stock, p.Price, p.Description)
	if err != nil {
		return domain.Item{}, err
	}
	if !found {
		return domain.Item{}, ErrNotFound
	}
	return s.Items.Get(id)
}

func (s *ItemService) Delete(id int64) error {
	found, err := s.Items.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *ItemService) LowStock(threshold int) ([]domain.Item, error) {
	return s.Items.LowStock(threshold)
}

func (s *ItemService) Stats() (domain.DashboardStats, error) {
	return s.Items.Stats(10)
}

func (s *ItemService) findOrCreateCategory(name string) (domain.Category, error) {
	cat, err := s.Cats.GetByName(name)
	if err == nil {
		return cat, nil
	}
	if err != sql.ErrNoRows {
		return domain.Category{}, err
	}
	id, err := s.Cats.Create(name, "Auto-generated category")
	if err != nil {
		return domain.Category{}, err
	}
	return domain.Category{ID: id, Name: name, Description: "Auto-generated category"}, nil
}

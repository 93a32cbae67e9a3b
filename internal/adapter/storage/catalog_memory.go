package storage

import (
	"context"

	"github.com/campuseats/canteen/internal/core/domain"
)

// MemoryCatalog serves the fixed menu from memory. The catalog is
// reference data: loaded once, never mutated.
type MemoryCatalog struct {
	items []domain.MenuItem
}

func NewMemoryCatalog(items []domain.MenuItem) *MemoryCatalog {
	return &MemoryCatalog{items: items}
}

func (c *MemoryCatalog) List(ctx context.Context) ([]domain.MenuItem, error) {
	out := make([]domain.MenuItem, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *MemoryCatalog) Find(ctx context.Context, id string) (*domain.MenuItem, error) {
	for _, item := range c.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

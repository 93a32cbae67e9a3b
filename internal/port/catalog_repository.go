package port

import (
	"context"

	"github.com/campuseats/canteen/internal/core/domain"
)

// CatalogRepository supplies the read-only menu to the order wizard.
type CatalogRepository interface {
	// List returns every orderable item.
	List(ctx context.Context) ([]domain.MenuItem, error)

	// Find returns the item by id, or nil if no such item exists.
	Find(ctx context.Context, id string) (*domain.MenuItem, error)
}

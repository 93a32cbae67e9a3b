package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/campuseats/canteen/internal/core/domain"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderCompleted = errors.New("order already completed")
	ErrBadMenuEntry   = errors.New("menu entry needs a name, category and positive price")
)

// AdminBoard manages the kitchen-side order queue and the admin menu
// catalog. Orders only move forward: pending -> preparing -> ready ->
// completed, one step per advance.
type AdminBoard struct {
	mu      sync.Mutex
	orders  []domain.Order
	entries []domain.CatalogEntry
}

func NewAdminBoard(orders []domain.Order, entries []domain.CatalogEntry) *AdminBoard {
	return &AdminBoard{orders: orders, entries: entries}
}

// Advance applies the single legal forward transition for the order's
// current status and returns the new status.
func (b *AdminBoard) Advance(orderID string) (domain.OrderStatus, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].ID != orderID {
			continue
		}
		next, ok := b.orders[i].Status.Next()
		if !ok {
			return b.orders[i].Status, ErrOrderCompleted
		}
		b.orders[i].Status = next
		return next, nil
	}
	return "", ErrOrderNotFound
}

func (b *AdminBoard) Orders() []domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Order, len(b.orders))
	copy(out, b.orders)
	return out
}

func (b *AdminBoard) OrdersByStatus(status domain.OrderStatus) []domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.Order
	for _, o := range b.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// ActiveCount counts orders not yet completed.
func (b *AdminBoard) ActiveCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, o := range b.orders {
		if o.Status != domain.OrderStatusCompleted {
			n++
		}
	}
	return n
}

// AddMenuEntry appends a new catalog entry with the default stock.
func (b *AdminBoard) AddMenuEntry(name, category string, price float64) (domain.CatalogEntry, error) {
	if name == "" || category == "" || price <= 0 {
		return domain.CatalogEntry{}, ErrBadMenuEntry
	}
	entry := domain.CatalogEntry{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    domain.DefaultStock,
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, entry)
	return entry, nil
}

func (b *AdminBoard) MenuEntries() []domain.CatalogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.CatalogEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *AdminBoard) LowStockEntries() []domain.CatalogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.CatalogEntry
	for _, e := range b.entries {
		if e.LowStock() {
			out = append(out, e)
		}
	}
	return out
}

type BoardOverview struct {
	ActiveOrders      int     `json:"active_orders"`
	TotalOrders       int     `json:"total_orders"`
	CompletedRevenue  float64 `json:"completed_revenue"`
	LowStockItemCount int     `json:"low_stock_item_count"`
}

// Overview is a pure derived read over the board's collections.
func (b *AdminBoard) Overview() BoardOverview {
	b.mu.Lock()
	defer b.mu.Unlock()
	ov := BoardOverview{TotalOrders: len(b.orders)}
	for _, o := range b.orders {
		if o.Status == domain.OrderStatusCompleted {
			ov.CompletedRevenue += o.Total
		} else {
			ov.ActiveOrders++
		}
	}
	for _, e := range b.entries {
		if e.LowStock() {
			ov.LowStockItemCount++
		}
	}
	return ov
}

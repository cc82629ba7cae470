package repository

import (
	"context"

	"sales_analytics/internal/domain/order"
)

// OrderRepository is the authoritative order collection.
type OrderRepository interface {
	Snapshot() []order.Order
	Append(o order.Order) order.Order
	// Reload returns the size of the collection it swapped in.
	Reload(ctx context.Context) (int, error)
	Len() int
}

// SeedSource yields the raw records an OrderRepository is loaded from.
type SeedSource interface {
	Name() string
	Records(ctx context.Context) ([]map[string]any, error)
}

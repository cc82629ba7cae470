package memory

import (
	"context"
	"fmt"
	"sync"

	"sales_analytics/internal/domain/order"
	"sales_analytics/internal/domain/repository"
)

// OrderStore is the in-memory order collection seeded from a SeedSource.
// Every access to orders holds mu; Load runs outside the lock and Reload only
// takes it for the swap.
type OrderStore struct {
	source repository.SeedSource

	mu     sync.Mutex
	orders []order.Order
}

var _ repository.OrderRepository = (*OrderStore)(nil)

// NewOrderStore loads source and returns a store holding its orders.
func NewOrderStore(ctx context.Context, source repository.SeedSource) (*OrderStore, error) {
	s := &OrderStore{source: source}
	orders, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.orders = orders
	return s, nil
}

// Load reads and parses every record of the seed source. The first record that
// fails to parse aborts the load.
func (s *OrderStore) Load(ctx context.Context) ([]order.Order, error) {
	records, err := s.source.Records(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]order.Order, 0, len(records))
	for i, rec := range records {
		o, err := order.Parse(rec)
		if err != nil {
			return nil, fmt.Errorf("seed %s record %d: %w", s.source.Name(), i, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *OrderStore) Snapshot() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderStore) Append(o order.Order) order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, o)
	return o
}

// Reload replaces the whole collection with a fresh Load, dropping appended
// orders. It returns the number of orders swapped in; on error the current
// collection is kept.
func (s *OrderStore) Reload(ctx context.Context) (int, error) {
	orders, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return len(orders), nil
}

func (s *OrderStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

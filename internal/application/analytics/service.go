package analytics

import (
	"context"
	"sort"
	"strconv"

	"sales_analytics/internal/domain/order"
	"sales_analytics/internal/domain/repository"
	"sales_analytics/pkg/logger"
)

const forecastWindow = 3

// Publisher is notified after an order has been appended to the store.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, view order.View) error
}

// Metrics receives store-level counters. A nil Metrics is ignored.
type Metrics interface {
	OrderCreated()
	OrderRejected()
	StoreReloaded(records int)
}

// Service computes analytics views over store snapshots. It keeps no state of
// its own besides its collaborators and never caches results.
type Service struct {
	repo      repository.OrderRepository
	publisher Publisher
	metrics   Metrics
	log       logger.Logger
}

type Option func(*Service)

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(repo repository.OrderRepository, log logger.Logger, opts ...Option) *Service {
	s := &Service{repo: repo, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ListOrders() []order.View {
	orders := s.repo.Snapshot()
	views := make([]order.View, 0, len(orders))
	for _, o := range orders {
		views = append(views, o.View())
	}
	return views
}

// CreateOrder parses payload and appends it. A publish failure is logged and
// does not undo the append.
func (s *Service) CreateOrder(ctx context.Context, payload map[string]any) (order.View, error) {
	o, err := order.Parse(payload)
	if err != nil {
		if s.metrics != nil {
			s.metrics.OrderRejected()
		}
		return order.View{}, err
	}

	created := s.repo.Append(o)
	view := created.View()
	if s.metrics != nil {
		s.metrics.OrderCreated()
	}

	log := s.log.WithContext(ctx)
	log.Info("order created",
		logger.String("order_id", view.OrderID),
		logger.String("region", view.Region),
		logger.Float64("revenue", view.Revenue),
	)

	if s.publisher != nil {
		if err := s.publisher.PublishOrderCreated(ctx, view); err != nil {
			log.Warn("publish order created event failed",
				logger.String("order_id", view.OrderID),
				logger.Error(err),
			)
		}
	}
	return view, nil
}

// Reload re-reads the seed source, discarding orders created since the last load.
func (s *Service) Reload(ctx context.Context) (int, error) {
	n, err := s.repo.Reload(ctx)
	if err != nil {
		s.log.WithContext(ctx).Error("reload failed", logger.Error(err))
		return 0, err
	}
	if s.metrics != nil {
		s.metrics.StoreReloaded(n)
	}
	s.log.WithContext(ctx).Info("store reloaded", logger.Int("records", n))
	return n, nil
}

func (s *Service) RevenueSummary() Summary {
	orders := s.repo.Snapshot()

	var totalRevenue float64
	var totalUnits int
	for _, o := range orders {
		totalRevenue += o.Revenue
		totalUnits += o.Units
	}

	summary := Summary{
		Records:      len(orders),
		TotalRevenue: round2(totalRevenue),
		TotalUnits:   totalUnits,
		TopRegion:    topGroup(orders, order.DimensionRegion),
		TopCategory:  topGroup(orders, order.DimensionCategory),
	}
	if len(orders) > 0 {
		summary.AverageOrderValue = round2(totalRevenue / float64(len(orders)))
		summary.AverageUnitsPerOrder = round2(float64(totalUnits) / float64(len(orders)))
	}
	return summary
}

func (s *Service) RevenueByRegion() []Breakdown {
	return s.RevenueBy(order.DimensionRegion)
}

// RevenueBy groups the snapshot along dim, sorted by rounded revenue descending.
// Groups with equal revenue keep first-seen order.
func (s *Service) RevenueBy(dim order.Dimension) []Breakdown {
	groups := groupTotals(s.repo.Snapshot(), dim)

	out := make([]Breakdown, 0, len(groups))
	for _, g := range groups {
		out = append(out, Breakdown{
			Dimension: dim,
			Key:       g.key,
			Revenue:   round2(g.revenue),
			Units:     g.units,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})
	return out
}

// ForecastNextOrder averages units and revenue over the chronologically last
// three orders.
func (s *Service) ForecastNextOrder() Forecast {
	orders := s.repo.Snapshot()
	if len(orders) == 0 {
		return Forecast{}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderTS.Before(orders[j].OrderTS)
	})
	tail := orders
	if len(tail) > forecastWindow {
		tail = tail[len(tail)-forecastWindow:]
	}

	var units, revenue float64
	for _, o := range tail {
		units += float64(o.Units)
		revenue += o.Revenue
	}
	n := float64(len(tail))
	return Forecast{
		PredictedUnits:   round2(units / n),
		PredictedRevenue: round2(revenue / n),
	}
}

type groupTotal struct {
	key     string
	orders  int
	revenue float64
	units   int
}

// groupTotals sums orders along dim, returning groups in first-seen order.
func groupTotals(orders []order.Order, dim order.Dimension) []groupTotal {
	index := make(map[string]int)
	groups := make([]groupTotal, 0)
	for _, o := range orders {
		key := dim.Key(o)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, groupTotal{key: key})
		}
		groups[i].orders++
		groups[i].revenue += o.Revenue
		groups[i].units += o.Units
	}
	return groups
}

// topGroup returns the group with the highest summed revenue; the first-seen
// group wins a tie.
func topGroup(orders []order.Order, dim order.Dimension) *GroupLeader {
	groups := groupTotals(orders, dim)
	if len(groups) == 0 {
		return nil
	}

	best := groups[0]
	for _, g := range groups[1:] {
		if g.revenue > best.revenue {
			best = g
		}
	}
	return &GroupLeader{
		Name:    best.key,
		Orders:  best.orders,
		Revenue: round2(best.revenue),
	}
}

// round2 rounds half to even on the exact binary value, like formatting with two decimals.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

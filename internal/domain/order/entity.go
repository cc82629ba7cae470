package order

import "time"

// Order is an immutable sales record. Use Parse to build one from an untyped payload.
type Order struct {
	OrderID  string
	Region   string
	Category string
	Units    int
	Revenue  float64
	OrderTS  time.Time
}

// NewOrder builds an Order from typed values; timestamp precision is cut to the microsecond.
func NewOrder(orderID, region, category string, units int, revenue float64, orderTS time.Time) Order {
	return Order{
		OrderID:  orderID,
		Region:   region,
		Category: category,
		Units:    units,
		Revenue:  revenue,
		OrderTS:  orderTS.Truncate(time.Microsecond),
	}
}

// Equal reports whether both orders carry the same field values.
func (o Order) Equal(other Order) bool {
	return o.OrderID == other.OrderID &&
		o.Region == other.Region &&
		o.Category == other.Category &&
		o.Units == other.Units &&
		o.Revenue == other.Revenue &&
		o.OrderTS.Equal(other.OrderTS)
}

package order

import "time"

const (
	isoLayout       = "2006-01-02T15:04:05-07:00"
	isoLayoutMicros = "2006-01-02T15:04:05.000000-07:00"
)

// View is the wire rendering of an Order.
type View struct {
	OrderID  string  `json:"order_id"`
	Region   string  `json:"region"`
	Category string  `json:"category"`
	Units    int     `json:"units"`
	Revenue  float64 `json:"revenue"`
	OrderTS  string  `json:"order_ts"`
}

func (o Order) View() View {
	return View{
		OrderID:  o.OrderID,
		Region:   o.Region,
		Category: o.Category,
		Units:    o.Units,
		Revenue:  o.Revenue,
		OrderTS:  FormatTimestamp(o.OrderTS),
	}
}

// FormatTimestamp renders ts as ISO-8601 with an explicit offset; microseconds are
// written only when non-zero.
func FormatTimestamp(ts time.Time) string {
	if ts.Nanosecond()/int(time.Microsecond) != 0 {
		return ts.Format(isoLayoutMicros)
	}
	return ts.Format(isoLayout)
}

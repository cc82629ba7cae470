package analytics

import (
	"encoding/json"

	"sales_analytics/internal/domain/order"
)

type Summary struct {
	Records              int          `json:"records"`
	TotalRevenue         float64      `json:"total_revenue"`
	TotalUnits           int          `json:"total_units"`
	AverageOrderValue    float64      `json:"average_order_value"`
	AverageUnitsPerOrder float64      `json:"average_units_per_order"`
	TopRegion            *GroupLeader `json:"top_region"`
	TopCategory          *GroupLeader `json:"top_category"`
}

type GroupLeader struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Breakdown is one group of a revenue breakdown. It marshals with the
// dimension name as the key field, e.g. {"region": "us-east", ...}.
type Breakdown struct {
	Dimension order.Dimension
	Key       string
	Revenue   float64
	Units     int
}

func (b Breakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		b.Dimension.String(): b.Key,
		"revenue":            b.Revenue,
		"units":              b.Units,
	})
}

type Forecast struct {
	PredictedUnits   float64 `json:"predicted_units"`
	PredictedRevenue float64 `json:"predicted_revenue"`
}

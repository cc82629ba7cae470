package order

import "fmt"

// Field names of the wire representation, in the order Parse checks them.
const (
	FieldOrderTS  = "order_ts"
	FieldOrderID  = "order_id"
	FieldRegion   = "region"
	FieldCategory = "category"
	FieldUnits    = "units"
	FieldRevenue  = "revenue"
)

var RequiredFields = []string{
	FieldOrderTS,
	FieldOrderID,
	FieldRegion,
	FieldCategory,
	FieldUnits,
	FieldRevenue,
}

// Dimension is an Order field usable as an aggregation key.
type Dimension int

const (
	DimensionRegion Dimension = iota
	DimensionCategory
)

// Key returns the grouping key of o along d.
func (d Dimension) Key(o Order) string {
	switch d {
	case DimensionRegion:
		return o.Region
	case DimensionCategory:
		return o.Category
	default:
		panic(fmt.Sprintf("order: unknown dimension %d", int(d)))
	}
}

func (d Dimension) String() string {
	switch d {
	case DimensionRegion:
		return FieldRegion
	case DimensionCategory:
		return FieldCategory
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

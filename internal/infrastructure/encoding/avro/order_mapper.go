package avro

import (
	"time"

	"sales_analytics/internal/domain/order"
)

// ToOrderCreatedNative maps an order view to the native form of OrderCreatedSchema.
func ToOrderCreatedNative(eventID string, emittedAt time.Time, v order.View) map[string]interface{} {
	return map[string]interface{}{
		"event_id":   eventID,
		"emitted_at": emittedAt.UTC(),
		"order_id":   v.OrderID,
		"region":     v.Region,
		"category":   v.Category,
		"units":      int64(v.Units),
		"revenue":    v.Revenue,
		"order_ts":   v.OrderTS,
	}
}

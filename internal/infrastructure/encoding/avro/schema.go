package avro

// OrderCreatedSchema describes the event emitted after an order is appended to the store.
// order_ts stays ISO-8601 text so consumers see the same rendering as the HTTP views.
const OrderCreatedSchema = `{
	"type": "record",
	"name": "OrderCreated",
	"namespace": "com.sales.analytics",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "emitted_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "order_id", "type": "string"},
		{"name": "region", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "units", "type": "long"},
		{"name": "revenue", "type": "double"},
		{"name": "order_ts", "type": "string"}
	]
}`

package order

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]any {
	return map[string]any{
		"order_id": "A1",
		"region":   "us-east",
		"category": "ai-platform",
		"units":    float64(5),
		"revenue":  100.5,
		"order_ts": "2024-01-01T00:00:00Z",
	}
}

func TestParse_Valid(t *testing.T) {
	o, err := Parse(validPayload())
	require.NoError(t, err)

	assert.Equal(t, "A1", o.OrderID)
	assert.Equal(t, "us-east", o.Region)
	assert.Equal(t, "ai-platform", o.Category)
	assert.Equal(t, 5, o.Units)
	assert.Equal(t, 100.5, o.Revenue)
	assert.True(t, o.OrderTS.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParse_MissingFields(t *testing.T) {
	t.Run("empty payload reports order_ts first", func(t *testing.T) {
		_, err := Parse(map[string]any{})

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, FieldOrderTS, vErr.Field)
		assert.Equal(t, "Missing required field: order_ts", err.Error())
		assert.ErrorIs(t, err, ErrValidation)
	})

	for _, field := range RequiredFields {
		t.Run(field, func(t *testing.T) {
			payload := validPayload()
			delete(payload, field)

			_, err := Parse(payload)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, field, vErr.Field)
			assert.Empty(t, vErr.Reason)
		})
	}

	t.Run("null counts as missing", func(t *testing.T) {
		payload := validPayload()
		payload["region"] = nil

		_, err := Parse(payload)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, FieldRegion, vErr.Field)
	})
}

func TestParse_Coercion(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   any
		check   func(t *testing.T, o Order)
		wantErr bool
	}{
		{
			name:  "numeric order id",
			field: "order_id",
			value: float64(42),
			check: func(t *testing.T, o Order) { assert.Equal(t, "42", o.OrderID) },
		},
		{
			name:  "units truncated from float",
			field: "units",
			value: 7.9,
			check: func(t *testing.T, o Order) { assert.Equal(t, 7, o.Units) },
		},
		{
			name:  "units from text",
			field: "units",
			value: " 12 ",
			check: func(t *testing.T, o Order) { assert.Equal(t, 12, o.Units) },
		},
		{
			name:  "units from json number",
			field: "units",
			value: json.Number("300"),
			check: func(t *testing.T, o Order) { assert.Equal(t, 300, o.Units) },
		},
		{
			name:  "negative units allowed",
			field: "units",
			value: float64(-3),
			check: func(t *testing.T, o Order) { assert.Equal(t, -3, o.Units) },
		},
		{
			name:    "units not numeric",
			field:   "units",
			value:   "many",
			wantErr: true,
		},
		{
			name:    "units NaN",
			field:   "units",
			value:   math.NaN(),
			wantErr: true,
		},
		{
			name:  "revenue from int",
			field: "revenue",
			value: 15000,
			check: func(t *testing.T, o Order) { assert.Equal(t, 15000.0, o.Revenue) },
		},
		{
			name:  "revenue from text",
			field: "revenue",
			value: "99.95",
			check: func(t *testing.T, o Order) { assert.Equal(t, 99.95, o.Revenue) },
		},
		{
			name:    "revenue object",
			field:   "revenue",
			value:   map[string]any{"amount": 1},
			wantErr: true,
		},
		{
			name:    "region list",
			field:   "region",
			value:   []any{"us"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			payload[tt.field] = tt.value

			o, err := Parse(payload)
			if tt.wantErr {
				var vErr *ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, tt.field, vErr.Field)
				assert.NotEmpty(t, vErr.Reason)
				return
			}
			require.NoError(t, err)
			tt.check(t, o)
		})
	}
}

func TestParse_Timestamps(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  time.Time
	}{
		{"zulu", "2024-02-10T10:00:00Z", time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)},
		{"explicit offset", "2024-02-10T12:00:00+02:00", time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)},
		{"naive is utc", "2024-02-10T10:00:00", time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)},
		{"fractional", "2024-02-10T10:00:00.123456Z", time.Date(2024, 2, 10, 10, 0, 0, 123456000, time.UTC)},
		{"space separator", "2024-02-10 10:00:00", time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)},
		{"date only", "2024-02-10", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
		{"epoch float", float64(1707559200), time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)},
		{"epoch fractional", 1707559200.5, time.Date(2024, 2, 10, 10, 0, 0, 500000000, time.UTC)},
		{"epoch json number", json.Number("1707559200"), time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)},
		{"basic offset", "2024-02-10T15:30:00+0530", time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)},
		{"basic offset minutes precision", "2024-02-10T15:30-0100", time.Date(2024, 2, 10, 16, 30, 0, 0, time.UTC)},
		{"hour only", "2024-02-10T10", time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)},
		{"hour only with offset", "2024-02-10T12+02:00", time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)},
		{"space separator hour only", "2024-02-10 10", time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)},
		{"epoch true", true, time.Date(1970, 1, 1, 0, 0, 1, 0, time.UTC)},
		{"epoch false", false, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			payload["order_ts"] = tt.value

			o, err := Parse(payload)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(o.OrderTS), "got %s want %s", o.OrderTS, tt.want)
		})
	}

	t.Run("garbage", func(t *testing.T) {
		payload := validPayload()
		payload["order_ts"] = "yesterday"

		_, err := Parse(payload)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "order_ts")
	})
}

func TestView_RoundTrip(t *testing.T) {
	orders := []Order{
		NewOrder("A1", "us-east", "storage", 3, 12.5, time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)),
		NewOrder("A2", "eu-central", "analytics", 0, 0, time.Date(2024, 3, 5, 23, 59, 59, 987654321, time.UTC)),
		NewOrder("A3", "ap-south", "ai", -1, -9.99, time.Date(2023, 12, 31, 22, 0, 0, 0, time.FixedZone("", 2*3600))),
	}

	for _, o := range orders {
		t.Run(o.OrderID, func(t *testing.T) {
			raw, err := json.Marshal(o.View())
			require.NoError(t, err)

			var payload map[string]any
			require.NoError(t, json.Unmarshal(raw, &payload))

			back, err := Parse(payload)
			require.NoError(t, err)
			assert.True(t, o.Equal(back), "want %+v got %+v", o, back)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "2024-01-01T00:00:00+00:00", FormatTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-01T00:00:00.000500+00:00", FormatTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 500000, time.UTC)))
	assert.Equal(t, "2024-01-01T10:00:00+02:00", FormatTimestamp(time.Date(2024, 1, 1, 10, 0, 0, 0, time.FixedZone("", 7200))))
}

func TestDimension_Key(t *testing.T) {
	o := NewOrder("A1", "us-east", "storage", 1, 1, time.Now())

	assert.Equal(t, "us-east", DimensionRegion.Key(o))
	assert.Equal(t, "storage", DimensionCategory.Key(o))
	assert.Equal(t, "region", DimensionRegion.String())
	assert.Panics(t, func() { Dimension(9).Key(o) })
}

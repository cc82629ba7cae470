package order

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// isoLayouts covers date-only text and date-time text with a T or space
// separator, hour, minute or second precision (fractional seconds are accepted
// by time.Parse after the seconds field) and an optional extended (+05:30) or
// basic (+0530) offset.
var isoLayouts = buildISOLayouts()

func buildISOLayouts() []string {
	layouts := make([]string, 0, 19)
	for _, sep := range []string{"T", " "} {
		for _, clock := range []string{"15:04:05", "15:04", "15"} {
			for _, offset := range []string{"Z07:00", "-0700", ""} {
				layouts = append(layouts, "2006-01-02"+sep+clock+offset)
			}
		}
	}
	return append(layouts, "2006-01-02")
}

// Parse builds an Order from an untyped field mapping such as a decoded JSON object.
// Required fields are checked in RequiredFields order and the first missing one is reported.
func Parse(payload map[string]any) (Order, error) {
	for _, field := range RequiredFields {
		if v, ok := payload[field]; !ok || v == nil {
			return Order{}, missingField(field)
		}
	}

	ts, err := parseTimestamp(payload[FieldOrderTS])
	if err != nil {
		return Order{}, err
	}
	orderID, err := coerceString(FieldOrderID, payload[FieldOrderID])
	if err != nil {
		return Order{}, err
	}
	region, err := coerceString(FieldRegion, payload[FieldRegion])
	if err != nil {
		return Order{}, err
	}
	category, err := coerceString(FieldCategory, payload[FieldCategory])
	if err != nil {
		return Order{}, err
	}
	units, err := coerceInt(FieldUnits, payload[FieldUnits])
	if err != nil {
		return Order{}, err
	}
	revenue, err := coerceFloat(FieldRevenue, payload[FieldRevenue])
	if err != nil {
		return Order{}, err
	}

	return NewOrder(orderID, region, category, units, revenue, ts), nil
}

func coerceString(field string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case bool:
		if t {
			return "True", nil
		}
		return "False", nil
	default:
		return "", invalidField(field, "unsupported type %T", v)
	}
}

func coerceInt(field string, v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case int32:
		return int(t), nil
	case float64:
		return truncate(field, t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return 0, invalidField(field, "not a number: %q", t.String())
		}
		return truncate(field, f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, invalidField(field, "not an integer: %q", t)
		}
		return i, nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, invalidField(field, "unsupported type %T", v)
	}
}

func truncate(field string, f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalidField(field, "cannot convert %v to an integer", f)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, invalidField(field, "%v out of range", f)
	}
	return int(math.Trunc(f)), nil
}

func coerceFloat(field string, v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, invalidField(field, "not a number: %q", t.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, invalidField(field, "not a number: %q", t)
		}
		return f, nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, invalidField(field, "unsupported type %T", v)
	}
}

func parseTimestamp(v any) (time.Time, error) {
	switch t := v.(type) {
	case string:
		return parseISO(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return time.Time{}, invalidField(FieldOrderTS, "not a timestamp: %q", t.String())
		}
		return fromEpoch(f)
	case float64:
		return fromEpoch(t)
	case int:
		return time.Unix(int64(t), 0).UTC(), nil
	case int64:
		return time.Unix(t, 0).UTC(), nil
	case bool:
		if t {
			return time.Unix(1, 0).UTC(), nil
		}
		return time.Unix(0, 0).UTC(), nil
	default:
		return time.Time{}, invalidField(FieldOrderTS, "unsupported type %T", v)
	}
}

func parseISO(raw string) (time.Time, error) {
	s := raw
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range isoLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, invalidField(FieldOrderTS, "not an ISO-8601 timestamp: %q", raw)
}

func fromEpoch(f float64) (time.Time, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, invalidField(FieldOrderTS, "invalid epoch value %v", f)
	}
	sec := math.Floor(f)
	usec := math.Round((f - sec) * 1e6)
	return time.Unix(int64(sec), int64(usec)*int64(time.Microsecond)).UTC(), nil
}

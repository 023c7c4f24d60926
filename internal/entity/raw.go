package entity

import (
	"encoding/json"
	"math"
	"strconv"
)

// Raw store values come back JSON-decoded (map[string]interface{}, float64,
// string, bool). These helpers read one field leniently: a field with an
// unexpected type reads as its zero value.

// AsMap returns v as a JSON object, or nil.
func AsMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func stringField(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func optionalStringField(m map[string]interface{}, key string) *string {
	v, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &v
}

func floatField(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func intField(m map[string]interface{}, key string) int64 {
	return int64(floatField(m, key))
}

// truthy mirrors how the mobile clients write flags: a bool, or 0/1.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		b, err := strconv.ParseBool(t)
		return err == nil && b
	default:
		return false
	}
}

func boolField(m map[string]interface{}, key string) bool {
	return truthy(m[key])
}

// present reports whether the value would be considered set by the store:
// non-nil and, for objects and strings, non-empty.
func present(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case map[string]interface{}:
		return len(t) > 0
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}

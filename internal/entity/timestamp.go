package entity

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Timestamp is an instant read from the store. The store writes epoch
// milliseconds, but older clients wrote ISO-8601 strings, so both are accepted.
// A zero or unparseable value is not Valid and never falls inside a window.
type Timestamp struct {
	Millis int64
	Valid  bool
}

// isoLayouts are tried in order. Layouts without a zone are read in the
// caller's location.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05.999999999-07",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-0700",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04",
	"2006-01-02T15",
	"2006-01-02 15",
	"2006-01-02",
}

// MillisOf converts t to epoch milliseconds.
func MillisOf(t time.Time) int64 {
	return t.UnixMilli()
}

// ParseTimestamp normalizes a raw store value. Naive ISO strings are
// interpreted in loc.
func ParseTimestamp(raw interface{}, loc *time.Location) Timestamp {
	if loc == nil {
		loc = time.Local
	}

	switch v := raw.(type) {
	case nil:
		return Timestamp{}
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Timestamp{}
		}
		return fromMillis(int64(v))
	case float32:
		return fromMillis(int64(v))
	case int:
		return fromMillis(int64(v))
	case int64:
		return fromMillis(v)
	case int32:
		return fromMillis(int64(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return fromMillis(n)
		}
		if f, err := v.Float64(); err == nil {
			return fromMillis(int64(f))
		}
		return Timestamp{}
	case string:
		return parseISO(v, loc)
	default:
		return Timestamp{}
	}
}

func fromMillis(ms int64) Timestamp {
	if ms == 0 {
		return Timestamp{}
	}
	return Timestamp{Millis: ms, Valid: true}
}

func parseISO(s string, loc *time.Location) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}

	// numeric strings are millisecond values written by hand
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromMillis(n)
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return fromMillis(t.UnixMilli())
		}
	}
	return Timestamp{}
}

// InRange reports start <= ts <= end, both ends inclusive.
func (t Timestamp) InRange(start, end int64) bool {
	if !t.Valid {
		return false
	}
	return start <= t.Millis && t.Millis <= end
}

// Time returns the instant in loc, or the zero time when invalid.
func (t Timestamp) Time(loc *time.Location) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(t.Millis).In(loc)
}

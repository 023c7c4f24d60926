package entity

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)
	tenUTC := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC).UnixMilli()

	tests := []struct {
		name  string
		raw   interface{}
		loc   *time.Location
		want  int64
		valid bool
	}{
		{"nil", nil, time.UTC, 0, false},
		{"zero millis", float64(0), time.UTC, 0, false},
		{"float millis", float64(1700000000000), time.UTC, 1700000000000, true},
		{"int millis", 1700000000000, time.UTC, 1700000000000, true},
		{"json number", json.Number("1700000000000"), time.UTC, 1700000000000, true},
		{"NaN", math.NaN(), time.UTC, 0, false},
		{"numeric string", "1700000000000", time.UTC, 1700000000000, true},
		{"rfc3339", "2026-03-10T10:00:00Z", time.UTC, tenUTC, true},
		{"rfc3339 fraction and offset", "2026-03-10T05:00:00.000-05:00", time.UTC, tenUTC, true},
		{"basic offset", "2026-03-10T10:00:00+0000", time.UTC, tenUTC, true},
		{"hour offset", "2026-03-10T10:00:00+00", time.UTC, tenUTC, true},
		{"space separator", "2026-03-10 10:00:00", time.UTC, tenUTC, true},
		{"space separator no seconds", "2026-03-10 10:00", time.UTC, tenUTC, true},
		{"no seconds", "2026-03-10T10:00", time.UTC, tenUTC, true},
		{"hour only", "2026-03-10T10", time.UTC, tenUTC, true},
		{"naive read in location", "2026-03-10T05:00:00", bogota, tenUTC, true},
		{"date only", "2026-03-10", time.UTC, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC).UnixMilli(), true},
		{"blank", "  ", time.UTC, 0, false},
		{"garbage", "yesterday", time.UTC, 0, false},
		{"bool", true, time.UTC, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := ParseTimestamp(tt.raw, tt.loc)
			assert.Equal(t, tt.valid, ts.Valid)
			assert.Equal(t, tt.want, ts.Millis)
		})
	}
}

func TestTimestamp_InRange(t *testing.T) {
	ts := Timestamp{Millis: 100, Valid: true}

	assert.True(t, ts.InRange(100, 200))
	assert.True(t, ts.InRange(0, 100))
	assert.False(t, ts.InRange(101, 200))
	assert.False(t, Timestamp{}.InRange(math.MinInt64, math.MaxInt64))
}

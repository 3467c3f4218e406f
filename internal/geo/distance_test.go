package geo_test

import (
	"math"
	"testing"

	"shiftmatch/internal/geo"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	zero := 0.0
	tests := []struct {
		name string
		a, b *geo.Coordinate
		want float64
	}{
		{name: "nil origin", a: nil, b: geo.Point(52, 13), want: math.Inf(1)},
		{name: "nil destination", a: geo.Point(52, 13), b: nil, want: math.Inf(1)},
		{name: "missing longitude", a: &geo.Coordinate{Lat: new(float64)}, b: geo.Point(52, 13), want: math.Inf(1)},
		{name: "zero latitude counts as missing", a: &geo.Coordinate{Lat: &zero, Lon: ptr(13)}, b: geo.Point(52, 13), want: math.Inf(1)},
		{name: "NaN latitude counts as missing", a: geo.Point(math.NaN(), 13), b: geo.Point(52, 13), want: math.Inf(1)},
		{name: "NaN longitude counts as missing", a: geo.Point(52, 13), b: geo.Point(52, math.NaN()), want: math.Inf(1)},
		{name: "infinite latitude", a: geo.Point(math.Inf(-1), 13), b: geo.Point(52, 13), want: math.Inf(1)},
		{name: "same point", a: geo.Point(52.5, 13.4), b: geo.Point(52.5, 13.4), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geo.Distance(tt.a, tt.b)
			if math.IsInf(tt.want, 1) {
				assert.True(t, math.IsInf(got, 1))
				return
			}
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDistance_BerlinMunich(t *testing.T) {
	// Berlin Alexanderplatz to Munich Marienplatz is roughly 504 km as the crow flies.
	got := geo.Distance(geo.Point(52.5219, 13.4132), geo.Point(48.1374, 11.5755))
	assert.InDelta(t, 504, got, 3)
	assert.InDelta(t, got, geo.Distance(geo.Point(48.1374, 11.5755), geo.Point(52.5219, 13.4132)), 1e-9)
}

func ptr(f float64) *float64 { return &f }

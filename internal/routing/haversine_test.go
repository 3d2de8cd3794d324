package routing

import (
	"math"
	"testing"

	"farecast/internal/types"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "Colombo to Kandy (~94km)",
			a:         types.Point{Lat: 6.9271, Lng: 79.8612},
			b:         types.Point{Lat: 7.2906, Lng: 80.6337},
			wantKm:    94.3,
			tolerance: 1.0,
		},
		{
			name:      "quarter turn along the equator",
			a:         types.Point{Lat: 0, Lng: 0},
			b:         types.Point{Lat: 0, Lng: 90},
			wantKm:    10007.5434,
			tolerance: 0.001,
		},
		{
			name:      "New York to Los Angeles (~3944km)",
			a:         types.Point{Lat: 40.7128, Lng: -74.0060},
			b:         types.Point{Lat: 34.0522, Lng: -118.2437},
			wantKm:    3944,
			tolerance: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("HaversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestHaversineKm_SamePointIsExactlyZero(t *testing.T) {
	p := types.Point{Lat: 6.9271, Lng: 79.8612}
	if got := HaversineKm(p, p); got != 0 {
		t.Errorf("HaversineKm(p, p) = %v, want exactly 0", got)
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	a := types.Point{Lat: 6.9, Lng: 79.8}
	b := types.Point{Lat: 7.3, Lng: 80.6}
	d1 := HaversineKm(a, b)
	d2 := HaversineKm(b, a)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("haversine is not symmetric: %f vs %f", d1, d2)
	}
}

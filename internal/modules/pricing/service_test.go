package pricing

import (
	"testing"

	"farecast/internal/types"
)

func testTariff() Tariff {
	return Tariff{
		BasePrice:           types.NewMoney(5000, "LKR"), // 50.00
		BaseDistanceKm:      5,
		OverageRateFraction: 0.30,
		BulkBaseMultiplier:  5,
	}
}

func TestCalculator_DistanceFee(t *testing.T) {
	calc := NewCalculator(testTariff())

	tests := []struct {
		name       string
		class      types.OrderClass
		distanceKm float64
		wantAmount int64
	}{
		{
			name:       "regular under threshold",
			class:      types.OrderClassRegular,
			distanceKm: 3,
			wantAmount: 5000,
		},
		{
			name:       "regular at threshold exactly",
			class:      types.OrderClassRegular,
			distanceKm: 5,
			wantAmount: 5000,
		},
		{
			// 50 + 5 × (50 × 0.30) = 125
			name:       "regular 10km",
			class:      types.OrderClassRegular,
			distanceKm: 10,
			wantAmount: 12500,
		},
		{
			// 50 + 1.5 × 15 = 72.50
			name:       "regular fractional overage",
			class:      types.OrderClassRegular,
			distanceKm: 6.5,
			wantAmount: 7250,
		},
		{
			name:       "regular zero distance",
			class:      types.OrderClassRegular,
			distanceKm: 0,
			wantAmount: 5000,
		},
		{
			// 50 × 5 = 250
			name:       "bulk under threshold",
			class:      types.OrderClassBulk,
			distanceKm: 3,
			wantAmount: 25000,
		},
		{
			name:       "bulk at threshold exactly",
			class:      types.OrderClassBulk,
			distanceKm: 5,
			wantAmount: 25000,
		},
		{
			// 250 + 5 × 15 = 325; the overage rate ignores the multiplier
			name:       "bulk 10km",
			class:      types.OrderClassBulk,
			distanceKm: 10,
			wantAmount: 32500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.DistanceFee(tt.class, tt.distanceKm)
			if got.Amount != tt.wantAmount {
				t.Errorf("DistanceFee(%s, %v) = %d, want %d", tt.class, tt.distanceKm, got.Amount, tt.wantAmount)
			}
			if got.Currency != "LKR" {
				t.Errorf("Currency = %q, want LKR", got.Currency)
			}
		})
	}
}

// Beyond the threshold the fee climbs by the same per-km amount each
// kilometre: base price times the overage fraction.
func TestCalculator_LinearBeyondThreshold(t *testing.T) {
	calc := NewCalculator(testTariff())
	perKm := int64(1500) // 5000 × 0.30

	prev := calc.DistanceFee(types.OrderClassRegular, 5)
	for km := 6.0; km <= 15; km++ {
		got := calc.DistanceFee(types.OrderClassRegular, km)
		if step := got.Amount - prev.Amount; step != perKm {
			t.Fatalf("fee step at %vkm = %d, want %d", km, step, perKm)
		}
		prev = got
	}
}

func TestCalculator_OverageRoundsToMinorUnit(t *testing.T) {
	calc := NewCalculator(Tariff{
		BasePrice:           types.NewMoney(5000, "LKR"),
		BaseDistanceKm:      5,
		OverageRateFraction: 0.30,
		BulkBaseMultiplier:  5,
	})

	// 0.123 km overage: 5000 × 0.30 × 0.123 = 184.5 ⇒ 185 minor units.
	got := calc.DistanceFee(types.OrderClassRegular, 5.123)
	if got.Amount != 5185 {
		t.Errorf("DistanceFee = %d, want 5185", got.Amount)
	}
}

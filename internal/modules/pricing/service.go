// README: Pricing service computes the distance-dependent fee.
package pricing

import "farecast/internal/types"

// Calculator prices trips against a fixed Tariff. It is pure and safe to
// share across concurrent requests.
type Calculator struct {
	tariff Tariff
}

func NewCalculator(tariff Tariff) *Calculator {
	return &Calculator{tariff: tariff}
}

// DistanceFee returns the distance-dependent fee for one trip. Distances at
// or under the tier threshold cost the flat tier base; beyond it each extra
// kilometre adds BasePrice times OverageRateFraction. The overage is rounded
// once to a minor unit, so the fee stays linear in the extra distance.
func (c *Calculator) DistanceFee(class types.OrderClass, distanceKm float64) types.Money {
	base := c.tariff.BasePrice
	if class == types.OrderClassBulk {
		base = base.MulInt(c.tariff.BulkBaseMultiplier)
	}
	if distanceKm <= c.tariff.BaseDistanceKm {
		return base
	}
	extraKm := distanceKm - c.tariff.BaseDistanceKm
	overage := c.tariff.BasePrice.Scale(c.tariff.OverageRateFraction * extraKm)
	return base.Add(overage)
}

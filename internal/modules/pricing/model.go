// README: Tariff definition for the tiered distance fee.
package pricing

import "farecast/internal/types"

// Tariff is the distance-pricing schedule. A flat base covers trips up to
// BaseDistanceKm; every kilometre beyond adds BasePrice scaled by
// OverageRateFraction. Bulk orders multiply the flat base by
// BulkBaseMultiplier; the per-km overage rate is the same for both classes.
type Tariff struct {
	BasePrice           types.Money
	BaseDistanceKm      float64
	OverageRateFraction float64
	BulkBaseMultiplier  int64
}

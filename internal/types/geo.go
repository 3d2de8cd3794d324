// README: Shared geographic value objects.
package types

import (
	"fmt"
	"math"
)

// Point is a WGS 84 coordinate pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) {
		return fmt.Errorf(".lat must be a finite number")
	}
	if math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) {
		return fmt.Errorf(".lng must be a finite number")
	}
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf(".lat must be between -90 and 90, got %v", p.Lat)
	}
	if p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf(".lng must be between -180 and 180, got %v", p.Lng)
	}
	return nil
}

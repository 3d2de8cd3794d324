// README: Night window check for the time-of-day surcharge.
package pricing

import "time"

// NightWindow is the local-time interval carrying a night surcharge. The
// window wraps midnight: hours from StartHour to 24 and from 0 to EndHour
// count as night.
type NightWindow struct {
	StartHour int
	EndHour   int
	Location  *time.Location
}

// IsNight reports whether t falls inside the window. The hour is taken in
// the window's own time zone, whatever zone t arrives in.
func (w NightWindow) IsNight(t time.Time) bool {
	h := t.In(w.Location).Hour()
	return h >= w.StartHour || h < w.EndHour
}

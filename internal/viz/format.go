package viz

import "fmt"

const (
	hour = 3600.0
	day  = 86400.0
	year = 365.25 * day
)

// FormatDuration renders a simulated duration in the largest unit that reads
// naturally: years above one year, days above one day, hours below that.
func FormatDuration(seconds float64) string {
	switch {
	case seconds >= year:
		return fmt.Sprintf("%.2f yr", seconds/year)
	case seconds >= day:
		return fmt.Sprintf("%.1f d", seconds/day)
	default:
		return fmt.Sprintf("%.1f h", seconds/hour)
	}
}

// FormatTimeScale renders a time scale as simulated time per frame.
func FormatTimeScale(secondsPerFrame float64) string {
	return FormatDuration(secondsPerFrame) + "/frame"
}

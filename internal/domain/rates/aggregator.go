package rates

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// MinimumRateInRange returns the lowest nightly rate across a stay. The walk
// covers the day after check-in through the day after check-out inclusive,
// matching how the calendar highlights a selected range. Dates missing from
// the map are skipped; +Inf means no date in the range had a rate.
func MinimumRateInRange(rates map[string]float64, start, end time.Time) float64 {
	minimum := math.Inf(1)
	last := end.AddDate(0, 0, 1)
	for d := start.AddDate(0, 0, 1); !d.After(last); d = d.AddDate(0, 0, 1) {
		if rate, ok := rates[d.Format(dateLayout)]; ok && rate < minimum {
			minimum = rate
		}
	}
	return minimum
}

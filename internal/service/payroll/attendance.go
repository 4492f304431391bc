package payroll

import (
	"sort"
	"time"
)

// Punches with no matching out get a synthetic clock-out at 19:00 local;
// a lone punch at or after 19:00 is discarded entirely.
const implicitOutHour = 19

// workedMinutes pairs a day's punches in chronological order and sums the
// elapsed time of each (in, out) pair. Pairs where in >= out contribute
// nothing; the total is never negative.
func workedMinutes(punches []time.Time) float64 {
	if len(punches) == 0 {
		return 0
	}

	sorted := make([]time.Time, len(punches))
	copy(sorted, punches)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var total time.Duration
	for i := 0; i < len(sorted); i += 2 {
		in := sorted[i]

		var out time.Time
		if i+1 < len(sorted) {
			out = sorted[i+1]
		} else {
			sevenPM := time.Date(in.Year(), in.Month(), in.Day(), implicitOutHour, 0, 0, 0, in.Location())
			if !in.Before(sevenPM) {
				continue
			}
			out = sevenPM
		}

		if in.Before(out) {
			total += out.Sub(in)
		}
	}

	return total.Minutes()
}

// dayCredit converts worked minutes into a working-day credit.
func dayCredit(minutes float64) float64 {
	switch {
	case minutes >= 360:
		return 1.0
	case minutes >= 240:
		return 0.5
	default:
		return 0
	}
}

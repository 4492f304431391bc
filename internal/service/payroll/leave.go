package payroll

import (
	"time"

	"github.com/stafftrack/hrops-backend-go/internal/domain/leave"
)

func leaveDayValue(dayType leave.DayType) float64 {
	if dayType == leave.DayTypeFull {
		return 1.0
	}
	return 0.5
}

// buildLeaveMaps expands approved leaves into per-user leave-date sets and
// fractional day counts, restricted to the [start, end] month window.
// A single-day leave counts by its start day type; longer leaves count the
// first date by start type, the last by end type, and interior dates as
// full days regardless of type.
func buildLeaveMaps(leaves []leave.Leave, start, end time.Time) (map[string]map[string]struct{}, map[string]float64) {
	dates := make(map[string]map[string]struct{})
	counts := make(map[string]float64)

	start = atMidnight(start)
	end = atMidnight(end)

	for _, l := range leaves {
		endDate := l.EndDate
		if endDate.IsZero() {
			endDate = l.StartDate
		}

		var inWindow []time.Time
		for _, d := range daysBetween(l.StartDate, endDate) {
			if d.Before(start) || d.After(end) {
				continue
			}
			inWindow = append(inWindow, d)
		}
		if len(inWindow) == 0 {
			continue
		}

		if dates[l.UserID] == nil {
			dates[l.UserID] = make(map[string]struct{})
		}

		for i, d := range inWindow {
			dates[l.UserID][isoDate(d)] = struct{}{}

			switch {
			case len(inWindow) == 1:
				counts[l.UserID] += leaveDayValue(l.StartDayType)
			case i == 0:
				counts[l.UserID] += leaveDayValue(l.StartDayType)
			case i == len(inWindow)-1:
				counts[l.UserID] += leaveDayValue(l.EndDayType)
			default:
				counts[l.UserID] += 1.0
			}
		}
	}

	return dates, counts
}

package payroll

import (
	"time"

	"github.com/stafftrack/hrops-backend-go/internal/domain/schedule"
)

const isoDateLayout = "2006-01-02"

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isoDate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// daysBetween returns every calendar date in [start, end] inclusive,
// normalized to midnight. Empty when start is after end.
func daysBetween(start, end time.Time) []time.Time {
	start = atMidnight(start)
	end = atMidnight(end)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// holidayDateSet expands holiday spans into a set of ISO date keys.
// Spans are expanded in full, not clipped to the payroll window; the
// repository only returns holidays that intersect it anyway.
func holidayDateSet(holidays []schedule.Holiday) map[string]struct{} {
	set := make(map[string]struct{})
	for _, h := range holidays {
		for _, d := range daysBetween(h.StartDate, h.EndDate) {
			set[isoDate(d)] = struct{}{}
		}
	}
	return set
}

var ordinalLabels = [...]string{
	schedule.OrdinalFirst,
	schedule.OrdinalSecond,
	schedule.OrdinalThird,
	schedule.OrdinalFourth,
}

// weekOrdinalLabel maps a day of month to its weekday-occurrence label.
// Occurrences past the fourth have no label and never match a qualifier.
func weekOrdinalLabel(dayOfMonth int) (string, bool) {
	week := (dayOfMonth + 6) / 7
	if week < 1 || week > len(ordinalLabels) {
		return "", false
	}
	return ordinalLabels[week-1], true
}

// weekOffDateSet resolves a user's week-off rule over [start, end] into a
// set of ISO date keys. A nil rule yields an empty set. The rule's
// effective date is deliberately not used to clip the window; the rule
// applies uniformly across it.
func weekOffDateSet(rule *schedule.WeekOffRule, start, end time.Time) map[string]struct{} {
	set := make(map[string]struct{})
	if rule == nil {
		return set
	}

	for _, d := range daysBetween(start, end) {
		config := rule.Days[d.Weekday().String()]
		if len(config) == 0 {
			continue
		}

		switch schedule.DayTag(config[0]) {
		case schedule.DayTagFullDay, schedule.DayTagHalfDay:
			// working-day overrides, not absences
			continue
		case schedule.DayTagWeekOff:
			qualifiers := config[1:]
			if len(qualifiers) == 0 {
				set[isoDate(d)] = struct{}{}
				continue
			}
			label, ok := weekOrdinalLabel(d.Day())
			if !ok {
				continue
			}
			for _, q := range qualifiers {
				if q == label {
					set[isoDate(d)] = struct{}{}
					break
				}
			}
		}
	}
	return set
}

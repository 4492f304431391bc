package schedule

import "time"

// Holiday is an inclusive company-wide date span.
type Holiday struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	IsDeleted bool
}

// DayTag classifies a weekday inside a week-off rule. FullDay and HalfDay
// are working-day overrides; only WeekOff marks the day as off.
type DayTag string

const (
	DayTagFullDay DayTag = "FullDay"
	DayTagHalfDay DayTag = "HalfDay"
	DayTagWeekOff DayTag = "WeekOff"
)

// Week-ordinal qualifiers restricting which occurrences of a weekday in a
// month are off. The fifth occurrence has no label and never matches.
const (
	OrdinalFirst  = "First"
	OrdinalSecond = "Second"
	OrdinalThird  = "Third"
	OrdinalFourth = "Fourth"
)

// WeekOffRule maps weekday names ("Sunday".."Saturday") to a config list:
// the first element is the DayTag, any remaining elements are ordinal
// qualifiers for a WeekOff tag.
type WeekOffRule struct {
	ID            string
	Name          string
	EffectiveDate time.Time
	Days          map[string][]string
	IsDeleted     bool
}

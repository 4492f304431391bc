package leave

import "time"

// DayType qualifies how much of the first or last day of a leave is taken.
type DayType string

const (
	DayTypeFull       DayType = "Full Day"
	DayTypeFirstHalf  DayType = "First Half"
	DayTypeSecondHalf DayType = "Second Half"
)

// Status of a leave request. Only approved leaves count toward payroll.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Leave struct {
	ID           string
	UserID       string
	StartDate    time.Time
	EndDate      time.Time
	StartDayType DayType
	EndDayType   DayType
	Status       Status
	IsDeleted    bool
}

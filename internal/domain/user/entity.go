package user

import "time"

// User is the slice of the staff directory the payroll core reads.
// The directory itself (profiles, credentials, roles) is owned elsewhere.
type User struct {
	ID            string
	FullName      string
	JoinDate      time.Time
	WeekOffRuleID *string
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusPending  PayrollStatus = "Pending"
	PayrollStatusApproved PayrollStatus = "Approved"
	PayrollStatusPaid     PayrollStatus = "Paid"
)

// PayrollRecord is the stored result of one (user, month) computation.
// A record is created once by the monthly driver and never recomputed;
// only its status changes afterwards.
type PayrollRecord struct {
	ID                  string
	UserID              string
	Month               time.Time // first of month, local midnight
	BaseSalary          decimal.Decimal
	OfficialWorkingDays int
	ActualWorkingDays   float64 // 0.5 steps
	Deduction           decimal.Decimal
	Payable             decimal.Decimal
	LeaveCount          float64
	Status              PayrollStatus
	IsDeleted           bool
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined fields
	UserName *string
}

// PayrollErrorLog is one append-only failure row. Rows are never
// deduplicated; the same (user, month) can fail on every pass.
type PayrollErrorLog struct {
	ID           string
	UserID       string
	TargetMonth  time.Time
	ErrorMessage string
	CreatedAt    time.Time
}

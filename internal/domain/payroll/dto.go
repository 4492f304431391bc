package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/stafftrack/hrops-backend-go/internal/pkg/validator"
)

// ========== CALCULATE DTOs ==========

// CalculateRequest asks for payroll figures for one month, optionally
// narrowed to one user. Nothing is persisted by a calculate call.
type CalculateRequest struct {
	UserID *string `json:"user_id,omitempty"`
	Month  string  `json:"month"` // YYYY-MM-01
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "is required"})
	} else if !validator.IsValidMonthToken(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a valid YYYY-MM-01 token"})
	}
	if r.UserID != nil && validator.IsEmpty(*r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "must not be blank when present"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserPayrollResult is one user's computed figures for one month.
// Message is set instead of figures when the user joined after the period.
type UserPayrollResult struct {
	UserID              string          `json:"user_id"`
	JoinDate            string          `json:"join_date"`
	Month               string          `json:"month"`
	BaseSalary          decimal.Decimal `json:"base_salary"`
	OfficialWorkingDays int             `json:"official_working_days"`
	ActualWorkingDays   float64         `json:"actual_working_days"`
	Deduction           decimal.Decimal `json:"deduction"`
	Payable             decimal.Decimal `json:"payable"`
	LeaveCount          float64         `json:"leave_count"`
	Message             string          `json:"message,omitempty"`
}

// ========== DRIVER DTOs ==========

// RunSummary reports one full driver pass.
type RunSummary struct {
	UsersSeen int `json:"users_seen"`
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// ========== RECORD DTOs ==========

type PayrollRecordResponse struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	UserName            *string         `json:"user_name,omitempty"`
	Month               string          `json:"month"`
	BaseSalary          decimal.Decimal `json:"base_salary"`
	OfficialWorkingDays int             `json:"official_working_days"`
	ActualWorkingDays   float64         `json:"actual_working_days"`
	Deduction           decimal.Decimal `json:"deduction"`
	Payable             decimal.Decimal `json:"payable"`
	LeaveCount          float64         `json:"leave_count"`
	Status              string          `json:"status"`
	CreatedAt           string          `json:"created_at"`
}

// RecordFilter narrows a payroll record listing.
type RecordFilter struct {
	UserID    *string
	FromMonth *string // YYYY-MM-01
	ToMonth   *string // YYYY-MM-01
	Status    *string
	Page      int
	Limit     int
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.FromMonth != nil && !validator.IsValidMonthToken(*f.FromMonth) {
		errs = append(errs, validator.ValidationError{Field: "from_month", Message: "must be a valid YYYY-MM-01 token"})
	}
	if f.ToMonth != nil && !validator.IsValidMonthToken(*f.ToMonth) {
		errs = append(errs, validator.ValidationError{Field: "to_month", Message: "must be a valid YYYY-MM-01 token"})
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 10
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	switch PayrollStatus(r.Status) {
	case PayrollStatusPending, PayrollStatusApproved, PayrollStatusPaid:
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Pending, Approved or Paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ErrorLogResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	TargetMonth  string `json:"target_month"`
	ErrorMessage string `json:"error_message"`
	CreatedAt    string `json:"created_at"`
}

package payroll

import "errors"

var (
	ErrInvalidMonth         = errors.New("invalid month selected")
	ErrCurrentMonth         = errors.New("cannot fetch current month payroll")
	ErrFutureMonth          = errors.New("future dates not allowed")
	ErrInvalidPeriod        = errors.New("please select a single month for payroll")
	ErrRecordNotFound       = errors.New("payroll record not found")
	ErrRecordAlreadyExists  = errors.New("payroll record already exists for this month")
	ErrInvalidPayrollStatus = errors.New("invalid payroll status")
)

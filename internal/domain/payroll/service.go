package payroll

import "context"

type PayrollService interface {
	// Calculate computes payroll figures for one past month without
	// persisting anything.
	Calculate(ctx context.Context, req CalculateRequest) ([]UserPayrollResult, error)

	// RunMonthly executes one idempotent driver pass over every active
	// user and every closed month since their join date.
	RunMonthly(ctx context.Context) (RunSummary, error)

	// Record access
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]PayrollRecordResponse, int64, error)
	UpdateRecordStatus(ctx context.Context, req UpdateStatusRequest) error
	ListErrorLogs(ctx context.Context, limit int) ([]ErrorLogResponse, error)
}

package payroll

import (
	"context"
	"time"
)

// PayrollRepository persists computed payroll records. The (user_id, month)
// pair is unique at the store level; Create reports ErrRecordAlreadyExists
// on conflict so callers can treat it as already-processed.
type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	Exists(ctx context.Context, userID string, month time.Time) (bool, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	List(ctx context.Context, filter RecordFilter) ([]PayrollRecord, int64, error)
	UpdateStatus(ctx context.Context, id string, status PayrollStatus) error
}

// ErrorLogRepository is the append-only failure log.
type ErrorLogRepository interface {
	Append(ctx context.Context, entry PayrollErrorLog) error
	List(ctx context.Context, limit int) ([]PayrollErrorLog, error)
}

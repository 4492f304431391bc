package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stafftrack/hrops-backend-go/internal/domain/payroll"
	"github.com/stafftrack/hrops-backend-go/internal/pkg/database"
)

type errorLogRepository struct {
	db *database.DB
}

func NewErrorLogRepository(db *database.DB) payroll.ErrorLogRepository {
	return &errorLogRepository{db: db}
}

func (r *errorLogRepository) Append(ctx context.Context, entry payroll.PayrollErrorLog) error {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payroll_error_logs (id, user_id, target_month, error_message)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := q.Exec(ctx, query, entry.ID, entry.UserID, entry.TargetMonth, entry.ErrorMessage); err != nil {
		return fmt.Errorf("failed to append payroll error log: %w", err)
	}

	return nil
}

func (r *errorLogRepository) List(ctx context.Context, limit int) ([]payroll.PayrollErrorLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, target_month, error_message, created_at
		FROM payroll_error_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll error logs: %w", err)
	}
	defer rows.Close()

	var entries []payroll.PayrollErrorLog
	for rows.Next() {
		var e payroll.PayrollErrorLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.TargetMonth, &e.ErrorMessage, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payroll error log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll error logs: %w", err)
	}

	return entries, nil
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/hrops-backend-go/internal/domain/payroll"
	"github.com/stafftrack/hrops-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// Create inserts one payroll record. The table carries a unique index on
// (user_id, month); a conflicting insert is reported as
// ErrRecordAlreadyExists so concurrent driver passes degrade to a skip
// instead of a duplicate row.
func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payroll_records (
			id, user_id, month, base_salary, official_working_days, actual_working_days,
			deduction, payable, leave_count, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, month) DO NOTHING
		RETURNING id, user_id, month, base_salary, official_working_days, actual_working_days,
			deduction, payable, leave_count, status, is_deleted, created_at, updated_at
	`

	var created payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		record.ID, record.UserID, record.Month, record.BaseSalary, record.OfficialWorkingDays, record.ActualWorkingDays,
		record.Deduction, record.Payable, record.LeaveCount, record.Status,
	).Scan(
		&created.ID, &created.UserID, &created.Month, &created.BaseSalary, &created.OfficialWorkingDays,
		&created.ActualWorkingDays, &created.Deduction, &created.Payable, &created.LeaveCount,
		&created.Status, &created.IsDeleted, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// DO NOTHING fired: the pair was inserted by someone else
			return payroll.PayrollRecord{}, payroll.ErrRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) Exists(ctx context.Context, userID string, month time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_records
			WHERE user_id = $1 AND month = $2 AND is_deleted = FALSE
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, month).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll record: %w", err)
	}

	return exists, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.user_id, pr.month, pr.base_salary, pr.official_working_days,
			   pr.actual_working_days, pr.deduction, pr.payable, pr.leave_count,
			   pr.status, pr.is_deleted, pr.created_at, pr.updated_at,
			   u.full_name AS user_name
		FROM payroll_records pr
		JOIN users u ON pr.user_id = u.id
		WHERE pr.id = $1 AND pr.is_deleted = FALSE
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.Month, &rec.BaseSalary, &rec.OfficialWorkingDays,
		&rec.ActualWorkingDays, &rec.Deduction, &rec.Payable, &rec.LeaveCount,
		&rec.Status, &rec.IsDeleted, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.UserName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.RecordFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_records pr
		JOIN users u ON pr.user_id = u.id
		WHERE pr.is_deleted = FALSE
	`
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil {
		baseQuery += fmt.Sprintf(" AND pr.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.FromMonth != nil {
		baseQuery += fmt.Sprintf(" AND pr.month >= $%d", argIdx)
		args = append(args, *filter.FromMonth)
		argIdx++
	}
	if filter.ToMonth != nil {
		baseQuery += fmt.Sprintf(" AND pr.month <= $%d", argIdx)
		args = append(args, *filter.ToMonth)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT pr.id, pr.user_id, pr.month, pr.base_salary, pr.official_working_days,
			   pr.actual_working_days, pr.deduction, pr.payable, pr.leave_count,
			   pr.status, pr.is_deleted, pr.created_at, pr.updated_at,
			   u.full_name AS user_name
		%s
		ORDER BY pr.month DESC, u.full_name
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Month, &rec.BaseSalary, &rec.OfficialWorkingDays,
			&rec.ActualWorkingDays, &rec.Deduction, &rec.Payable, &rec.LeaveCount,
			&rec.Status, &rec.IsDeleted, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.UserName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read payroll records: %w", err)
	}

	return records, totalCount, nil
}

func (r *payrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.PayrollStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
	`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

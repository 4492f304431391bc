package postgresql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stafftrack/hrops-backend-go/internal/domain/salary"
	"github.com/stafftrack/hrops-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

func (r *salaryRepository) ActiveAmounts(ctx context.Context, userID *string) (map[string]decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, amount
		FROM user_salaries
		WHERE is_active = TRUE AND is_deleted = FALSE
	`
	args := []interface{}{}

	if userID != nil {
		query += " AND user_id = $1"
		args = append(args, *userID)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load active salaries: %w", err)
	}
	defer rows.Close()

	amounts := make(map[string]decimal.Decimal)
	for rows.Next() {
		var uid string
		var amount decimal.Decimal
		if err := rows.Scan(&uid, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		amounts[uid] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read salaries: %w", err)
	}

	return amounts, nil
}

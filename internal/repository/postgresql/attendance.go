package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/hrops-backend-go/internal/domain/attendance"
	"github.com/stafftrack/hrops-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepository{db: db}
}

func (r *punchRepository) FindInRange(ctx context.Context, start, end time.Time, userID *string) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, time
		FROM attendances
		WHERE is_deleted = FALSE AND date BETWEEN $1 AND $2
	`
	args := []interface{}{start, end}

	if userID != nil {
		query += " AND user_id = $3"
		args = append(args, *userID)
	}
	query += " ORDER BY user_id, date, time"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find punches: %w", err)
	}
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		var p attendance.Punch
		if err := rows.Scan(&p.ID, &p.UserID, &p.Date, &p.Time); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punches: %w", err)
	}

	return punches, nil
}

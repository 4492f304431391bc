package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/hrops-backend-go/internal/domain/leave"
	"github.com/stafftrack/hrops-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) FindApprovedInWindow(ctx context.Context, start, end time.Time, userID *string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, start_day_type, end_day_type, status
		FROM leaves
		WHERE status = 'Approved' AND is_deleted = FALSE
		  AND start_date <= $2 AND end_date >= $1
	`
	args := []interface{}{start, end}

	if userID != nil {
		query += " AND user_id = $3"
		args = append(args, *userID)
	}
	query += " ORDER BY user_id, start_date"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find approved leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		if err := rows.Scan(&l.ID, &l.UserID, &l.StartDate, &l.EndDate, &l.StartDayType, &l.EndDayType, &l.Status); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaves: %w", err)
	}

	return leaves, nil
}

package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/hrops-backend-go/internal/domain/schedule"
	"github.com/stafftrack/hrops-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) schedule.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) FindOverlapping(ctx context.Context, start, end time.Time) ([]schedule.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date
		FROM holidays
		WHERE is_deleted = FALSE AND start_date <= $2 AND end_date >= $1
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to find holidays: %w", err)
	}
	defer rows.Close()

	var holidays []schedule.Holiday
	for rows.Next() {
		var h schedule.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.StartDate, &h.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays: %w", err)
	}

	return holidays, nil
}

type weekOffRuleRepository struct {
	db *database.DB
}

func NewWeekOffRuleRepository(db *database.DB) schedule.WeekOffRuleRepository {
	return &weekOffRuleRepository{db: db}
}

func (r *weekOffRuleRepository) GetByID(ctx context.Context, id string) (schedule.WeekOffRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, effective_date, days
		FROM week_off_rules
		WHERE id = $1 AND is_deleted = FALSE
	`

	var rule schedule.WeekOffRule
	var daysRaw []byte
	err := q.QueryRow(ctx, query, id).Scan(&rule.ID, &rule.Name, &rule.EffectiveDate, &daysRaw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WeekOffRule{}, schedule.ErrWeekOffRuleNotFound
		}
		return schedule.WeekOffRule{}, fmt.Errorf("failed to get week-off rule: %w", err)
	}

	if err := json.Unmarshal(daysRaw, &rule.Days); err != nil {
		return schedule.WeekOffRule{}, fmt.Errorf("failed to decode week-off days: %w", err)
	}

	return rule, nil
}

package schedule

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// FindOverlapping returns non-deleted holidays whose span intersects
	// [start, end].
	FindOverlapping(ctx context.Context, start, end time.Time) ([]Holiday, error)
}

type WeekOffRuleRepository interface {
	GetByID(ctx context.Context, id string) (WeekOffRule, error)
}

package attendance

import (
	"context"
	"time"
)

type PunchRepository interface {
	// FindInRange returns non-deleted punches with date inside [start, end].
	// userID narrows the query to one user when non-nil.
	FindInRange(ctx context.Context, start, end time.Time, userID *string) ([]Punch, error)
}

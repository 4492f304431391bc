package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// FindApprovedInWindow returns approved, non-deleted leaves whose span
	// overlaps [start, end]. userID narrows to one user when non-nil.
	FindApprovedInWindow(ctx context.Context, start, end time.Time, userID *string) ([]Leave, error)
}

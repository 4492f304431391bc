package salary

import (
	"context"

	"github.com/shopspring/decimal"
)

type SalaryRepository interface {
	// ActiveAmounts returns the active salary amount keyed by user id.
	// Users without an active row are simply absent from the map.
	// userID narrows to one user when non-nil.
	ActiveAmounts(ctx context.Context, userID *string) (map[string]decimal.Decimal, error)
}

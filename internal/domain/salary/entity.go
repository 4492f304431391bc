package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserSalary is one salary revision. The create/update flow elsewhere keeps
// at most one active row per user.
type UserSalary struct {
	ID            string
	UserID        string
	Amount        decimal.Decimal
	EffectiveDate time.Time
	IsActive      bool
	IsDeleted     bool
}

package response

import (
	"errors"
	"net/http"

	"github.com/stafftrack/hrops-backend-go/internal/domain/payroll"
	"github.com/stafftrack/hrops-backend-go/internal/domain/schedule"
	"github.com/stafftrack/hrops-backend-go/internal/domain/user"
	"github.com/stafftrack/hrops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidMonth),
		errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, payroll.ErrFutureMonth),
		errors.Is(err, payroll.ErrCurrentMonth),
		errors.Is(err, payroll.ErrInvalidPayrollStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this month")

	// Directory errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, schedule.ErrWeekOffRuleNotFound):
		NotFound(w, "Week-off rule not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

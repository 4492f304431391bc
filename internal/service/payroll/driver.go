package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stafftrack/hrops-backend-go/internal/domain/payroll"
)

// A pass that fails before per-pair handling (user enumeration, a broken
// connection) is restarted from scratch, at most this many attempts.
const maxPassAttempts = 3

// RunMonthly drives payroll generation for every active user over every
// closed month since their join date. Existing records are skipped, so the
// pass is idempotent and safe to trigger on demand at any time.
func (s *PayrollServiceImpl) RunMonthly(ctx context.Context) (payroll.RunSummary, error) {
	var lastErr error

	for attempt := 1; attempt <= maxPassAttempts; attempt++ {
		summary, err := s.runPass(ctx)
		if err == nil {
			slog.Info("Payroll: generation pass complete",
				"users", summary.UsersSeen,
				"processed", summary.Processed,
				"succeeded", summary.Succeeded,
				"skipped", summary.Skipped,
				"failed", summary.Failed,
			)
			return summary, nil
		}

		lastErr = err
		slog.Error("Payroll: generation pass failed", "attempt", attempt, "error", err)
	}

	slog.Error("Payroll: max retries reached, giving up until next trigger")
	return payroll.RunSummary{}, lastErr
}

func (s *PayrollServiceImpl) runPass(ctx context.Context) (payroll.RunSummary, error) {
	var summary payroll.RunSummary

	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return summary, fmt.Errorf("list active users: %w", err)
	}
	summary.UsersSeen = len(users)

	// last fully closed month; the current month is never processed
	lastClosed := firstOfMonth(s.now()).AddDate(0, -1, 0)

	for _, u := range users {
		months := monthsBetween(firstOfMonth(u.JoinDate), lastClosed)

		for _, month := range months {
			exists, err := s.payrollRepo.Exists(ctx, u.ID, month)
			if err != nil {
				return summary, fmt.Errorf("check payroll existence: %w", err)
			}
			if exists {
				summary.Skipped++
				continue
			}

			summary.Processed++

			userID := u.ID
			results, err := s.Calculate(ctx, payroll.CalculateRequest{
				UserID: &userID,
				Month:  month.Format(isoDateLayout),
			})
			if err != nil {
				// one pair's failure never aborts the batch
				s.logFailure(ctx, u.ID, month, err.Error())
				summary.Failed++
				continue
			}

			for _, result := range results {
				record := recordFromResult(result, month)
				if _, err := s.payrollRepo.Create(ctx, record); err != nil {
					if errors.Is(err, payroll.ErrRecordAlreadyExists) {
						// a concurrent pass won the insert
						summary.Skipped++
						continue
					}
					s.logFailure(ctx, u.ID, month, err.Error())
					summary.Failed++
					continue
				}
				summary.Succeeded++
			}
		}
	}

	return summary, nil
}

func (s *PayrollServiceImpl) logFailure(ctx context.Context, userID string, month time.Time, message string) {
	entry := payroll.PayrollErrorLog{
		UserID:       userID,
		TargetMonth:  month,
		ErrorMessage: message,
	}
	if err := s.errorLogRepo.Append(ctx, entry); err != nil {
		slog.Error("Payroll: failed to append error log",
			"user_id", userID,
			"month", month.Format(isoDateLayout),
			"error", err,
		)
		return
	}
	slog.Warn("Payroll: logged generation failure",
		"user_id", userID,
		"month", month.Format(isoDateLayout),
		"message", message,
	)
}

func recordFromResult(result payroll.UserPayrollResult, month time.Time) payroll.PayrollRecord {
	return payroll.PayrollRecord{
		UserID:              result.UserID,
		Month:               month,
		BaseSalary:          result.BaseSalary,
		OfficialWorkingDays: result.OfficialWorkingDays,
		ActualWorkingDays:   result.ActualWorkingDays,
		Deduction:           result.Deduction,
		Payable:             result.Payable,
		LeaveCount:          result.LeaveCount,
		Status:              payroll.PayrollStatusPending,
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthsBetween lists first-of-month dates from start through end inclusive.
func monthsBetween(start, end time.Time) []time.Time {
	var months []time.Time
	for m := start; !m.After(end); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

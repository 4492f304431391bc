package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/stafftrack/hrops-backend-go/internal/domain/payroll"
)

// PayrollJobs contains payroll-related cron jobs
type PayrollJobs struct {
	payrollService payroll.PayrollService

	// now is swapped out in tests
	now func() time.Time
}

func NewPayrollJobs(payrollService payroll.PayrollService) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
		now:            time.Now,
	}
}

// RegisterJobs registers all payroll-related cron jobs
func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler, checkInterval time.Duration) {
	// Check every interval, fire on the 1st of the month at midnight
	scheduler.AddJob("generate_monthly_payroll", checkInterval, j.GenerateMonthlyPayroll)
}

// GenerateMonthlyPayroll runs one driver pass at the start of each month.
// The pass is idempotent, so the job being woken more than once inside the
// gate window only costs redundant existence checks.
func (j *PayrollJobs) GenerateMonthlyPayroll(ctx context.Context) error {
	// Only run on the 1st of the month (00:00-00:59 local)
	now := j.now()
	if now.Day() != 1 || now.Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting monthly payroll generation")

	summary, err := j.payrollService.RunMonthly(ctx)
	if err != nil {
		return err
	}

	slog.Info("Cron: Monthly payroll generation finished",
		"users", summary.UsersSeen,
		"processed", summary.Processed,
		"succeeded", summary.Succeeded,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return nil
}

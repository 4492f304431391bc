package payroll

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/hrops-backend-go/internal/domain/attendance"
	"github.com/stafftrack/hrops-backend-go/internal/domain/leave"
	"github.com/stafftrack/hrops-backend-go/internal/domain/payroll"
	"github.com/stafftrack/hrops-backend-go/internal/domain/salary"
	"github.com/stafftrack/hrops-backend-go/internal/domain/schedule"
	"github.com/stafftrack/hrops-backend-go/internal/domain/user"
	"github.com/stafftrack/hrops-backend-go/internal/pkg/database"
	"github.com/stafftrack/hrops-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db           *database.DB
	userRepo     user.UserRepository
	punchRepo    attendance.PunchRepository
	leaveRepo    leave.LeaveRepository
	holidayRepo  schedule.HolidayRepository
	weekOffRepo  schedule.WeekOffRuleRepository
	salaryRepo   salary.SalaryRepository
	payrollRepo  payroll.PayrollRepository
	errorLogRepo payroll.ErrorLogRepository

	// now is swapped out in tests
	now func() time.Time
}

func NewPayrollService(
	db *database.DB,
	userRepo user.UserRepository,
	punchRepo attendance.PunchRepository,
	leaveRepo leave.LeaveRepository,
	holidayRepo schedule.HolidayRepository,
	weekOffRepo schedule.WeekOffRuleRepository,
	salaryRepo salary.SalaryRepository,
	payrollRepo payroll.PayrollRepository,
	errorLogRepo payroll.ErrorLogRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		userRepo:     userRepo,
		punchRepo:    punchRepo,
		leaveRepo:    leaveRepo,
		holidayRepo:  holidayRepo,
		weekOffRepo:  weekOffRepo,
		salaryRepo:   salaryRepo,
		payrollRepo:  payrollRepo,
		errorLogRepo: errorLogRepo,
		now:          time.Now,
	}
}

// Calculate computes one month's figures without persisting anything.
func (s *PayrollServiceImpl) Calculate(ctx context.Context, req payroll.CalculateRequest) ([]payroll.UserPayrollResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end, err := monthWindow(req.Month, s.now())
	if err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx, start, end, req.UserID)
	if err != nil {
		return nil, err
	}

	return computeResults(snap, start, end), nil
}

// ========== RECORD ACCESS ==========

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) ([]payroll.PayrollRecordResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	records, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, toRecordResponse(r))
	}
	return result, total, nil
}

func (s *PayrollServiceImpl) UpdateRecordStatus(ctx context.Context, req payroll.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// existence check and write see the same record state
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.payrollRepo.GetByID(txCtx, req.ID); err != nil {
			return err
		}
		return s.payrollRepo.UpdateStatus(txCtx, req.ID, payroll.PayrollStatus(req.Status))
	})
}

func (s *PayrollServiceImpl) ListErrorLogs(ctx context.Context, limit int) ([]payroll.ErrorLogResponse, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}

	entries, err := s.errorLogRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.ErrorLogResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, payroll.ErrorLogResponse{
			ID:           e.ID,
			UserID:       e.UserID,
			TargetMonth:  e.TargetMonth.Format(isoDateLayout),
			ErrorMessage: e.ErrorMessage,
			CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

func toRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	return payroll.PayrollRecordResponse{
		ID:                  r.ID,
		UserID:              r.UserID,
		UserName:            r.UserName,
		Month:               r.Month.Format(isoDateLayout),
		BaseSalary:          r.BaseSalary,
		OfficialWorkingDays: r.OfficialWorkingDays,
		ActualWorkingDays:   r.ActualWorkingDays,
		Deduction:           r.Deduction,
		Payable:             r.Payable,
		LeaveCount:          r.LeaveCount,
		Status:              string(r.Status),
		CreatedAt:           r.CreatedAt.Format(time.RFC3339),
	}
}

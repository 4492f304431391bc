package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stafftrack/hrops-backend-go/internal/domain/schedule"
	"github.com/stafftrack/hrops-backend-go/internal/domain/user"
)

// snapshot holds every input one calculator run needs, read once up front.
// Built fresh per call and never mutated afterwards, so concurrent passes
// cannot observe each other's state.
type snapshot struct {
	users        []user.User
	salaries     map[string]decimal.Decimal
	punches      map[string]map[string][]time.Time // user id -> ISO date -> punch times
	leaveDates   map[string]map[string]struct{}
	leaveCounts  map[string]float64
	holidays     map[string]struct{}
	weekOffRules map[string]schedule.WeekOffRule
}

// loadSnapshot reads the month window's inputs from the stores. userID
// narrows everything to a single user when non-nil; an unknown user id
// yields an empty snapshot rather than an error, matching how the
// calculator reports on whatever users it can see.
func (s *PayrollServiceImpl) loadSnapshot(ctx context.Context, start, end time.Time, userID *string) (*snapshot, error) {
	snap := &snapshot{
		salaries:     make(map[string]decimal.Decimal),
		punches:      make(map[string]map[string][]time.Time),
		weekOffRules: make(map[string]schedule.WeekOffRule),
	}

	if userID != nil {
		u, err := s.userRepo.GetByID(ctx, *userID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return snap, nil
			}
			return nil, fmt.Errorf("load user: %w", err)
		}
		snap.users = []user.User{u}
	} else {
		users, err := s.userRepo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("load users: %w", err)
		}
		snap.users = users
	}

	salaries, err := s.salaryRepo.ActiveAmounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load salaries: %w", err)
	}
	snap.salaries = salaries

	punches, err := s.punchRepo.FindInRange(ctx, start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("load punches: %w", err)
	}
	for _, p := range punches {
		iso := isoDate(p.Date)
		if snap.punches[p.UserID] == nil {
			snap.punches[p.UserID] = make(map[string][]time.Time)
		}
		snap.punches[p.UserID][iso] = append(snap.punches[p.UserID][iso], p.Time)
	}

	leaves, err := s.leaveRepo.FindApprovedInWindow(ctx, start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("load leaves: %w", err)
	}
	snap.leaveDates, snap.leaveCounts = buildLeaveMaps(leaves, start, end)

	holidays, err := s.holidayRepo.FindOverlapping(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}
	snap.holidays = holidayDateSet(holidays)

	for _, u := range snap.users {
		if u.WeekOffRuleID == nil {
			continue
		}
		if _, ok := snap.weekOffRules[*u.WeekOffRuleID]; ok {
			continue
		}
		rule, err := s.weekOffRepo.GetByID(ctx, *u.WeekOffRuleID)
		if err != nil {
			if errors.Is(err, schedule.ErrWeekOffRuleNotFound) {
				// user keeps an empty week-off set
				continue
			}
			return nil, fmt.Errorf("load week-off rule: %w", err)
		}
		snap.weekOffRules[rule.ID] = rule
	}

	return snap, nil
}

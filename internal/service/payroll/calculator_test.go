package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/hrops-backend-go/internal/domain/payroll"
	"github.com/stafftrack/hrops-backend-go/internal/domain/schedule"
	"github.com/stafftrack/hrops-backend-go/internal/domain/user"
)

func newTestSnapshot(users ...user.User) *snapshot {
	return &snapshot{
		users:        users,
		salaries:     make(map[string]decimal.Decimal),
		punches:      make(map[string]map[string][]time.Time),
		leaveDates:   make(map[string]map[string]struct{}),
		leaveCounts:  make(map[string]float64),
		holidays:     make(map[string]struct{}),
		weekOffRules: make(map[string]schedule.WeekOffRule),
	}
}

// addFullWorkDay records a 09:00-17:00 pair (480 minutes, full credit).
func addFullWorkDay(snap *snapshot, userID string, d time.Time) {
	iso := isoDate(d)
	if snap.punches[userID] == nil {
		snap.punches[userID] = make(map[string][]time.Time)
	}
	snap.punches[userID][iso] = []time.Time{
		time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, d.Location()),
		time.Date(d.Year(), d.Month(), d.Day(), 17, 0, 0, 0, d.Location()),
	}
}

// ========== MONTH WINDOW ==========

func TestMonthWindow_ValidPastMonth(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.Local)
	start, end, err := monthWindow("2025-07-01", now)

	require.NoError(t, err)
	assert.Equal(t, date(2025, time.July, 1), start)
	assert.Equal(t, date(2025, time.July, 31), end)
}

func TestMonthWindow_MalformedToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.Local)

	_, _, err := monthWindow("2025-13-01", now)
	assert.ErrorIs(t, err, payroll.ErrInvalidMonth)

	_, _, err = monthWindow("not-a-month", now)
	assert.ErrorIs(t, err, payroll.ErrInvalidMonth)
}

func TestMonthWindow_FutureMonthRejected(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.Local)

	_, _, err := monthWindow("2025-09-01", now)
	assert.ErrorIs(t, err, payroll.ErrFutureMonth)

	_, _, err = monthWindow("2026-01-01", now)
	assert.ErrorIs(t, err, payroll.ErrFutureMonth)
}

func TestMonthWindow_CurrentMonthRejected(t *testing.T) {
	t.Parallel()

	// mid-month the window end is still ahead of today
	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.Local)
	_, _, err := monthWindow("2025-08-01", now)
	assert.ErrorIs(t, err, payroll.ErrFutureMonth)

	// on the last day the window is fully elapsed but it is still the
	// current month
	now = time.Date(2025, time.August, 31, 23, 0, 0, 0, time.Local)
	_, _, err = monthWindow("2025-08-01", now)
	assert.ErrorIs(t, err, payroll.ErrCurrentMonth)
}

// ========== PER-USER COMPUTATION ==========

func TestComputeUser_DeductionArithmetic(t *testing.T) {
	t.Parallel()

	// July 2025, joined July 7: 25-day effective window, no holidays or
	// week-offs, so officialDays = 25. Full attendance on 23 of them.
	u := user.User{ID: "u1", JoinDate: date(2025, time.July, 7)}
	snap := newTestSnapshot(u)
	snap.salaries["u1"] = decimal.NewFromInt(30000)
	for d := 7; d <= 29; d++ {
		addFullWorkDay(snap, "u1", date(2025, time.July, d))
	}

	result := computeUser(u, snap, date(2025, time.July, 1), date(2025, time.July, 31))

	assert.Equal(t, 25, result.OfficialWorkingDays)
	assert.Equal(t, 23.0, result.ActualWorkingDays)
	assert.True(t, decimal.NewFromInt(2400).Equal(result.Deduction), "deduction = %s", result.Deduction)
	assert.True(t, decimal.NewFromInt(27600).Equal(result.Payable), "payable = %s", result.Payable)
	assert.Empty(t, result.Message)
}

func TestComputeUser_JoinedAfterPeriod(t *testing.T) {
	t.Parallel()

	u := user.User{ID: "u1", JoinDate: date(2025, time.April, 5)}
	snap := newTestSnapshot(u)
	snap.salaries["u1"] = decimal.NewFromInt(30000)

	result := computeUser(u, snap, date(2025, time.March, 1), date(2025, time.March, 31))

	assert.Equal(t, "Joined after payroll period", result.Message)
	assert.Zero(t, result.OfficialWorkingDays)
	assert.Zero(t, result.ActualWorkingDays)
	assert.True(t, result.Payable.IsZero())
}

func TestComputeUser_ClassificationCompleteness(t *testing.T) {
	t.Parallel()

	// March 2025: 31 days, Sundays off (5 of them: 2, 9, 16, 23, 30),
	// holiday on Thu 20 + Fri 21. Every day is classified exactly once.
	ruleID := "r1"
	u := user.User{ID: "u1", JoinDate: date(2024, time.January, 1), WeekOffRuleID: &ruleID}
	snap := newTestSnapshot(u)
	snap.salaries["u1"] = decimal.NewFromInt(24000)
	snap.holidays["2025-03-20"] = struct{}{}
	snap.holidays["2025-03-21"] = struct{}{}
	snap.weekOffRules[ruleID] = schedule.WeekOffRule{
		ID:   ruleID,
		Days: map[string][]string{"Sunday": {string(schedule.DayTagWeekOff)}},
	}

	result := computeUser(u, snap, date(2025, time.March, 1), date(2025, time.March, 31))

	assert.Equal(t, 31-5-2, result.OfficialWorkingDays)
}

func TestComputeUser_OffDayAttendanceStillEarnsCredit(t *testing.T) {
	t.Parallel()

	// actualDays runs over the whole window: working a Sunday that is a
	// week-off still earns the day credit
	ruleID := "r1"
	u := user.User{ID: "u1", JoinDate: date(2024, time.January, 1), WeekOffRuleID: &ruleID}
	snap := newTestSnapshot(u)
	snap.salaries["u1"] = decimal.NewFromInt(26000)
	snap.weekOffRules[ruleID] = schedule.WeekOffRule{
		ID:   ruleID,
		Days: map[string][]string{"Sunday": {string(schedule.DayTagWeekOff)}},
	}
	addFullWorkDay(snap, "u1", date(2025, time.March, 2)) // a Sunday

	result := computeUser(u, snap, date(2025, time.March, 1), date(2025, time.March, 31))

	assert.Equal(t, 26, result.OfficialWorkingDays)
	assert.Equal(t, 1.0, result.ActualWorkingDays)
}

func TestComputeUser_LeaveReportedButNotDeducted(t *testing.T) {
	t.Parallel()

	// Documented business rule: the leave count is carried on the result
	// but does not reduce the attendance deficit. A user on approved
	// leave with no punches is deducted for those days anyway.
	u := user.User{ID: "u1", JoinDate: date(2024, time.January, 1)}
	snap := newTestSnapshot(u)
	snap.salaries["u1"] = decimal.NewFromInt(31000)
	snap.leaveCounts["u1"] = 2.5

	result := computeUser(u, snap, date(2025, time.March, 1), date(2025, time.March, 31))

	assert.Equal(t, 2.5, result.LeaveCount)
	assert.Equal(t, 31, result.OfficialWorkingDays)
	assert.Zero(t, result.ActualWorkingDays)
	// full deduction: 31 days x 1000/day
	assert.True(t, decimal.NewFromInt(31000).Equal(result.Deduction), "deduction = %s", result.Deduction)
	assert.True(t, result.Payable.IsZero(), "payable = %s", result.Payable)
}

func TestComputeUser_NoActiveSalary(t *testing.T) {
	t.Parallel()

	u := user.User{ID: "u1", JoinDate: date(2024, time.January, 1)}
	snap := newTestSnapshot(u)

	result := computeUser(u, snap, date(2025, time.March, 1), date(2025, time.March, 31))

	assert.True(t, result.BaseSalary.IsZero())
	assert.True(t, result.Deduction.IsZero())
	assert.True(t, result.Payable.IsZero())
	assert.Equal(t, 31, result.OfficialWorkingDays)
}

func TestComputeUser_ZeroOfficialDays(t *testing.T) {
	t.Parallel()

	// every day off: per-day rate is zero, nothing is deducted
	ruleID := "r1"
	u := user.User{ID: "u1", JoinDate: date(2024, time.January, 1), WeekOffRuleID: &ruleID}
	snap := newTestSnapshot(u)
	snap.salaries["u1"] = decimal.NewFromInt(20000)
	days := make(map[string][]string)
	for _, name := range []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"} {
		days[name] = []string{string(schedule.DayTagWeekOff)}
	}
	snap.weekOffRules[ruleID] = schedule.WeekOffRule{ID: ruleID, Days: days}

	result := computeUser(u, snap, date(2025, time.March, 1), date(2025, time.March, 31))

	assert.Zero(t, result.OfficialWorkingDays)
	assert.True(t, result.Deduction.IsZero())
	assert.True(t, decimal.NewFromInt(20000).Equal(result.Payable))
}

func TestComputeUser_JoinMidMonthShrinksWindow(t *testing.T) {
	t.Parallel()

	u := user.User{ID: "u1", JoinDate: date(2025, time.March, 15)}
	snap := newTestSnapshot(u)
	snap.salaries["u1"] = decimal.NewFromInt(17000)

	result := computeUser(u, snap, date(2025, time.March, 1), date(2025, time.March, 31))

	// March 15-31
	assert.Equal(t, 17, result.OfficialWorkingDays)
}

func TestComputeResults_OneResultPerUser(t *testing.T) {
	t.Parallel()

	u1 := user.User{ID: "u1", JoinDate: date(2024, time.January, 1)}
	u2 := user.User{ID: "u2", JoinDate: date(2025, time.April, 1)}
	snap := newTestSnapshot(u1, u2)

	results := computeResults(snap, date(2025, time.March, 1), date(2025, time.March, 31))

	require.Len(t, results, 2)
	assert.Equal(t, "u1", results[0].UserID)
	assert.Empty(t, results[0].Message)
	assert.Equal(t, "2025-03", results[0].Month)
	assert.Equal(t, "Joined after payroll period", results[1].Message)
}

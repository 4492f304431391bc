package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stafftrack/hrops-backend-go/internal/domain/payroll"
	"github.com/stafftrack/hrops-backend-go/internal/domain/schedule"
	"github.com/stafftrack/hrops-backend-go/internal/domain/user"
)

const monthLabelLayout = "2006-01"

// monthWindow parses a YYYY-MM-01 token and returns the inclusive
// [first, last] day window for that month, rejecting anything that is not
// a fully closed past month relative to now.
func monthWindow(token string, now time.Time) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation(isoDateLayout, token, now.Location())
	if err != nil {
		return time.Time{}, time.Time{}, payroll.ErrInvalidMonth
	}

	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	if end.Before(start) {
		return time.Time{}, time.Time{}, payroll.ErrInvalidPeriod
	}

	today := atMidnight(now)
	if start.After(today) || end.After(today) {
		return time.Time{}, time.Time{}, payroll.ErrFutureMonth
	}
	if start.Year() == now.Year() && start.Month() == now.Month() {
		return time.Time{}, time.Time{}, payroll.ErrCurrentMonth
	}

	return start, end, nil
}

// computeResults runs the per-user payroll math over an input snapshot.
// Pure: every read the computation needs already sits in the snapshot.
func computeResults(snap *snapshot, start, end time.Time) []payroll.UserPayrollResult {
	results := make([]payroll.UserPayrollResult, 0, len(snap.users))
	for _, u := range snap.users {
		results = append(results, computeUser(u, snap, start, end))
	}
	return results
}

func computeUser(u user.User, snap *snapshot, start, end time.Time) payroll.UserPayrollResult {
	joinDate := atMidnight(u.JoinDate)

	effectiveStart := atMidnight(start)
	if joinDate.After(effectiveStart) {
		effectiveStart = joinDate
	}
	effectiveEnd := atMidnight(end)

	if effectiveStart.After(effectiveEnd) {
		return payroll.UserPayrollResult{
			UserID:     u.ID,
			JoinDate:   isoDate(u.JoinDate),
			BaseSalary: decimal.Zero,
			Deduction:  decimal.Zero,
			Payable:    decimal.Zero,
			Message:    "Joined after payroll period",
		}
	}

	salary := decimal.Zero
	if amount, ok := snap.salaries[u.ID]; ok {
		salary = amount
	}

	var rule *schedule.WeekOffRule
	if u.WeekOffRuleID != nil {
		if r, ok := snap.weekOffRules[*u.WeekOffRuleID]; ok {
			rule = &r
		}
	}
	weekOffSet := weekOffDateSet(rule, effectiveStart, effectiveEnd)

	officialDays := 0
	actualDays := 0.0
	for _, d := range daysBetween(effectiveStart, effectiveEnd) {
		iso := isoDate(d)

		_, isHoliday := snap.holidays[iso]
		_, isWeekOff := weekOffSet[iso]
		if !isHoliday && !isWeekOff {
			officialDays++
		}

		// actual credit runs over the whole window; an off day with
		// punches still earns its credit
		actualDays += dayCredit(workedMinutes(snap.punches[u.ID][iso]))
	}

	perDay := decimal.Zero
	if officialDays > 0 {
		perDay = salary.Div(decimal.NewFromInt(int64(officialDays)))
	}

	deficit := decimal.NewFromInt(int64(officialDays)).Sub(decimal.NewFromFloat(actualDays))
	deduction := deficit.Mul(perDay)
	if deduction.IsNegative() {
		deduction = decimal.Zero
	}

	// no floor at zero: a deduction larger than the salary goes negative
	payable := salary.Sub(deduction)
	if payable.GreaterThan(salary) {
		payable = salary
	}

	return payroll.UserPayrollResult{
		UserID:              u.ID,
		JoinDate:            isoDate(u.JoinDate),
		Month:               start.Format(monthLabelLayout),
		BaseSalary:          salary,
		OfficialWorkingDays: officialDays,
		ActualWorkingDays:   actualDays,
		Deduction:           deduction.Round(2),
		Payable:             payable.Round(2),
		LeaveCount:          snap.leaveCounts[u.ID],
	}
}

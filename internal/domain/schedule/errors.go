package schedule

import "errors"

var ErrWeekOffRuleNotFound = errors.New("week-off rule not found")

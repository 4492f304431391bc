package attendance

import "time"

// Punch is one raw clock event. Punches carry no in/out direction; the
// aggregator pairs them by order within a day.
type Punch struct {
	ID        string
	UserID    string
	Date      time.Time
	Time      time.Time
	IsDeleted bool
}

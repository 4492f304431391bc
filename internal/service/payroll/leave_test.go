package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/hrops-backend-go/internal/domain/leave"
)

func TestBuildLeaveMaps_SingleFullDay(t *testing.T) {
	t.Parallel()

	leaves := []leave.Leave{{
		UserID:       "u1",
		StartDate:    date(2025, time.March, 10),
		EndDate:      date(2025, time.March, 10),
		StartDayType: leave.DayTypeFull,
		EndDayType:   leave.DayTypeFull,
	}}

	dates, counts := buildLeaveMaps(leaves, date(2025, time.March, 1), date(2025, time.March, 31))

	assert.Contains(t, dates["u1"], "2025-03-10")
	assert.Equal(t, 1.0, counts["u1"])
}

func TestBuildLeaveMaps_SingleHalfDay(t *testing.T) {
	t.Parallel()

	leaves := []leave.Leave{{
		UserID:       "u1",
		StartDate:    date(2025, time.March, 10),
		EndDate:      date(2025, time.March, 10),
		StartDayType: leave.DayTypeFirstHalf,
		EndDayType:   leave.DayTypeFirstHalf,
	}}

	_, counts := buildLeaveMaps(leaves, date(2025, time.March, 1), date(2025, time.March, 31))

	assert.Equal(t, 0.5, counts["u1"])
}

func TestBuildLeaveMaps_ThreeDayMixedEnds(t *testing.T) {
	t.Parallel()

	// half start + full interior + full end = 2.5
	leaves := []leave.Leave{{
		UserID:       "u1",
		StartDate:    date(2025, time.March, 10),
		EndDate:      date(2025, time.March, 12),
		StartDayType: leave.DayTypeFirstHalf,
		EndDayType:   leave.DayTypeFull,
	}}

	dates, counts := buildLeaveMaps(leaves, date(2025, time.March, 1), date(2025, time.March, 31))

	require.Len(t, dates["u1"], 3)
	assert.Equal(t, 2.5, counts["u1"])
}

func TestBuildLeaveMaps_InteriorDaysAlwaysFull(t *testing.T) {
	t.Parallel()

	// 5 days, both ends half: 0.5 + 1 + 1 + 1 + 0.5 = 4
	leaves := []leave.Leave{{
		UserID:       "u1",
		StartDate:    date(2025, time.March, 10),
		EndDate:      date(2025, time.March, 14),
		StartDayType: leave.DayTypeSecondHalf,
		EndDayType:   leave.DayTypeFirstHalf,
	}}

	_, counts := buildLeaveMaps(leaves, date(2025, time.March, 1), date(2025, time.March, 31))

	assert.Equal(t, 4.0, counts["u1"])
}

func TestBuildLeaveMaps_ClipsToWindow(t *testing.T) {
	t.Parallel()

	// spans Feb 27 - Mar 2; only Mar 1 and Mar 2 fall in the window.
	// Mar 1 is the first filtered date (start type), Mar 2 the last (end type).
	leaves := []leave.Leave{{
		UserID:       "u1",
		StartDate:    date(2025, time.February, 27),
		EndDate:      date(2025, time.March, 2),
		StartDayType: leave.DayTypeFirstHalf,
		EndDayType:   leave.DayTypeFull,
	}}

	dates, counts := buildLeaveMaps(leaves, date(2025, time.March, 1), date(2025, time.March, 31))

	require.Len(t, dates["u1"], 2)
	assert.NotContains(t, dates["u1"], "2025-02-28")
	assert.Equal(t, 1.5, counts["u1"])
}

func TestBuildLeaveMaps_ZeroEndDateDefaultsToStart(t *testing.T) {
	t.Parallel()

	leaves := []leave.Leave{{
		UserID:       "u1",
		StartDate:    date(2025, time.March, 10),
		StartDayType: leave.DayTypeFull,
	}}

	dates, counts := buildLeaveMaps(leaves, date(2025, time.March, 1), date(2025, time.March, 31))

	require.Len(t, dates["u1"], 1)
	assert.Equal(t, 1.0, counts["u1"])
}

func TestBuildLeaveMaps_OutsideWindowIgnored(t *testing.T) {
	t.Parallel()

	leaves := []leave.Leave{{
		UserID:       "u1",
		StartDate:    date(2025, time.April, 2),
		EndDate:      date(2025, time.April, 4),
		StartDayType: leave.DayTypeFull,
		EndDayType:   leave.DayTypeFull,
	}}

	dates, counts := buildLeaveMaps(leaves, date(2025, time.March, 1), date(2025, time.March, 31))

	assert.Empty(t, dates["u1"])
	assert.Zero(t, counts["u1"])
}

func TestBuildLeaveMaps_MultipleLeavesAccumulate(t *testing.T) {
	t.Parallel()

	leaves := []leave.Leave{
		{
			UserID:       "u1",
			StartDate:    date(2025, time.March, 3),
			EndDate:      date(2025, time.March, 3),
			StartDayType: leave.DayTypeFull,
			EndDayType:   leave.DayTypeFull,
		},
		{
			UserID:       "u1",
			StartDate:    date(2025, time.March, 20),
			EndDate:      date(2025, time.March, 21),
			StartDayType: leave.DayTypeFirstHalf,
			EndDayType:   leave.DayTypeFull,
		},
	}

	_, counts := buildLeaveMaps(leaves, date(2025, time.March, 1), date(2025, time.March, 31))

	assert.Equal(t, 2.5, counts["u1"])
}

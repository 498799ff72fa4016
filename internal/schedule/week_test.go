package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alacartapr/catalog-api/internal/model"
)

func TestNormalizeWeekFillsMissingDaysAsClosed(t *testing.T) {
	entries := []model.HourRow{
		{RestaurantID: 4, DayOfWeek: 5, OpensAt: strPtr("18:00"), ClosesAt: strPtr("23:00")},
		{RestaurantID: 4, DayOfWeek: 1, OpensAt: strPtr("11:00"), ClosesAt: strPtr("15:00")},
	}

	week := NormalizeWeek(entries)
	require.Len(t, week, 7)
	for dow := 0; dow <= 6; dow++ {
		assert.Equal(t, dow, week[dow].DayOfWeek)
		assert.Equal(t, uint64(4), week[dow].RestaurantID)
	}
	assert.False(t, week[1].IsClosed)
	assert.False(t, week[5].IsClosed)
	for _, dow := range []int{0, 2, 3, 4, 6} {
		assert.True(t, week[dow].IsClosed, "absent day %d becomes closed", dow)
		assert.Nil(t, week[dow].OpensAt)
	}
}

func TestNormalizeWeekIdempotent(t *testing.T) {
	entries := []model.HourRow{
		{RestaurantID: 9, DayOfWeek: 2, OpensAt: strPtr("08:00"), ClosesAt: strPtr("14:00")},
	}
	once := NormalizeWeek(entries)
	twice := NormalizeWeek(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeWeekDropsInvalidAndDuplicateDays(t *testing.T) {
	entries := []model.HourRow{
		{RestaurantID: 9, DayOfWeek: 2, OpensAt: strPtr("08:00"), ClosesAt: strPtr("14:00")},
		{RestaurantID: 9, DayOfWeek: 2, OpensAt: strPtr("10:00"), ClosesAt: strPtr("16:00")}, // duplicate day
		{RestaurantID: 9, DayOfWeek: 7, OpensAt: strPtr("08:00"), ClosesAt: strPtr("14:00")}, // out of range
	}
	week := NormalizeWeek(entries)
	require.Len(t, week, 7)
	assert.Equal(t, "08:00", *week[2].OpensAt, "first row for a day wins")
}

func TestNormalizeWeekEmptyInput(t *testing.T) {
	week := NormalizeWeek(nil)
	require.Len(t, week, 7)
	for dow := 0; dow <= 6; dow++ {
		assert.True(t, week[dow].IsClosed)
	}
}

func TestTodayWindow(t *testing.T) {
	monday := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)

	t.Run("no rows at all", func(t *testing.T) {
		assert.Equal(t, "", TodayWindow(nil, monday, time.UTC))
	})

	t.Run("open today", func(t *testing.T) {
		entries := []model.HourRow{
			{DayOfWeek: 1, OpensAt: strPtr("09:00"), ClosesAt: strPtr("17:00")},
		}
		assert.Equal(t, "9:00 AM – 5:00 PM", TodayWindow(entries, monday, time.UTC))
	})

	t.Run("closed today", func(t *testing.T) {
		entries := []model.HourRow{
			{DayOfWeek: 1, IsClosed: true},
		}
		assert.Equal(t, "Cerrado hoy", TodayWindow(entries, monday, time.UTC))
	})

	t.Run("rows exist but not for today", func(t *testing.T) {
		entries := []model.HourRow{
			{DayOfWeek: 3, OpensAt: strPtr("09:00"), ClosesAt: strPtr("17:00")},
		}
		assert.Equal(t, "Cerrado hoy", TodayWindow(entries, monday, time.UTC))
	})
}

func TestWeeklyLinesOrderedByDayRegardlessOfInputOrder(t *testing.T) {
	entries := []model.HourRow{
		{DayOfWeek: 6, OpensAt: strPtr("10:00"), ClosesAt: strPtr("22:00")},
		{DayOfWeek: 0, IsClosed: true},
		{DayOfWeek: 3, OpensAt: strPtr("11:30"), ClosesAt: strPtr("15:00")},
	}

	lines := WeeklyLines(entries)
	assert.Equal(t, []string{
		"Dom: Cerrado",
		"Mié: 11:30 AM – 3:00 PM",
		"Sáb: 10:00 AM – 10:00 PM",
	}, lines)
}

func TestWeeklyLinesOmitsAbsentDays(t *testing.T) {
	// Display-only view: days without rows simply do not appear, in
	// contrast with NormalizeWeek which fills them in as closed.
	entries := []model.HourRow{
		{DayOfWeek: 2, OpensAt: strPtr("09:00"), ClosesAt: strPtr("17:00")},
	}
	lines := WeeklyLines(entries)
	require.Len(t, lines, 1)
	assert.Equal(t, "Mar: 9:00 AM – 5:00 PM", lines[0])
}

func TestWeeklyLinesMalformedWindowShowsClosed(t *testing.T) {
	entries := []model.HourRow{
		{DayOfWeek: 4, OpensAt: strPtr("bad"), ClosesAt: strPtr("17:00")},
	}
	assert.Equal(t, []string{"Jue: Cerrado"}, WeeklyLines(entries))
}

func TestWeeklyLinesEmpty(t *testing.T) {
	assert.Empty(t, WeeklyLines(nil))
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alacartapr/catalog-api/internal/model"
)

func strPtr(s string) *string { return &s }

// mondayAt builds an instant on Monday 2026-03-02 at the given wall
// clock time in UTC, evaluated with UTC as the operating zone.
func mondayAt(hour, min int) time.Time {
	return time.Date(2026, time.March, 2, hour, min, 0, 0, time.UTC)
}

func mondayHours() []model.HourRow {
	return []model.HourRow{
		{RestaurantID: 1, DayOfWeek: 1, OpensAt: strPtr("09:00"), ClosesAt: strPtr("17:00")},
	}
}

func TestEvaluateNoSchedule(t *testing.T) {
	st := Evaluate(nil, mondayAt(12, 0), time.UTC)
	assert.Equal(t, StateNoSchedule, st.State)
	assert.False(t, st.HasSchedule)
	assert.Nil(t, st.IsOpen)
	assert.Equal(t, "Horario no disponible", st.Label)
}

func TestEvaluateOpenNow(t *testing.T) {
	st := Evaluate(mondayHours(), mondayAt(10, 0), time.UTC)
	assert.Equal(t, StateOpenNow, st.State)
	assert.True(t, st.HasSchedule)
	require.NotNil(t, st.IsOpen)
	assert.True(t, *st.IsOpen)
	assert.Equal(t, "Abierto ahora", st.Label)
	assert.Equal(t, "Cierra a las 5:00 PM.", st.Detail)
}

func TestEvaluateBeforeOpen(t *testing.T) {
	st := Evaluate(mondayHours(), mondayAt(8, 59), time.UTC)
	assert.Equal(t, StateClosedBeforeOpen, st.State)
	require.NotNil(t, st.IsOpen)
	assert.False(t, *st.IsOpen)
	assert.Equal(t, "Cerrado", st.Label)
	assert.Equal(t, "Abre a las 9:00 AM.", st.Detail)
}

func TestEvaluateOpenBoundaryIsInclusive(t *testing.T) {
	st := Evaluate(mondayHours(), mondayAt(9, 0), time.UTC)
	assert.Equal(t, StateOpenNow, st.State)
}

func TestEvaluateCloseBoundaryIsExclusive(t *testing.T) {
	// Exactly at closing time the restaurant already counts as closed.
	st := Evaluate(mondayHours(), mondayAt(17, 0), time.UTC)
	assert.Equal(t, StateClosedAfterClose, st.State)
	require.NotNil(t, st.IsOpen)
	assert.False(t, *st.IsOpen)
	assert.Equal(t, "Cerró a las 5:00 PM.", st.Detail)
}

func TestEvaluateAfterClose(t *testing.T) {
	st := Evaluate(mondayHours(), mondayAt(17, 1), time.UTC)
	assert.Equal(t, StateClosedAfterClose, st.State)
	assert.Equal(t, "Cerrado", st.Label)
	assert.Equal(t, "Cerró a las 5:00 PM.", st.Detail)
}

func TestEvaluateAbsentDayMeansClosed(t *testing.T) {
	// Only a Tuesday row exists; evaluating on Monday degrades to
	// closed today, not to "no schedule".
	entries := []model.HourRow{
		{RestaurantID: 1, DayOfWeek: 2, OpensAt: strPtr("09:00"), ClosesAt: strPtr("17:00")},
	}
	st := Evaluate(entries, mondayAt(12, 0), time.UTC)
	assert.Equal(t, StateClosedToday, st.State)
	assert.True(t, st.HasSchedule)
	require.NotNil(t, st.IsOpen)
	assert.False(t, *st.IsOpen)
	assert.Equal(t, "Hoy no está disponible.", st.Detail)
}

func TestEvaluateClosedFlag(t *testing.T) {
	entries := []model.HourRow{
		{RestaurantID: 1, DayOfWeek: 1, IsClosed: true, OpensAt: strPtr("09:00"), ClosesAt: strPtr("17:00")},
	}
	st := Evaluate(entries, mondayAt(12, 0), time.UTC)
	assert.Equal(t, StateClosedToday, st.State)
}

func TestEvaluateDegradesOnBadBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		entry model.HourRow
	}{
		{"missing open", model.HourRow{DayOfWeek: 1, ClosesAt: strPtr("17:00")}},
		{"missing close", model.HourRow{DayOfWeek: 1, OpensAt: strPtr("09:00")}},
		{"unparseable open", model.HourRow{DayOfWeek: 1, OpensAt: strPtr("nope"), ClosesAt: strPtr("17:00")}},
		{"unparseable close", model.HourRow{DayOfWeek: 1, OpensAt: strPtr("09:00"), ClosesAt: strPtr("25:99")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Evaluate([]model.HourRow{tt.entry}, mondayAt(12, 0), time.UTC)
			assert.Equal(t, StateClosedToday, st.State, "bad input degrades, never errors")
		})
	}
}

func TestEvaluateUsesOperatingZoneNotCallerZone(t *testing.T) {
	// 13:00 UTC is 09:00 in UTC-4: the restaurant just opened in the
	// operating region even though the UTC wall clock reads afternoon.
	ast := time.FixedZone("AST", -4*3600)
	st := Evaluate(mondayHours(), mondayAt(13, 0), ast)
	assert.Equal(t, StateOpenNow, st.State)

	st = Evaluate(mondayHours(), mondayAt(12, 59), ast)
	assert.Equal(t, StateClosedBeforeOpen, st.State)
}

func TestEvaluateSecondsInStoredTimesIgnored(t *testing.T) {
	entries := []model.HourRow{
		{DayOfWeek: 1, OpensAt: strPtr("09:00:00"), ClosesAt: strPtr("17:00:59")},
	}
	st := Evaluate(entries, mondayAt(16, 59), time.UTC)
	assert.Equal(t, StateOpenNow, st.State)
	assert.Equal(t, "Cierra a las 5:00 PM.", st.Detail)
}

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateHoursAcceptsFullWeek(t *testing.T) {
	in := make([]hourEntryReq, 0, 7)
	for d := 0; d <= 6; d++ {
		in = append(in, hourEntryReq{
			DayOfWeek: d,
			OpensAt:   strPtr("09:00"),
			ClosesAt:  strPtr("17:00"),
		})
	}
	rows, err := validateHours(42, in)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	for i, r := range rows {
		assert.Equal(t, uint64(42), r.RestaurantID)
		assert.Equal(t, i, r.DayOfWeek)
		assert.False(t, r.IsClosed)
	}
}

func TestValidateHoursClosedDayNeedsNoBoundaries(t *testing.T) {
	rows, err := validateHours(1, []hourEntryReq{{DayOfWeek: 0, IsClosed: true}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsClosed)
	assert.Nil(t, rows[0].OpensAt)
	assert.Nil(t, rows[0].ClosesAt)
}

func TestValidateHoursRejections(t *testing.T) {
	cases := []struct {
		name string
		in   []hourEntryReq
	}{
		{"day out of range", []hourEntryReq{{DayOfWeek: 7, IsClosed: true}}},
		{"negative day", []hourEntryReq{{DayOfWeek: -1, IsClosed: true}}},
		{"duplicate day", []hourEntryReq{
			{DayOfWeek: 1, IsClosed: true},
			{DayOfWeek: 1, IsClosed: true},
		}},
		{"open day missing boundaries", []hourEntryReq{{DayOfWeek: 2}}},
		{"unparseable opens_at", []hourEntryReq{
			{DayOfWeek: 2, OpensAt: strPtr("25:00"), ClosesAt: strPtr("17:00")},
		}},
		{"unparseable closes_at", []hourEntryReq{
			{DayOfWeek: 2, OpensAt: strPtr("09:00"), ClosesAt: strPtr("9pm")},
		}},
		{"inverted window", []hourEntryReq{
			{DayOfWeek: 2, OpensAt: strPtr("17:00"), ClosesAt: strPtr("09:00")},
		}},
		{"zero-length window", []hourEntryReq{
			{DayOfWeek: 2, OpensAt: strPtr("09:00"), ClosesAt: strPtr("09:00")},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validateHours(1, tc.in)
			assert.Error(t, err)
		})
	}

	eight := make([]hourEntryReq, 8)
	for i := range eight {
		eight[i] = hourEntryReq{DayOfWeek: i % 7, IsClosed: true}
	}
	_, err := validateHours(1, eight)
	assert.Error(t, err)
}

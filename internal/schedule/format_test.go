package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"09:00", 540, true},
		{"9:00", 540, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"13:05:30", 785, true}, // seconds ignored
		{" 08:15 ", 495, true},
		{"", 0, false},
		{"9", 0, false},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"ab:cd", 0, false},
		{"-1:30", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMinutes(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.minutes, got)
			}
		})
	}
}

func TestFormat12h(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00", "9:00 AM"},
		{"00:30", "12:30 AM"}, // hour 0 displays as 12
		{"12:00", "12:00 PM"},
		{"17:00", "5:00 PM"},
		{"23:05", "11:05 PM"},
		{"17:00:45", "5:00 PM"},
		{"7:05", "7:05 AM"}, // minutes stay zero-padded
		{"garbage", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Format12h(tt.in))
		})
	}
}

func TestDayAbbrev(t *testing.T) {
	assert.Equal(t, "Dom", DayAbbrev(0))
	assert.Equal(t, "Mié", DayAbbrev(3))
	assert.Equal(t, "Sáb", DayAbbrev(6))
	assert.Equal(t, "7", DayAbbrev(7))
	assert.Equal(t, "-1", DayAbbrev(-1))
}

func TestNowPartsResolvesInOperatingZone(t *testing.T) {
	// 02:30 UTC on Tuesday is still 22:30 Monday in UTC-4, no matter
	// what zone the caller's instant carries.
	ast := time.FixedZone("AST", -4*3600)
	at := time.Date(2026, time.March, 3, 2, 30, 0, 0, time.UTC)

	dow, minutes := NowParts(at, ast)
	assert.Equal(t, 1, dow) // Monday
	assert.Equal(t, 22*60+30, minutes)
}

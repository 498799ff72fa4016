// Package schedule evaluates weekly opening hours against a reference
// instant and renders them for display.  All inputs are civil
// time-of-day strings ("HH:MM" or "HH:MM:SS", no date, no offset)
// interpreted in a single configured operating timezone.  Nothing in
// this package performs I/O or keeps state between calls.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Spanish day abbreviations indexed by day_of_week (0 = Sunday).
var dayAbbrevs = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// DayAbbrev returns the display abbreviation for a day-of-week value.
// Out-of-range values fall back to the numeric form.
func DayAbbrev(dow int) string {
	if dow < 0 || dow > 6 {
		return strconv.Itoa(dow)
	}
	return dayAbbrevs[dow]
}

// ParseMinutes extracts minutes since midnight from the leading
// "HH:MM" of a stored time string.  Leading zeros are optional and a
// trailing seconds component is ignored.  The boolean is false for
// malformed input (missing parts, non-numeric parts, out-of-range
// hour or minute).
func ParseMinutes(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// Format12h renders a stored time string as 12-hour clock text with an
// AM/PM suffix: minutes always zero-padded, hour 0 shown as 12.
// Malformed input yields the empty string.
func Format12h(s string) string {
	minutes, ok := ParseMinutes(s)
	if !ok {
		return ""
	}
	h := minutes / 60
	m := minutes % 60

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

// NowParts resolves a reference instant to (day-of-week,
// minutes-since-midnight) in the given location.  The caller's own
// timezone is irrelevant; the location is the operating region's.
func NowParts(at time.Time, loc *time.Location) (dow int, minutes int) {
	local := at.In(loc)
	return int(local.Weekday()), local.Hour()*60 + local.Minute()
}

package schedule

import (
	"sort"
	"time"

	"github.com/alacartapr/catalog-api/internal/model"
)

// NormalizeWeek expands a restaurant's partial hour rows into the full
// 7-day frame: exactly one entry per day-of-week 0..6, sorted
// ascending.  Days absent from the input become closed entries, and
// duplicate rows for the same day collapse to the first one seen.
// Normalizing an already-normalized week returns the same result.
//
// This is the evaluator-side policy (absent means closed).  The
// weekly-lines view deliberately does NOT use it; see WeeklyLines.
func NormalizeWeek(entries []model.HourRow) []model.HourRow {
	var restaurantID uint64
	if len(entries) > 0 {
		restaurantID = entries[0].RestaurantID
	}

	byDay := make(map[int]model.HourRow, 7)
	for _, e := range entries {
		if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
			continue
		}
		if _, dup := byDay[e.DayOfWeek]; dup {
			continue
		}
		byDay[e.DayOfWeek] = e
	}

	out := make([]model.HourRow, 0, 7)
	for dow := 0; dow <= 6; dow++ {
		if e, ok := byDay[dow]; ok {
			out = append(out, e)
			continue
		}
		out = append(out, model.HourRow{
			RestaurantID: restaurantID,
			DayOfWeek:    dow,
			IsClosed:     true,
		})
	}
	return out
}

// TodayWindow renders the reference day's window as
// "<open> – <close>" in 12-hour form, "Cerrado hoy" when today is
// closed or absent, and the empty string when no hour rows exist at
// all.
func TodayWindow(entries []model.HourRow, at time.Time, loc *time.Location) string {
	if len(entries) == 0 {
		return ""
	}
	dow, _ := NowParts(at, loc)
	today := entryForDay(entries, dow)
	if _, _, ok := windowMinutes(today); !ok {
		return "Cerrado hoy"
	}
	return Format12h(*today.OpensAt) + " – " + Format12h(*today.ClosesAt)
}

// WeeklyLines renders one "<day>: <window|Cerrado>" line per input
// entry, ordered by day-of-week ascending regardless of input order.
// Unlike the evaluator, days absent from the input are omitted rather
// than shown as closed: this view is a display-only summary of the
// rows that reached it.
func WeeklyLines(entries []model.HourRow) []string {
	if len(entries) == 0 {
		return []string{}
	}

	sorted := make([]model.HourRow, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DayOfWeek < sorted[j].DayOfWeek
	})

	lines := make([]string, 0, len(sorted))
	for i := range sorted {
		label := DayAbbrev(sorted[i].DayOfWeek)
		if _, _, ok := windowMinutes(&sorted[i]); !ok {
			lines = append(lines, label+": Cerrado")
			continue
		}
		lines = append(lines, label+": "+Format12h(*sorted[i].OpensAt)+" – "+Format12h(*sorted[i].ClosesAt))
	}
	return lines
}

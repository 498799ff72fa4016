package model

// HourRow is one weekly opening window for a restaurant, keyed by
// day of week (0 = Sunday … 6 = Saturday).  At most one row exists
// per (restaurant, day).  Times are civil time-of-day strings in the
// form "HH:MM" or "HH:MM:SS" with no date and no offset; they are
// interpreted against the single configured operating timezone.
//
// A day with no row at all is treated as closed by the availability
// evaluator.  OpensAt/ClosesAt may be nil even when IsClosed is
// false; the evaluator degrades such rows to closed.
type HourRow struct {
	RestaurantID uint64  // restaurant_hours.restaurant_id
	DayOfWeek    int     // restaurant_hours.day_of_week (0=Sunday)
	IsClosed     bool    // restaurant_hours.is_closed
	OpensAt      *string // restaurant_hours.opens_at (nullable "HH:MM[:SS]")
	ClosesAt     *string // restaurant_hours.closes_at (nullable "HH:MM[:SS]")
}

package schedule

import (
	"time"

	"github.com/alacartapr/catalog-api/internal/model"
)

// State classifies a restaurant's availability at one instant.  It is
// derived fresh on every call; there is no persisted state machine.
type State int

const (
	// StateNoSchedule means no hour rows exist at all.  Status is
	// unknown, which is distinct from closed.
	StateNoSchedule State = iota
	// StateClosedToday covers a closed entry, an absent entry for
	// today, and entries with missing or unparseable boundary times.
	StateClosedToday
	// StateOpenNow means the reference instant falls inside the
	// half-open window [open, close).
	StateOpenNow
	// StateClosedBeforeOpen means today has a window but it has not
	// started yet.
	StateClosedBeforeOpen
	// StateClosedAfterClose means today's window has already ended.
	// The closing boundary instant itself counts as closed.
	StateClosedAfterClose
)

// Status is the availability record handed to the presentation layer.
// IsOpen is nil when no schedule exists, true/false otherwise.
type Status struct {
	State       State  `json:"-"`
	HasSchedule bool   `json:"has_schedule"`
	IsOpen      *bool  `json:"is_open"`
	Label       string `json:"label"`
	Detail      string `json:"detail"`
}

// Evaluate derives the open/closed status for a restaurant's hour rows
// at the given instant, resolved in the operating timezone.  Bad input
// never produces an error; malformed or missing boundary times degrade
// to the most conservative reading (closed today).
func Evaluate(entries []model.HourRow, at time.Time, loc *time.Location) Status {
	if len(entries) == 0 {
		return Status{
			State:       StateNoSchedule,
			HasSchedule: false,
			IsOpen:      nil,
			Label:       "Horario no disponible",
			Detail:      "Añade horarios para mostrar Abierto/Cerrado.",
		}
	}

	dow, now := NowParts(at, loc)
	today := entryForDay(entries, dow)

	openMin, closeMin, hasWindow := windowMinutes(today)
	if !hasWindow {
		return Status{
			State:       StateClosedToday,
			HasSchedule: true,
			IsOpen:      boolPtr(false),
			Label:       "Cerrado",
			Detail:      "Hoy no está disponible.",
		}
	}

	if now >= openMin && now < closeMin {
		return Status{
			State:       StateOpenNow,
			HasSchedule: true,
			IsOpen:      boolPtr(true),
			Label:       "Abierto ahora",
			Detail:      "Cierra a las " + Format12h(*today.ClosesAt) + ".",
		}
	}

	if now < openMin {
		return Status{
			State:       StateClosedBeforeOpen,
			HasSchedule: true,
			IsOpen:      boolPtr(false),
			Label:       "Cerrado",
			Detail:      "Abre a las " + Format12h(*today.OpensAt) + ".",
		}
	}

	return Status{
		State:       StateClosedAfterClose,
		HasSchedule: true,
		IsOpen:      boolPtr(false),
		Label:       "Cerrado",
		Detail:      "Cerró a las " + Format12h(*today.ClosesAt) + ".",
	}
}

// entryForDay locates the row for a day-of-week, or nil when absent.
func entryForDay(entries []model.HourRow, dow int) *model.HourRow {
	for i := range entries {
		if entries[i].DayOfWeek == dow {
			return &entries[i]
		}
	}
	return nil
}

// windowMinutes returns today's open window boundaries in minutes
// since midnight.  hasWindow is false for an absent entry, a closed
// entry, or boundaries that are missing or unparseable.
func windowMinutes(e *model.HourRow) (openMin, closeMin int, hasWindow bool) {
	if e == nil || e.IsClosed || e.OpensAt == nil || e.ClosesAt == nil {
		return 0, 0, false
	}
	openMin, ok := ParseMinutes(*e.OpensAt)
	if !ok {
		return 0, 0, false
	}
	closeMin, ok = ParseMinutes(*e.ClosesAt)
	if !ok {
		return 0, 0, false
	}
	return openMin, closeMin, true
}

func boolPtr(b bool) *bool { return &b }

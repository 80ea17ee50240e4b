package calendar

import "time"

// CalendarEvent is an event as fetched from the calendar source, before any
// recurrence expansion. Recurrence holds the raw rule lines; only the first
// RRULE line is interpreted.
type CalendarEvent struct {
	ID          string
	Summary     string
	Location    string
	Description string
	HtmlLink    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Recurrence  []string
}

// IsRecurring reports whether the event carries a recurrence rule.
func (e CalendarEvent) IsRecurring() bool {
	return len(e.Recurrence) > 0
}

// EventInstance is one concrete occurrence of an event inside a week window.
// IsRecurrenceInstance is false for the literal event and true for generated
// occurrences.
type EventInstance struct {
	CalendarEvent
	IsRecurrenceInstance bool
}

// ProcessedEvent is a fetched event with its expanded occurrences for one
// week window attached. Instances is never empty: a non-recurring event
// carries itself as its only instance.
type ProcessedEvent struct {
	CalendarEvent
	HasDetails bool
	Instances  []EventInstance
}

// WeekWindow is the inclusive start and end of a displayed week. The bounds
// keep the time-of-day of the reference instant, they are not normalized to
// midnight.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// WeeklyAgendaInput selects the week to render.
type WeeklyAgendaInput struct {
	WeekOffset int
}

// WeeklyAgendaOutput is one rendered week.
type WeeklyAgendaOutput struct {
	WeekOffset int
	Window     WeekWindow
	TimeSlots  []string
	Events     []ProcessedEvent
	Grid       []GridRow
}

// GridRow is one time slot row of the weekly grid, with one cell per day of
// the week starting at Sunday.
type GridRow struct {
	TimeSlot string
	Cells    [7][]ProcessedEvent
}

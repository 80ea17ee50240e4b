package repository

import (
	"context"

	"workspace-chat/internal/calendar"
	"workspace-chat/internal/model"
)

// EventRepository fetches raw events for a week window from the calendar
// source. Recurring events come back unexpanded.
type EventRepository interface {
	ListEvents(ctx context.Context, sc model.Scope, window calendar.WeekWindow) ([]calendar.CalendarEvent, error)
}

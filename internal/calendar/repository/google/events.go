package google

import (
	"context"
	"fmt"

	"workspace-chat/internal/calendar"
	"workspace-chat/internal/model"
	"workspace-chat/pkg/gcalendar"
	pkgLog "workspace-chat/pkg/log"
)

// Repository reads events from Google Calendar with the user's own access
// token. A client is built per call because each request may carry a
// different user token.
type Repository struct {
	l          pkgLog.Logger
	maxResults int64
	calendarID string

	// newClient is swappable for tests.
	newClient func(ctx context.Context, accessToken string) (*gcalendar.Client, error)
}

// New creates a Google Calendar event repository.
func New(l pkgLog.Logger, maxResults int64) *Repository {
	return &Repository{
		l:          l,
		maxResults: maxResults,
		calendarID: "primary",
		newClient:  gcalendar.NewClientFromToken,
	}
}

// ListEvents fetches the raw events overlapping the window, recurring
// masters included.
func (r *Repository) ListEvents(ctx context.Context, sc model.Scope, window calendar.WeekWindow) ([]calendar.CalendarEvent, error) {
	client, err := r.newClient(ctx, sc.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}

	raw, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    window.Start,
		TimeMax:    window.End,
		MaxResults: r.maxResults,
	})
	if err != nil {
		r.l.Errorf(ctx, "calendar.repository.google.ListEvents: %v", err)
		return nil, err
	}

	events := make([]calendar.CalendarEvent, 0, len(raw))
	for _, ev := range raw {
		events = append(events, calendar.CalendarEvent{
			ID:          ev.ID,
			Summary:     ev.Summary,
			Location:    ev.Location,
			Description: ev.Description,
			HtmlLink:    ev.HtmlLink,
			Start:       ev.StartTime,
			End:         ev.EndTime,
			AllDay:      ev.AllDay,
			Recurrence:  ev.Recurrence,
		})
	}
	return events, nil
}

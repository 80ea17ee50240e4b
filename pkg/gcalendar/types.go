package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
// Recurrence carries the raw RRULE/EXDATE lines exactly as the API returns
// them; recurring events come back as a single master event because listing
// is done with singleEvents disabled.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	Status      string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Recurrence  []string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

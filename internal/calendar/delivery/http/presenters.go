package http

import (
	"time"

	"workspace-chat/internal/calendar"
)

type eventResp struct {
	ID                   string `json:"id"`
	Summary              string `json:"summary"`
	Location             string `json:"location,omitempty"`
	Description          string `json:"description,omitempty"`
	Start                string `json:"start"`
	End                  string `json:"end"`
	IsRecurring          bool   `json:"is_recurring"`
	IsRecurrenceInstance bool   `json:"is_recurrence_instance,omitempty"`
}

type cellResp struct {
	Events []eventResp `json:"events"`
}

type gridRowResp struct {
	TimeSlot string     `json:"time_slot"`
	Cells    []cellResp `json:"cells"`
}

type weekResp struct {
	Offset    int           `json:"offset"`
	Start     string        `json:"start"`
	End       string        `json:"end"`
	TimeSlots []string      `json:"time_slots"`
	Events    []eventResp   `json:"events"`
	Grid      []gridRowResp `json:"grid"`
}

func newEventResp(ev calendar.CalendarEvent, isInstance bool) eventResp {
	return eventResp{
		ID:                   ev.ID,
		Summary:              ev.Summary,
		Location:             ev.Location,
		Description:          ev.Description,
		Start:                ev.Start.Format(time.RFC3339),
		End:                  ev.End.Format(time.RFC3339),
		IsRecurring:          ev.IsRecurring(),
		IsRecurrenceInstance: isInstance,
	}
}

func (h handler) newWeekResp(out calendar.WeeklyAgendaOutput) weekResp {
	resp := weekResp{
		Offset:    out.WeekOffset,
		Start:     out.Window.Start.Format(time.RFC3339),
		End:       out.Window.End.Format(time.RFC3339),
		TimeSlots: out.TimeSlots,
		Events:    make([]eventResp, 0, len(out.Events)),
		Grid:      make([]gridRowResp, 0, len(out.Grid)),
	}

	for _, ev := range out.Events {
		// Expanded occurrences are flattened into the event list.
		for _, inst := range ev.Instances {
			resp.Events = append(resp.Events, newEventResp(inst.CalendarEvent, inst.IsRecurrenceInstance))
		}
	}

	for _, row := range out.Grid {
		rowResp := gridRowResp{TimeSlot: row.TimeSlot, Cells: make([]cellResp, 0, 7)}
		for _, cell := range row.Cells {
			cellEvents := cellResp{Events: make([]eventResp, 0, len(cell))}
			for _, ev := range cell {
				cellEvents.Events = append(cellEvents.Events, newEventResp(ev.CalendarEvent, false))
			}
			rowResp.Cells = append(rowResp.Cells, cellEvents)
		}
		resp.Grid = append(resp.Grid, rowResp)
	}

	return resp
}

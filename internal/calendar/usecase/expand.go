package usecase

import (
	"context"
	"strings"

	"github.com/teambition/rrule-go"

	"workspace-chat/internal/calendar"
)

// expandEvent turns one event into its concrete occurrences inside the
// window. A non-recurring event is returned as its own single instance.
// A recurring event is enumerated from its first RRULE line, anchored at the
// event's own start because the rule string carries no start date of its own.
// Each occurrence keeps the original event's duration.
//
// A rule that fails to parse degrades to the unexpanded event: a malformed
// recurrence must never blank the whole week.
func (uc implUseCase) expandEvent(ctx context.Context, ev calendar.CalendarEvent, window calendar.WeekWindow) []calendar.EventInstance {
	if !ev.IsRecurring() {
		return []calendar.EventInstance{{CalendarEvent: ev, IsRecurrenceInstance: false}}
	}

	raw := strings.TrimPrefix(ev.Recurrence[0], "RRULE:")
	rule, err := rrule.StrToRRule(raw)
	if err != nil {
		uc.l.Warnf(ctx, "calendar.usecase.expandEvent: failed to parse recurrence %q for event %s: %v", raw, ev.ID, err)
		return []calendar.EventInstance{{CalendarEvent: ev, IsRecurrenceInstance: false}}
	}
	rule.DTStart(ev.Start)

	duration := ev.End.Sub(ev.Start)
	occurrences := rule.Between(window.Start, window.End, true)

	instances := make([]calendar.EventInstance, 0, len(occurrences))
	for _, occStart := range occurrences {
		inst := calendar.EventInstance{CalendarEvent: ev, IsRecurrenceInstance: true}
		inst.Start = occStart
		inst.End = occStart.Add(duration)
		instances = append(instances, inst)
	}
	return instances
}

// processEvents attaches expanded instances to every fetched event.
func (uc implUseCase) processEvents(ctx context.Context, events []calendar.CalendarEvent, window calendar.WeekWindow) []calendar.ProcessedEvent {
	processed := make([]calendar.ProcessedEvent, 0, len(events))
	for _, ev := range events {
		processed = append(processed, calendar.ProcessedEvent{
			CalendarEvent: ev,
			HasDetails:    ev.IsRecurring() || ev.Description != "",
			Instances:     uc.expandEvent(ctx, ev, window),
		})
	}
	return processed
}

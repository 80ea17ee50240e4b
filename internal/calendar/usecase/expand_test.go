package usecase

import (
	"context"
	"testing"
	"time"

	"workspace-chat/internal/calendar"
)

func testWindow(start, end time.Time) calendar.WeekWindow {
	return calendar.WeekWindow{Start: start, End: end}
}

func TestExpandNonRecurring(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, time.Now())
	ev := calendar.CalendarEvent{
		ID:      "solo",
		Summary: "One-off",
		Start:   time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC),
		End:     time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC),
	}
	window := testWindow(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	)

	instances := uc.expandEvent(context.Background(), ev, window)

	if len(instances) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(instances))
	}
	inst := instances[0]
	if inst.IsRecurrenceInstance {
		t.Error("literal event must not be flagged as a recurrence instance")
	}
	if !inst.Start.Equal(ev.Start) || !inst.End.Equal(ev.End) {
		t.Errorf("instance must be the event unchanged, got %v-%v", inst.Start, inst.End)
	}
}

func TestExpandWeeklyMonday(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, time.Now())
	ev := calendar.CalendarEvent{
		ID:         "weekly-mo",
		Summary:    "Team Sync",
		Start:      time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		End:        time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		Recurrence: []string{"RRULE:FREQ=WEEKLY;BYDAY=MO"},
	}
	// First full week of January 2024, Sunday Dec 31 through Saturday Jan 6.
	window := testWindow(
		time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC),
	)

	instances := uc.expandEvent(context.Background(), ev, window)

	if len(instances) != 1 {
		t.Fatalf("expected exactly 1 occurrence, got %d", len(instances))
	}
	inst := instances[0]
	if !inst.IsRecurrenceInstance {
		t.Error("generated occurrence must be flagged as a recurrence instance")
	}
	wantStart := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	if !inst.Start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, inst.Start)
	}
	if !inst.End.Equal(wantStart.Add(time.Hour)) {
		t.Errorf("expected 1 hour duration, got end %v", inst.End)
	}
}

func TestExpandDailyPreservesDuration(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, time.Now())
	ev := calendar.CalendarEvent{
		ID:         "daily",
		Summary:    "Standup",
		Start:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		End:        time.Date(2024, 1, 1, 9, 45, 0, 0, time.UTC),
		Recurrence: []string{"RRULE:FREQ=DAILY"},
	}
	window := testWindow(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 23, 59, 0, 0, time.UTC),
	)

	instances := uc.expandEvent(context.Background(), ev, window)

	if len(instances) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(instances))
	}
	duration := ev.End.Sub(ev.Start)
	for i, inst := range instances {
		if got := inst.End.Sub(inst.Start); got != duration {
			t.Errorf("instance %d: expected duration %v, got %v", i, duration, got)
		}
		if i > 0 && instances[i-1].Start.After(inst.Start) {
			t.Errorf("instances out of order at %d: %v after %v", i, instances[i-1].Start, inst.Start)
		}
	}
}

func TestExpandMalformedRuleDegrades(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, time.Now())
	ev := calendar.CalendarEvent{
		ID:         "broken",
		Summary:    "Mystery",
		Start:      time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		End:        time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		Recurrence: []string{"RRULE:FREQ=BOGUS"},
	}
	window := testWindow(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	)

	instances := uc.expandEvent(context.Background(), ev, window)

	if len(instances) != 1 {
		t.Fatalf("expected the original event back, got %d instances", len(instances))
	}
	if instances[0].IsRecurrenceInstance {
		t.Error("degraded event must not be flagged as a recurrence instance")
	}
	if !instances[0].Start.Equal(ev.Start) {
		t.Errorf("degraded event must be unchanged, got start %v", instances[0].Start)
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, time.Now())
	ev := calendar.CalendarEvent{
		ID:         "weekly",
		Start:      time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		End:        time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		Recurrence: []string{"RRULE:FREQ=WEEKLY;BYDAY=MO,WE"},
	}
	window := testWindow(
		time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 6, 23, 59, 0, 0, time.UTC),
	)

	first := uc.expandEvent(context.Background(), ev, window)
	second := uc.expandEvent(context.Background(), ev, window)

	if len(first) != len(second) {
		t.Fatalf("length differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Errorf("instance %d differs between runs", i)
		}
	}
}

package usecase

import (
	"testing"
	"time"
)

func TestWeekWindow(t *testing.T) {
	// Wednesday 2024-01-03 15:04:05 UTC.
	now := time.Date(2024, 1, 3, 15, 4, 5, 0, time.UTC)

	t.Run("current week starts on Sunday", func(t *testing.T) {
		w := weekWindow(now, 0)
		if w.Start.Weekday() != time.Sunday {
			t.Errorf("expected Sunday start, got %v", w.Start.Weekday())
		}
		want := time.Date(2023, 12, 31, 15, 4, 5, 0, time.UTC)
		if !w.Start.Equal(want) {
			t.Errorf("expected start %v, got %v", want, w.Start)
		}
	})

	t.Run("time of day is preserved", func(t *testing.T) {
		w := weekWindow(now, 0)
		if w.Start.Hour() != 15 || w.Start.Minute() != 4 || w.Start.Second() != 5 {
			t.Errorf("window start should keep the reference time of day, got %v", w.Start)
		}
		if w.End.Hour() != 15 || w.End.Minute() != 4 {
			t.Errorf("window end should keep the reference time of day, got %v", w.End)
		}
	})

	t.Run("window spans six days", func(t *testing.T) {
		for _, offset := range []int{-52, -3, -1, 0, 1, 3, 52} {
			w := weekWindow(now, offset)
			if got := w.End.Sub(w.Start); got != 6*24*time.Hour {
				t.Errorf("offset %d: expected 6 day span, got %v", offset, got)
			}
		}
	})

	t.Run("adjacent offsets are seven days apart", func(t *testing.T) {
		for _, offset := range []int{-2, -1, 0, 1, 5} {
			a := weekWindow(now, offset)
			b := weekWindow(now, offset+1)
			if got := b.Start.Sub(a.Start); got != 7*24*time.Hour {
				t.Errorf("offset %d: expected 7 day stride, got %v", offset, got)
			}
		}
	})
}

func TestTimeSlots(t *testing.T) {
	slots := timeSlots()

	if len(slots) != 37 {
		t.Fatalf("expected 37 slots, got %d", len(slots))
	}
	if slots[0] != "04:00" {
		t.Errorf("expected first slot 04:00, got %s", slots[0])
	}
	if slots[1] != "04:30" {
		t.Errorf("expected second slot 04:30, got %s", slots[1])
	}
	if slots[len(slots)-1] != "22:00" {
		t.Errorf("expected last slot 22:00, got %s", slots[len(slots)-1])
	}
	for _, s := range slots {
		if s == "22:30" {
			t.Error("22:30 must not be on the lattice")
		}
	}
}

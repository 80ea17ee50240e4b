package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"workspace-chat/internal/calendar"
	"workspace-chat/internal/calendar/cache"
	"workspace-chat/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeRepo counts fetches and replies with canned events.
type fakeRepo struct {
	calls  int32
	events []calendar.CalendarEvent
	err    error
}

func (f *fakeRepo) ListEvents(ctx context.Context, sc model.Scope, window calendar.WeekWindow) ([]calendar.CalendarEvent, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func newTestUseCase(repo *fakeRepo, now time.Time) *implUseCase {
	uc := New(&mockLogger{}, repo, cache.New(), time.UTC)
	uc.now = func() time.Time { return now }
	return uc
}

func testScope() model.Scope {
	return model.Scope{UserID: "u1", Username: "tester", AccessToken: "ya29.test"}
}

package calendar

import (
	"context"

	"workspace-chat/internal/model"
)

// UseCase defines the business logic interface for the calendar domain.
type UseCase interface {
	// WeeklyAgenda returns the expanded events and weekly grid for the week
	// at the given offset from the current week. Results are cached per
	// (user, offset) until invalidated.
	WeeklyAgenda(ctx context.Context, sc model.Scope, input WeeklyAgendaInput) (WeeklyAgendaOutput, error)

	// InvalidateWeek drops the cached week so the next request re-fetches.
	InvalidateWeek(ctx context.Context, sc model.Scope, weekOffset int)
}

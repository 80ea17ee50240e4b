package usecase

import (
	"context"

	"workspace-chat/internal/calendar"
	"workspace-chat/internal/calendar/cache"
	"workspace-chat/internal/model"
)

// WeeklyAgenda returns the expanded events and grid for one week. The
// fetch-and-expand step runs once per (user, offset) until invalidated;
// concurrent requests for the same week share one fetch.
func (uc implUseCase) WeeklyAgenda(ctx context.Context, sc model.Scope, input calendar.WeeklyAgendaInput) (calendar.WeeklyAgendaOutput, error) {
	if !sc.HasGoogleToken() {
		return calendar.WeeklyAgendaOutput{}, calendar.ErrMissingGoogleToken
	}

	window := weekWindow(uc.now().In(uc.loc), input.WeekOffset)

	key := cache.Key{UserID: sc.UserID, WeekOffset: input.WeekOffset}
	events, err := uc.cache.Fill(key, func() ([]calendar.ProcessedEvent, error) {
		raw, err := uc.repo.ListEvents(ctx, sc, window)
		if err != nil {
			uc.l.Errorf(ctx, "calendar.usecase.WeeklyAgenda: fetch week %d: %v", input.WeekOffset, err)
			return nil, calendar.ErrFetchFailed
		}
		return uc.processEvents(ctx, raw, window), nil
	})
	if err != nil {
		return calendar.WeeklyAgendaOutput{}, err
	}

	slots := timeSlots()
	return calendar.WeeklyAgendaOutput{
		WeekOffset: input.WeekOffset,
		Window:     window,
		TimeSlots:  slots,
		Events:     events,
		Grid:       buildGrid(events, slots, window.Start),
	}, nil
}

// InvalidateWeek drops one cached week for the user.
func (uc implUseCase) InvalidateWeek(ctx context.Context, sc model.Scope, weekOffset int) {
	uc.cache.Invalidate(cache.Key{UserID: sc.UserID, WeekOffset: weekOffset})
	uc.l.Debugf(ctx, "calendar.usecase.InvalidateWeek: dropped week %d for user %s", weekOffset, sc.UserID)
}

package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"workspace-chat/internal/model"
	"workspace-chat/internal/workspace"
	"workspace-chat/pkg/gworkspace"
)

const (
	maxDriveFiles     = 10
	maxUpcomingEvents = 10
	maxPlaylists      = 10
	maxEmailMessages  = 5
)

// RecentFiles lists the user's most recently modified Drive files.
func (uc implUseCase) RecentFiles(ctx context.Context, sc model.Scope) (workspace.RecentFilesOutput, error) {
	if !sc.HasGoogleToken() {
		return workspace.RecentFilesOutput{}, workspace.ErrMissingGoogleToken
	}

	client, err := uc.newDrive(ctx, sc.AccessToken)
	if err != nil {
		return workspace.RecentFilesOutput{}, workspace.ErrUpstreamFailed
	}

	files, err := client.ListRecentFiles(ctx, maxDriveFiles)
	if err != nil {
		uc.l.Errorf(ctx, "workspace.usecase.RecentFiles: %v", err)
		return workspace.RecentFilesOutput{}, workspace.ErrUpstreamFailed
	}
	return workspace.RecentFilesOutput{Files: files}, nil
}

// TaskOverview lists every task list with its tasks. Per-list fetches run
// concurrently; partial failure is not isolated, the first error aborts the
// whole overview.
func (uc implUseCase) TaskOverview(ctx context.Context, sc model.Scope) (workspace.TaskOverviewOutput, error) {
	if !sc.HasGoogleToken() {
		return workspace.TaskOverviewOutput{}, workspace.ErrMissingGoogleToken
	}

	client, err := uc.newTasks(ctx, sc.AccessToken)
	if err != nil {
		return workspace.TaskOverviewOutput{}, workspace.ErrUpstreamFailed
	}

	lists, err := client.ListTaskLists(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "workspace.usecase.TaskOverview: list task lists: %v", err)
		return workspace.TaskOverviewOutput{}, workspace.ErrUpstreamFailed
	}

	groups := make([]gworkspace.TaskGroup, len(lists))
	g, gctx := errgroup.WithContext(ctx)
	for i, list := range lists {
		i, list := i, list
		g.Go(func() error {
			tasks, err := client.ListTasks(gctx, list.ID)
			if err != nil {
				return err
			}
			groups[i] = gworkspace.TaskGroup{List: list, Tasks: tasks}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "workspace.usecase.TaskOverview: fetch tasks: %v", err)
		return workspace.TaskOverviewOutput{}, workspace.ErrUpstreamFailed
	}

	return workspace.TaskOverviewOutput{Groups: groups}, nil
}

// UpcomingEvents lists the next calendar events from now.
func (uc implUseCase) UpcomingEvents(ctx context.Context, sc model.Scope) (workspace.UpcomingEventsOutput, error) {
	if !sc.HasGoogleToken() {
		return workspace.UpcomingEventsOutput{}, workspace.ErrMissingGoogleToken
	}

	client, err := uc.newCalendar(ctx, sc.AccessToken)
	if err != nil {
		return workspace.UpcomingEventsOutput{}, workspace.ErrUpstreamFailed
	}

	events, err := client.ListUpcoming(ctx, "primary", maxUpcomingEvents)
	if err != nil {
		uc.l.Errorf(ctx, "workspace.usecase.UpcomingEvents: %v", err)
		return workspace.UpcomingEventsOutput{}, workspace.ErrUpstreamFailed
	}
	return workspace.UpcomingEventsOutput{Events: events}, nil
}

// Playlists lists the user's YouTube playlists.
func (uc implUseCase) Playlists(ctx context.Context, sc model.Scope) (workspace.PlaylistsOutput, error) {
	if !sc.HasGoogleToken() {
		return workspace.PlaylistsOutput{}, workspace.ErrMissingGoogleToken
	}

	client, err := uc.newYouTube(ctx, sc.AccessToken)
	if err != nil {
		return workspace.PlaylistsOutput{}, workspace.ErrUpstreamFailed
	}

	playlists, err := client.ListPlaylists(ctx, maxPlaylists)
	if err != nil {
		uc.l.Errorf(ctx, "workspace.usecase.Playlists: %v", err)
		return workspace.PlaylistsOutput{}, workspace.ErrUpstreamFailed
	}
	return workspace.PlaylistsOutput{Playlists: playlists}, nil
}

// RecentEmail lists the newest Gmail messages.
func (uc implUseCase) RecentEmail(ctx context.Context, sc model.Scope) (workspace.RecentEmailOutput, error) {
	if !sc.HasGoogleToken() {
		return workspace.RecentEmailOutput{}, workspace.ErrMissingGoogleToken
	}

	client, err := uc.newGmail(ctx, sc.AccessToken)
	if err != nil {
		return workspace.RecentEmailOutput{}, workspace.ErrUpstreamFailed
	}

	messages, err := client.ListRecentMessages(ctx, maxEmailMessages)
	if err != nil {
		uc.l.Errorf(ctx, "workspace.usecase.RecentEmail: %v", err)
		return workspace.RecentEmailOutput{}, workspace.ErrUpstreamFailed
	}
	return workspace.RecentEmailOutput{Messages: messages}, nil
}

package workspace

import (
	"context"

	"workspace-chat/internal/model"
)

// UseCase defines the business logic interface for the Workspace experiments.
// Every operation calls Google on behalf of the signed-in user and fails
// fast when the scope carries no Google token.
type UseCase interface {
	// RecentFiles lists the user's most recently modified Drive files.
	RecentFiles(ctx context.Context, sc model.Scope) (RecentFilesOutput, error)

	// TaskOverview lists every task list with its tasks. Lists are fetched
	// concurrently; one failing list fails the whole overview.
	TaskOverview(ctx context.Context, sc model.Scope) (TaskOverviewOutput, error)

	// UpcomingEvents lists the next calendar events from now.
	UpcomingEvents(ctx context.Context, sc model.Scope) (UpcomingEventsOutput, error)

	// Playlists lists the user's YouTube playlists.
	Playlists(ctx context.Context, sc model.Scope) (PlaylistsOutput, error)

	// RecentEmail lists the newest Gmail messages.
	RecentEmail(ctx context.Context, sc model.Scope) (RecentEmailOutput, error)
}

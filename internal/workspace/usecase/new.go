package usecase

import (
	"context"

	"workspace-chat/pkg/gcalendar"
	"workspace-chat/pkg/gworkspace"
	pkgLog "workspace-chat/pkg/log"
)

// Client views over the Google service wrappers, narrowed to what the
// experiments use so tests can substitute fakes.
type driveClient interface {
	ListRecentFiles(ctx context.Context, maxResults int64) ([]gworkspace.DriveFile, error)
}

type tasksClient interface {
	ListTaskLists(ctx context.Context) ([]gworkspace.TaskList, error)
	ListTasks(ctx context.Context, listID string) ([]gworkspace.Task, error)
}

type calendarClient interface {
	ListUpcoming(ctx context.Context, calendarID string, maxResults int64) ([]gcalendar.Event, error)
}

type youtubeClient interface {
	ListPlaylists(ctx context.Context, maxResults int64) ([]gworkspace.Playlist, error)
}

type gmailClient interface {
	ListRecentMessages(ctx context.Context, maxResults int64) ([]gworkspace.EmailMessage, error)
}

type implUseCase struct {
	l pkgLog.Logger

	// Per-request client factories. Clients are built per call because each
	// request carries its own user token.
	newDrive    func(ctx context.Context, token string) (driveClient, error)
	newTasks    func(ctx context.Context, token string) (tasksClient, error)
	newCalendar func(ctx context.Context, token string) (calendarClient, error)
	newYouTube  func(ctx context.Context, token string) (youtubeClient, error)
	newGmail    func(ctx context.Context, token string) (gmailClient, error)
}

// New creates a new Workspace UseCase instance.
func New(l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		l: l,
		newDrive: func(ctx context.Context, token string) (driveClient, error) {
			return gworkspace.NewDriveFromToken(ctx, token)
		},
		newTasks: func(ctx context.Context, token string) (tasksClient, error) {
			return gworkspace.NewTasksFromToken(ctx, token)
		},
		newCalendar: func(ctx context.Context, token string) (calendarClient, error) {
			return gcalendar.NewClientFromToken(ctx, token)
		},
		newYouTube: func(ctx context.Context, token string) (youtubeClient, error) {
			return gworkspace.NewYouTubeFromToken(ctx, token)
		},
		newGmail: func(ctx context.Context, token string) (gmailClient, error) {
			return gworkspace.NewGmailFromToken(ctx, token)
		},
	}
}

package workspace

import (
	"workspace-chat/pkg/gcalendar"
	"workspace-chat/pkg/gworkspace"
)

// RecentFilesOutput is the Drive experiment result.
type RecentFilesOutput struct {
	Files []gworkspace.DriveFile
}

// TaskOverviewOutput is the Tasks experiment result, one group per task list.
type TaskOverviewOutput struct {
	Groups []gworkspace.TaskGroup
}

// UpcomingEventsOutput is the Calendar experiment result.
type UpcomingEventsOutput struct {
	Events []gcalendar.Event
}

// PlaylistsOutput is the YouTube experiment result.
type PlaylistsOutput struct {
	Playlists []gworkspace.Playlist
}

// RecentEmailOutput is the Gmail experiment result.
type RecentEmailOutput struct {
	Messages []gworkspace.EmailMessage
}

package gworkspace

import "time"

// DriveFile is a simplified representation of a Drive file.
type DriveFile struct {
	ID            string
	Name          string
	MimeType      string
	WebViewLink   string
	ThumbnailLink string
	ModifiedTime  time.Time
	Size          int64
}

// TaskList is one of the user's task lists.
type TaskList struct {
	ID    string
	Title string
}

// Task is a single to-do item.
type Task struct {
	ID     string
	Title  string
	Notes  string
	Status string
	Due    string
}

// TaskGroup pairs a task list with its tasks.
type TaskGroup struct {
	List  TaskList
	Tasks []Task
}

// Playlist is a simplified YouTube playlist.
type Playlist struct {
	ID          string
	Title       string
	Description string
	ItemCount   int64
	Thumbnail   string
}

// EmailMessage is a simplified Gmail message.
type EmailMessage struct {
	ID      string
	From    string
	Subject string
	Date    string
	Snippet string
}

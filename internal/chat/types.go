package chat

import "time"

// Reply type discriminators. Data holds the typed payload for anything that
// is not plain text.
const (
	ReplyTypeText     = "text"
	ReplyTypeCalendar = "calendar"
	ReplyTypeDrive    = "drive"
	ReplyTypeTasks    = "tasks"
	ReplyTypeYouTube  = "youtube"
	ReplyTypeEmail    = "email"
)

// SendInput is one user chat message.
type SendInput struct {
	Message  string
	Provider string
	Model    string
}

// Message is one chat turn, user or bot.
type Message struct {
	ID        string
	Sender    string
	Text      string
	Type      string
	Data      any
	Timestamp time.Time
}

// SendOutput is the bot's reply to one user message.
type SendOutput struct {
	Reply Message
}

package chat

import "errors"

var (
	// ErrEmptyMessage indicates a blank chat message.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrProviderFailed indicates the AI provider call failed.
	ErrProviderFailed = errors.New("the AI provider could not answer, please try again")
)

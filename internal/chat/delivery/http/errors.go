package http

import (
	"errors"

	"workspace-chat/internal/chat"
)

var (
	errInvalidBody  = errors.New("invalid request body")
	errEmptyMessage = errors.New("message must not be empty")
)

func (h handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, chat.ErrProviderFailed):
		return chat.ErrProviderFailed
	default:
		return err
	}
}

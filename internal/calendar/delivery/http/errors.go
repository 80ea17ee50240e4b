package http

import (
	"errors"

	"workspace-chat/internal/calendar"
)

var (
	errInvalidOffset = errors.New("offset must be an integer")
	errMissingToken  = errors.New("google sign-in required")
	errFetchFailed   = errors.New("could not load calendar events")
)

func (h handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrMissingGoogleToken):
		return errMissingToken
	case errors.Is(err, calendar.ErrFetchFailed):
		return errFetchFailed
	default:
		return err
	}
}

package calendar

import "errors"

var (
	// ErrMissingGoogleToken indicates the user has no Google access token.
	ErrMissingGoogleToken = errors.New("google access token is required, please sign in again")

	// ErrFetchFailed indicates the calendar source could not be read.
	ErrFetchFailed = errors.New("failed to fetch calendar events")
)

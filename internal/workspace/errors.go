package workspace

import "errors"

var (
	// ErrMissingGoogleToken indicates the user has no Google access token.
	ErrMissingGoogleToken = errors.New("google access token is required, please sign in again")

	// ErrUpstreamFailed indicates a Google API call failed. Sub-fetch
	// failures are not isolated; the whole action fails.
	ErrUpstreamFailed = errors.New("google workspace request failed")
)

package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the per-request user context: who is asking and the
// Google access token their session holds. Token issuance and refresh
// live outside this service; an empty AccessToken means the Workspace
// commands must short-circuit with a re-authenticate prompt.
type Scope struct {
	UserID      string
	Username    string
	AccessToken string
}

// HasGoogleToken reports whether Workspace API calls can be attempted.
func (s Scope) HasGoogleToken() bool {
	return s.AccessToken != ""
}

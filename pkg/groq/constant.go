package groq

import "time"

const (
	// DefaultBaseURL is the default Groq API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use
	DefaultModel = "mixtral-8x7b-32768"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// Default generation settings
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1024
)

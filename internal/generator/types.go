package generator

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/castaway/internal/models"
)

// Provider names accepted by the server config
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config for the retrying generator client
type Config struct {
	// Backend performs the provider call
	Backend Backend

	// Provider is used in logs and errors
	Provider string

	// Timeout bounds each attempt; zero means no per-attempt bound
	Timeout time.Duration

	// RetryDelay is the pause before the retry
	RetryDelay time.Duration

	// MaxTries is the total number of attempts, defaults to 2
	MaxTries uint
}

// GenerateInput is the prompt for one turn
type GenerateInput struct {
	// System is the game master prompt carrying the scene directive
	System string

	// History is the prior transcript, oldest first
	History []models.Message

	// UserInput is the player's line or a GM note
	UserInput string
}

// GenerateOutput is the provider's reply
type GenerateOutput struct {
	Text string

	// Attempts is how many calls were made to get the reply
	Attempts int
}

// APIError is a provider error carrying its HTTP status
type APIError struct {
	Provider   string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s returned status %d: %v", e.Provider, e.StatusCode, e.Err)
}

// Unwrap returns the provider's error
func (e *APIError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the status is worth another attempt
func (e *APIError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

package api

// HandlerError is a custom error type for transport errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      HandlerError = "config cannot be nil"
	ErrNilGameService HandlerError = "game service cannot be nil"
	ErrEmptyAddr      HandlerError = "listen address cannot be empty"
)

// Response messages
const (
	msgSiteNotConfigured = "Site not configured"
	msgInvalidPassword   = "Invalid password"
	msgAuthFailed        = "Authentication failed"
	msgUnauthorized      = "Unauthorized - invalid password"
	msgPlayerNameMissing = "playerName required"
	msgStartFailed       = "Failed to start game"
	msgGameNotFound      = "Game not found"
	msgInvalidBody       = "Invalid request body"
	msgSceneFailed       = "Failed to generate scene"
	msgNarratorFailed    = "The narrator is unavailable, try again"
	msgLoadFailed        = "Failed to load game"
)

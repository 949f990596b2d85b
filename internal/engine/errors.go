package engine

// EngineError is a custom error type for state machine errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     EngineError = "config cannot be nil"
	ErrNilRoller     EngineError = "roller cannot be nil"
	ErrNilState      EngineError = "game state cannot be nil"
	ErrNilTurn       EngineError = "turn cannot be nil"
	ErrStaleTurn     EngineError = "turn was planned for a different scene"
	ErrUnknownPolicy EngineError = "unknown elimination policy"
)

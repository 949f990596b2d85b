package generator

// GeneratorError is a custom error type for generator errors
type GeneratorError string

// Error implements the error interface
func (e GeneratorError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       GeneratorError = "config cannot be nil"
	ErrNilBackend      GeneratorError = "backend cannot be nil"
	ErrNilInput        GeneratorError = "input cannot be nil"
	ErrMissingKey      GeneratorError = "api key is required"
	ErrEmptyReply      GeneratorError = "provider returned an empty reply"
	ErrUnknownProvider GeneratorError = "unknown generator provider"
)

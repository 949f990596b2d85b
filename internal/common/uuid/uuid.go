package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/castaway/internal/common/uuid Generator

// Generator creates record identifiers
type Generator interface {
	NewID() string
}

// Prefixed implements Generator with random UUIDs behind an optional prefix
type Prefixed struct {
	prefix string
}

// New creates a generator whose ids read "<prefix>_<uuid>"
func New(prefix string) *Prefixed {
	return &Prefixed{prefix: prefix}
}

// NewID returns a new identifier
func (p *Prefixed) NewID() string {
	id := uuid.NewString()
	if p.prefix == "" {
		return id
	}
	return p.prefix + "_" + id
}

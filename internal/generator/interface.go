package generator

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/castaway/internal/generator Generator

// Generator produces the narrative text for one turn
type Generator interface {
	// Generate sends the prompt to the provider and returns the raw reply.
	// Transient provider failures are retried once.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Backend is a single provider call with no retry handling
type Backend interface {
	Complete(ctx context.Context, input *GenerateInput) (string, error)
}

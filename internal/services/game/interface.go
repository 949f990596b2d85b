package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/castaway/internal/services/game Service

// Service defines the interface for game operations
type Service interface {
	// StartGame creates a new season for a player
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// AdvanceScene plays the slot under the cursor and moves the game forward.
	// When generation fails the stored game is left untouched.
	AdvanceScene(ctx context.Context, input *AdvanceSceneInput) (*AdvanceSceneOutput, error)

	// GetGame returns the stored game
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)
}

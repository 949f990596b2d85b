package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/castaway/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/castaway/internal/models"
)

// Repository defines the interface for game state persistence. Each game is
// stored as one record and every save replaces it whole.
type Repository interface {
	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.GameState, error)
}

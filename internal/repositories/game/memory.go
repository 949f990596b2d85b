package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/castaway/internal/models"
)

// memoryRepository implements the Repository interface in process memory.
// Records are kept as JSON so callers never share state with the store.
type memoryRepository struct {
	mu    sync.RWMutex
	games map[string][]byte
}

// NewMemory creates a new in-memory game repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		games: make(map[string][]byte),
	}
}

// SaveGame stores a snapshot of the game
func (r *memoryRepository) SaveGame(_ context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}
	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[input.Game.ID] = gameJSON

	return nil
}

// GetGame returns a fresh copy of the stored game
func (r *memoryRepository) GetGame(_ context.Context, input *GetGameInput) (*models.GameState, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.RLock()
	gameJSON, ok := r.games[input.GameID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrGameNotFound
	}

	var game models.GameState
	if err := json.Unmarshal(gameJSON, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

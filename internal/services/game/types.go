package game

import (
	"github.com/KirkDiggler/castaway/internal/common/clock"
	"github.com/KirkDiggler/castaway/internal/common/keylock"
	"github.com/KirkDiggler/castaway/internal/common/uuid"
	"github.com/KirkDiggler/castaway/internal/dice"
	"github.com/KirkDiggler/castaway/internal/engine"
	"github.com/KirkDiggler/castaway/internal/generator"
	"github.com/KirkDiggler/castaway/internal/models"
	gameRepo "github.com/KirkDiggler/castaway/internal/repositories/game"
)

// Config holds configuration for the game service
type Config struct {
	// HistoryWindow caps how many transcript messages are sent to the
	// generator; zero sends the whole transcript
	HistoryWindow int

	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies
	Engine        *engine.Engine
	Generator     generator.Generator
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.Generator

	// Locker serializes turns per game; a private one is created when nil
	Locker *keylock.Locker
}

// StartGameInput contains parameters for starting a new game
type StartGameInput struct {
	// PlayerName is how the narrative refers to the player's contestant
	PlayerName string
}

// StartGameOutput contains the result of starting a new game
type StartGameOutput struct {
	Game *models.GameState
}

// AdvanceSceneInput contains parameters for playing one turn
type AdvanceSceneInput struct {
	GameID string

	// UserInput is the player's choice or free text; empty lets the game
	// master continue on its own
	UserInput string
}

// AdvanceSceneOutput contains the result of playing one turn
type AdvanceSceneOutput struct {
	// Game is the state after the turn was committed
	Game *models.GameState

	// Message is the narrative for display, without machine tags
	Message string

	// SceneType and SceneDescription describe the slot that was played
	SceneType        models.SceneType
	SceneDescription string

	// RolledOver is true when the turn ended the day
	RolledOver bool

	// Merged is true when the turn triggered the merge
	Merged bool
}

// GetGameInput contains parameters for loading a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the loaded game
type GetGameOutput struct {
	Game *models.GameState
}

// Package engine is the game progression state machine: it sequences the
// scheduled slots, resolves challenge outcomes and eliminations, and advances
// the day cursor.
package engine

import (
	"github.com/KirkDiggler/castaway/internal/dice"
	"github.com/KirkDiggler/castaway/internal/schedule"
)

// PlayerWinChance is the probability the player (or the player's tribe) wins
// a challenge whose outcome has not been decided yet
const PlayerWinChance = 0.55

// Config holds the dependencies of the engine
type Config struct {
	// Table is the season schedule; defaults to the embedded table
	Table schedule.Table

	// Roller draws every random outcome
	Roller dice.Roller

	// Policy selects who is voted out at tribal_results; defaults to uniform
	Policy EliminationPolicy
}

// Engine sequences and resolves scenes for one game state at a time.
// It holds no per-game state.
type Engine struct {
	table  schedule.Table
	roller dice.Roller
	policy EliminationPolicy
}

// New creates a new engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	table := cfg.Table
	if table == nil {
		table = schedule.Default()
	}

	policy := cfg.Policy
	if policy == nil {
		policy = UniformPolicy{}
	}

	return &Engine{
		table:  table,
		roller: cfg.Roller,
		policy: policy,
	}, nil
}

package models

import (
	"time"
)

// Phase is the coarse stage of the season
type Phase string

const (
	// PhasePreMerge is the two-tribe stage
	PhasePreMerge Phase = "pre-merge"

	// PhaseMerge marks the merge day itself in the schedule table
	PhaseMerge Phase = "merge"

	// PhaseMerged is the individual stage after the tribes merge
	PhaseMerged Phase = "merged"
)

// TribeColors maps the two tribe names to their display colours
type TribeColors struct {
	Tribe1Name  string `json:"tribe1Name"`
	Tribe1Color string `json:"tribe1Color"`
	Tribe2Name  string `json:"tribe2Name"`
	Tribe2Color string `json:"tribe2Color"`
}

// Tribes holds the members of both tribes. Tribe1 is always the player's tribe.
type Tribes struct {
	Tribe1 []string `json:"tribe1"`
	Tribe2 []string `json:"tribe2"`
}

// GameState is the full persisted record of one game
type GameState struct {
	// ID is the unique identifier for the game
	ID string `json:"gameId"`

	// PlayerName and Location are fixed at creation
	PlayerName string `json:"playerName"`
	Location   string `json:"location"`

	PlayerTribe   string      `json:"playerTribe"`
	OpposingTribe string      `json:"opposingTribe"`
	TribeColors   TribeColors `json:"tribeColors"`

	// Tribes holds the current members; eliminated names are removed
	Tribes Tribes `json:"tribes"`

	// StartingTribes is the day-1 roster, kept for display
	StartingTribes Tribes `json:"startingTribes"`

	Eliminated []string `json:"eliminated"`
	Jury       []string `json:"jury"`

	// Day and SceneIndexInDay form the sequencing cursor
	Day             int `json:"day"`
	SceneIndexInDay int `json:"sceneIndexInDay"`

	Merged          bool   `json:"merged"`
	MergedTribeName string `json:"mergedTribeName,omitempty"`

	// LastChallengeWon is nil until the day's challenge is resolved
	LastChallengeWon *bool `json:"lastChallengeWon,omitempty"`

	// PendingOpposingElimination is already eliminated but not yet revealed
	PendingOpposingElimination string `json:"pendingOpposingElimination,omitempty"`

	// ImmunityHolder wears the individual immunity necklace for the current day
	ImmunityHolder string `json:"immunityHolder,omitempty"`

	SceneCount    int       `json:"sceneCount"`
	LastSceneType SceneType `json:"lastSceneType,omitempty"`

	Stats   Stats     `json:"stats"`
	History []Message `json:"history"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Phase derives the season stage from the merge flag
func (g *GameState) Phase() Phase {
	if g.Merged {
		return PhaseMerged
	}
	return PhasePreMerge
}

// ChallengeOutcome returns the tri-state last challenge result as (won, known)
func (g *GameState) ChallengeOutcome() (won bool, known bool) {
	if g.LastChallengeWon == nil {
		return false, false
	}
	return *g.LastChallengeWon, true
}

// SetChallengeOutcome records the day's challenge result
func (g *GameState) SetChallengeOutcome(won bool) {
	g.LastChallengeWon = &won
}

// Clone returns a deep copy so callers can plan against a snapshot
func (g *GameState) Clone() *GameState {
	c := *g
	c.Tribes = Tribes{
		Tribe1: append([]string(nil), g.Tribes.Tribe1...),
		Tribe2: append([]string(nil), g.Tribes.Tribe2...),
	}
	c.StartingTribes = Tribes{
		Tribe1: append([]string(nil), g.StartingTribes.Tribe1...),
		Tribe2: append([]string(nil), g.StartingTribes.Tribe2...),
	}
	c.Eliminated = append([]string(nil), g.Eliminated...)
	c.Jury = append([]string(nil), g.Jury...)
	c.History = append([]Message(nil), g.History...)
	if g.LastChallengeWon != nil {
		won := *g.LastChallengeWon
		c.LastChallengeWon = &won
	}
	return &c
}

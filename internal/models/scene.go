package models

import "strings"

// SceneType identifies the kind of scheduled slot
type SceneType string

const (
	// SceneTypeCamp is a camp life / strategy scene
	SceneTypeCamp SceneType = "camp"

	// SceneTypeChallenge sets up a reward or immunity challenge
	SceneTypeChallenge SceneType = "challenge"

	// SceneTypeChallengeResults reveals who won the challenge
	SceneTypeChallengeResults SceneType = "challenge_results"

	// SceneTypeTribal is a Tribal Council before the vote is read
	SceneTypeTribal SceneType = "tribal"

	// SceneTypeTribalResults reads the votes
	SceneTypeTribalResults SceneType = "tribal_results"
)

// Valid reports whether the scene type is one of the known slot types
func (t SceneType) Valid() bool {
	switch t {
	case SceneTypeCamp, SceneTypeChallenge, SceneTypeChallengeResults, SceneTypeTribal, SceneTypeTribalResults:
		return true
	}
	return false
}

// ParseSceneType normalizes a scene type claimed by the generator.
// The second return value is false when the value is not a known type.
func ParseSceneType(s string) (SceneType, bool) {
	t := SceneType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// Slot is one scheduled unit of narrative within a day
type Slot struct {
	Type        SceneType `json:"scene_type" yaml:"type"`
	Description string    `json:"scene_description" yaml:"description"`
}

// Message is one entry of the transcript sent to the generator
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	// RoleUser marks player-authored transcript entries
	RoleUser = "user"

	// RoleAssistant marks generator-authored transcript entries
	RoleAssistant = "assistant"
)

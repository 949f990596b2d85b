package engine

import (
	"slices"

	"github.com/KirkDiggler/castaway/internal/dice"
	"github.com/KirkDiggler/castaway/internal/models"
)

// Policy names accepted by PolicyByName
const (
	PolicyUniform    = "uniform"
	PolicyTribeLines = "tribe-lines"
)

// EliminationPolicy picks who goes home at a vote.
// candidates is never empty and never contains the player.
type EliminationPolicy interface {
	Choose(roller dice.Roller, state *models.GameState, candidates []string) string
}

// UniformPolicy votes out any candidate with equal probability
type UniformPolicy struct{}

// Choose implements EliminationPolicy
func (UniformPolicy) Choose(roller dice.Roller, _ *models.GameState, candidates []string) string {
	return dice.Pick(roller, candidates)
}

// TribeLinesPolicy makes post-merge votes follow the starting tribes: members
// of the opposing starting tribe are OpposingWeight times as likely to be
// voted out as the player's original tribemates. Pre-merge it is uniform.
type TribeLinesPolicy struct {
	OpposingWeight float64
}

// Choose implements EliminationPolicy
func (p TribeLinesPolicy) Choose(roller dice.Roller, state *models.GameState, candidates []string) string {
	if !state.Merged || p.OpposingWeight <= 0 {
		return dice.Pick(roller, candidates)
	}

	weights := make([]float64, len(candidates))
	var total float64
	for i, name := range candidates {
		weights[i] = 1
		if slices.Contains(state.StartingTribes.Tribe2, name) {
			weights[i] = p.OpposingWeight
		}
		total += weights[i]
	}

	target := roller.Float64() * total
	for i, w := range weights {
		if target < w {
			return candidates[i]
		}
		target -= w
	}
	return candidates[len(candidates)-1]
}

// PolicyByName resolves a configured policy name
func PolicyByName(name string) (EliminationPolicy, error) {
	switch name {
	case "", PolicyUniform:
		return UniformPolicy{}, nil
	case PolicyTribeLines:
		return TribeLinesPolicy{OpposingWeight: 2}, nil
	}
	return nil, ErrUnknownPolicy
}

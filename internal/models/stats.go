package models

import "math"

const (
	// StatMin is the lowest value any stat can take
	StatMin = 1.0

	// StatMax is the highest value any stat can take
	StatMax = 5.0

	// StatDefault is the starting value of every stat
	StatDefault = 2.5
)

// Stat keys as they appear in generator STAT_UPDATES tags
const (
	StatSocial    = "Social"
	StatStrategy  = "Strategy"
	StatChallenge = "Challenge"
	StatThreat    = "Threat"
)

// Stats holds the player's four bounded attributes
type Stats struct {
	Social    float64 `json:"Social"`
	Strategy  float64 `json:"Strategy"`
	Challenge float64 `json:"Challenge"`
	Threat    float64 `json:"Threat"`
}

// DefaultStats returns the stats every new game starts with
func DefaultStats() Stats {
	return Stats{
		Social:    StatDefault,
		Strategy:  StatDefault,
		Challenge: StatDefault,
		Threat:    StatDefault,
	}
}

// Apply adds each recognized delta and clamps the result to [StatMin, StatMax].
// Unknown keys and non-finite deltas are ignored.
func (s *Stats) Apply(updates map[string]float64) {
	for key, delta := range updates {
		field := s.field(key)
		if field == nil || math.IsNaN(delta) || math.IsInf(delta, 0) {
			continue
		}
		*field = clamp(*field+delta, StatMin, StatMax)
	}
}

func (s *Stats) field(key string) *float64 {
	switch key {
	case StatSocial:
		return &s.Social
	case StatStrategy:
		return &s.Strategy
	case StatChallenge:
		return &s.Challenge
	case StatThreat:
		return &s.Threat
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

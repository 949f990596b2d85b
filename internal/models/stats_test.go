package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsApplyClampsHigh(t *testing.T) {
	stats := DefaultStats()
	stats.Strategy = 4.5

	stats.Apply(map[string]float64{StatStrategy: 10})

	assert.Equal(t, 5.0, stats.Strategy)
}

func TestStatsApplyClampsLow(t *testing.T) {
	stats := DefaultStats()

	stats.Apply(map[string]float64{StatThreat: -7})

	assert.Equal(t, 1.0, stats.Threat)
}

func TestStatsApplyIgnoresUnknownKeys(t *testing.T) {
	stats := DefaultStats()

	stats.Apply(map[string]float64{"Luck": 2, "social": 1, StatSocial: 0.5})

	assert.Equal(t, Stats{Social: 3, Strategy: 2.5, Challenge: 2.5, Threat: 2.5}, stats)
}

func TestStatsApplyIgnoresNonFinite(t *testing.T) {
	stats := DefaultStats()

	stats.Apply(map[string]float64{StatChallenge: math.NaN(), StatSocial: math.Inf(1)})

	assert.Equal(t, DefaultStats(), stats)
}

func TestStatsStayBoundedOverManyDeltas(t *testing.T) {
	stats := DefaultStats()
	deltas := []float64{3, -0.5, 9, -12, 0.25, 4, -1, -1, 100, -100, 0.5}

	for _, d := range deltas {
		stats.Apply(map[string]float64{
			StatSocial:    d,
			StatStrategy:  -d,
			StatChallenge: d / 2,
			StatThreat:    d * 3,
		})
		for _, v := range []float64{stats.Social, stats.Strategy, stats.Challenge, stats.Threat} {
			assert.GreaterOrEqual(t, v, StatMin)
			assert.LessOrEqual(t, v, StatMax)
		}
	}
}

func TestParseSceneType(t *testing.T) {
	st, ok := ParseSceneType(" Challenge_Results ")
	assert.True(t, ok)
	assert.Equal(t, SceneTypeChallengeResults, st)

	_, ok = ParseSceneType("intro")
	assert.False(t, ok)
}

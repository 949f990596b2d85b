package engine

import (
	"log"

	"github.com/KirkDiggler/castaway/internal/dice"
	"github.com/KirkDiggler/castaway/internal/models"
	"github.com/KirkDiggler/castaway/internal/schedule"
)

// AdvanceResult reports what an Advance call changed besides the index
type AdvanceResult struct {
	// RolledOver is true when the cursor moved to the next day
	RolledOver bool

	// Merged is true when this call performed the merge
	Merged bool
}

// EffectiveSequence is the day's base slots followed by the win or loss
// continuation selected by the last challenge outcome.
func (e *Engine) EffectiveSequence(day int, lastChallengeWon *bool) []models.Slot {
	d := e.table.For(day)
	seq := make([]models.Slot, 0, len(d.Slots)+len(d.OnLoss))
	seq = append(seq, d.Slots...)
	if lastChallengeWon == nil {
		return seq
	}
	if *lastChallengeWon {
		return append(seq, d.OnWin...)
	}
	return append(seq, d.OnLoss...)
}

// CurrentSlot returns the slot under the cursor. The second value is false
// when the cursor is out of range and the fallback camp slot was returned.
func (e *Engine) CurrentSlot(state *models.GameState) (models.Slot, bool) {
	seq := e.EffectiveSequence(state.Day, state.LastChallengeWon)
	if state.SceneIndexInDay >= 0 && state.SceneIndexInDay < len(seq) {
		return seq[state.SceneIndexInDay], true
	}
	if state.Day <= schedule.FinalDay {
		log.Printf("schedule: day %d has no slot at index %d (sequence length %d), using fallback",
			state.Day, state.SceneIndexInDay, len(seq))
	}
	return schedule.FallbackSlot, false
}

// Advance moves the cursor one slot forward, rolling over to the next day
// when the day's effective sequence is exhausted. At most one day is skipped
// per call. Reaching the merge day unmerged performs the merge.
func (e *Engine) Advance(state *models.GameState) AdvanceResult {
	var result AdvanceResult

	seq := e.EffectiveSequence(state.Day, state.LastChallengeWon)
	state.SceneIndexInDay++
	if state.SceneIndexInDay < len(seq) {
		return result
	}

	state.Day++
	state.SceneIndexInDay = 0
	state.LastChallengeWon = nil
	state.ImmunityHolder = ""
	result.RolledOver = true

	if state.Day >= schedule.MergeDay && !state.Merged {
		state.Merged = true
		state.MergedTribeName = dice.Pick(e.roller, models.MergedTribeNames)
		result.Merged = true
		log.Printf("[MERGE] day %d: tribes merge into %s", state.Day, state.MergedTribeName)
	}

	return result
}

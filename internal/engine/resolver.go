package engine

import (
	"log"
	"slices"

	"github.com/KirkDiggler/castaway/internal/dice"
	"github.com/KirkDiggler/castaway/internal/models"
	"github.com/KirkDiggler/castaway/internal/schedule"
)

// Turn is the planned outcome of the slot under the cursor. Planning draws
// all randomness up front so the directive can describe the outcome; nothing
// is applied to the game until Commit.
type Turn struct {
	// Day and SceneIndex are the cursor the turn was planned for
	Day        int
	SceneIndex int

	// Slot is the scheduled slot; its type always wins over the generator's claim
	Slot models.Slot

	// Fallback is true when the cursor had no authored slot
	Fallback bool

	// Premiere is the very first scene of the season
	Premiere bool

	// MergeFeast is the first scene of the merge day
	MergeFeast bool

	// Finale is true for every slot on the final day
	Finale bool

	// Immunity is true for challenge slots that are played for immunity
	Immunity bool

	// ChallengeWon is the decided outcome of a challenge_results slot
	ChallengeWon *bool

	// ImmunityWinner is who wins individual immunity post-merge
	ImmunityWinner string

	// QueuedElimination is the opposing tribe member voted out off-screen
	QueuedElimination string

	// Reveal is the pending name whose absence this challenge reveals
	Reveal string

	// VotedOut is who goes home at this tribal_results slot
	VotedOut string
}

// PlayerWon reports the decided challenge outcome; false when undecided
func (t *Turn) PlayerWon() bool {
	return t.ChallengeWon != nil && *t.ChallengeWon
}

// CommitInput carries what the generator produced for the turn
type CommitInput struct {
	// UserInput is the player's line for this turn, if any
	UserInput string

	// Narrative is the raw generator reply appended to the history
	Narrative string

	// StatUpdates are the parsed stat deltas
	StatUpdates map[string]float64
}

// Plan decides the outcome of the slot under the cursor without mutating state
func (e *Engine) Plan(state *models.GameState) (*Turn, error) {
	if state == nil {
		return nil, ErrNilState
	}

	slot, ok := e.CurrentSlot(state)
	turn := &Turn{
		Day:        state.Day,
		SceneIndex: state.SceneIndexInDay,
		Slot:       slot,
		Fallback:   !ok,
		Premiere:   state.Day == 1 && state.SceneIndexInDay == 0,
		MergeFeast: state.Day == schedule.MergeDay && state.SceneIndexInDay == 0,
		Finale:     state.Day == schedule.FinalDay,
	}

	if state.SceneIndexInDay == 0 {
		e.checkContestants(state)
	}

	switch slot.Type {
	case models.SceneTypeChallenge:
		turn.Immunity = e.isImmunity(state)
		turn.Reveal = state.PendingOpposingElimination
	case models.SceneTypeChallengeResults:
		turn.Immunity = e.isImmunity(state)
		e.planChallengeResults(state, turn)
	case models.SceneTypeTribalResults:
		if !turn.Finale {
			turn.VotedOut = e.planVote(state)
		}
	}

	return turn, nil
}

func (e *Engine) isImmunity(state *models.GameState) bool {
	return state.Merged || schedule.IsImmunityDay(state.Day)
}

func (e *Engine) planChallengeResults(state *models.GameState, turn *Turn) {
	won, known := state.ChallengeOutcome()
	if !known {
		won = dice.Chance(e.roller, PlayerWinChance)
	}
	turn.ChallengeWon = &won

	if state.Merged {
		if won {
			turn.ImmunityWinner = state.PlayerName
			return
		}
		turn.ImmunityWinner = dice.Pick(e.roller, state.ActiveNonPlayer())
		return
	}

	if won && turn.Immunity && state.PendingOpposingElimination == "" {
		turn.QueuedElimination = dice.Pick(e.roller, state.OpposingMembers())
	}
}

// planVote picks the tribal_results target. The player is only chosen when no
// one else can go and the player is not immune.
func (e *Engine) planVote(state *models.GameState) string {
	var candidates []string
	if state.Merged {
		candidates = slices.DeleteFunc(state.ActiveNonPlayer(), func(name string) bool {
			return name == state.ImmunityHolder
		})
	} else {
		candidates = state.Tribemates()
	}

	if len(candidates) > 0 {
		return e.policy.Choose(e.roller, state, candidates)
	}
	if state.ImmunityHolder == state.PlayerName || state.IsEliminated(state.PlayerName) {
		return ""
	}
	return state.PlayerName
}

func (e *Engine) checkContestants(state *models.GameState) {
	if !e.table.Has(state.Day) {
		return
	}
	expected := e.table.For(state.Day).Contestants
	if active := len(state.Active()); expected != 0 && active != expected {
		log.Printf("schedule: day %d expects %d contestants, game %s has %d",
			state.Day, expected, state.ID, active)
	}
}

// Commit applies a planned turn and the generator's output, then advances
// the cursor. The turn must have been planned for the current cursor.
func (e *Engine) Commit(state *models.GameState, turn *Turn, input *CommitInput) (AdvanceResult, error) {
	if state == nil {
		return AdvanceResult{}, ErrNilState
	}
	if turn == nil {
		return AdvanceResult{}, ErrNilTurn
	}
	if turn.Day != state.Day || turn.SceneIndex != state.SceneIndexInDay {
		return AdvanceResult{}, ErrStaleTurn
	}
	if input == nil {
		input = &CommitInput{}
	}

	switch turn.Slot.Type {
	case models.SceneTypeChallenge:
		if turn.Reveal != "" && state.PendingOpposingElimination == turn.Reveal {
			state.PendingOpposingElimination = ""
		}
	case models.SceneTypeChallengeResults:
		if turn.ChallengeWon != nil {
			state.SetChallengeOutcome(*turn.ChallengeWon)
		}
		if turn.ImmunityWinner != "" {
			state.ImmunityHolder = turn.ImmunityWinner
		}
		if turn.QueuedElimination != "" && state.PendingOpposingElimination == "" {
			state.Eliminate(turn.QueuedElimination)
			state.PendingOpposingElimination = turn.QueuedElimination
			log.Printf("[PENDING ELIMINATION] %s from %s", turn.QueuedElimination, state.OpposingTribe)
		}
	case models.SceneTypeTribalResults:
		if turn.VotedOut != "" {
			state.Eliminate(turn.VotedOut)
			log.Printf("[ELIMINATION] day %d: %s voted out", state.Day, turn.VotedOut)
		}
	}

	state.Stats.Apply(input.StatUpdates)

	if input.UserInput != "" {
		state.History = append(state.History, models.Message{Role: models.RoleUser, Content: input.UserInput})
	}
	state.History = append(state.History, models.Message{Role: models.RoleAssistant, Content: input.Narrative})

	state.SceneCount++
	state.LastSceneType = turn.Slot.Type

	return e.Advance(state), nil
}

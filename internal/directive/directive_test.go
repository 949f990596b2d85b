package directive

import (
	"testing"

	"github.com/KirkDiggler/castaway/internal/engine"
	"github.com/KirkDiggler/castaway/internal/models"
	"github.com/KirkDiggler/castaway/internal/schedule"
	"github.com/stretchr/testify/suite"
)

type DirectiveTestSuite struct {
	suite.Suite
	game *models.GameState
}

func (s *DirectiveTestSuite) SetupTest() {
	s.game = &models.GameState{
		ID:            "test-game-id",
		PlayerName:    "Alex",
		Location:      "the cyclone-prone shores of Fiji",
		PlayerTribe:   "Koru",
		OpposingTribe: "Naru",
		Tribes: models.Tribes{
			Tribe1: []string{"Alex", "Parvati", "Sandra"},
			Tribe2: []string{"Tony", "Cirie", "Tyson"},
		},
		Eliminated: []string{},
		Jury:       []string{},
		Day:        1,
		Stats:      models.DefaultStats(),
	}
}

func TestDirectiveTestSuite(t *testing.T) {
	suite.Run(t, new(DirectiveTestSuite))
}

func won(b bool) *bool {
	return &b
}

func (s *DirectiveTestSuite) slotTurn(day, index int) *engine.Turn {
	seq := schedule.For(day).Slots
	return &engine.Turn{Day: day, SceneIndex: index, Slot: seq[index]}
}

func (s *DirectiveTestSuite) TestPremiere() {
	turn := s.slotTurn(1, 0)
	turn.Premiere = true

	out := Build(s.game, turn)

	s.Contains(out, "SCENE TYPE: PREMIERE (Day 1)")
	s.Contains(out, "Game intro scene")
	s.Contains(out, "the cyclone-prone shores of Fiji")
	s.Contains(out, "6 contestants. Tribes: Koru vs Naru")
	s.Contains(out, "SCENE_TYPE must be: camp")
}

func (s *DirectiveTestSuite) TestCamp() {
	s.game.Day = 4

	out := Build(s.game, s.slotTurn(4, 0))

	s.Contains(out, "SCENE TYPE: CAMP (Day 4)")
	s.Contains(out, "Game phase: pre-merge")
	s.Contains(out, "SCENE_TYPE must be: camp")
}

func (s *DirectiveTestSuite) TestMergeFeast() {
	s.game.Day = schedule.MergeDay
	s.game.Merged = true
	s.game.MergedTribeName = "Ember"
	turn := s.slotTurn(schedule.MergeDay, 0)
	turn.MergeFeast = true

	out := Build(s.game, turn)

	s.Contains(out, "SCENE TYPE: MERGE (Day 25)")
	s.Contains(out, "new Ember tribe")
	s.Contains(out, "Merged tribe: Ember. Individual game.")
}

func (s *DirectiveTestSuite) TestChallengeRevealsPendingElimination() {
	s.game.Day = 5
	s.game.Eliminate("Cirie")
	s.game.PendingOpposingElimination = "Cirie"
	turn := s.slotTurn(5, 1)
	turn.Reveal = "Cirie"

	out := Build(s.game, turn)

	s.Contains(out, "SCENE TYPE: REWARD CHALLENGE (Day 5)")
	s.Contains(out, "a TRIBE REWARD CHALLENGE")
	s.Contains(out, "the player notices Cirie is missing from the Naru tribe")
	s.Contains(out, "SCENE_TYPE must be: challenge")
}

func (s *DirectiveTestSuite) TestChallengeWithoutReveal() {
	s.game.Day = 3
	turn := s.slotTurn(3, 1)
	turn.Immunity = true

	out := Build(s.game, turn)

	s.Contains(out, "SCENE TYPE: IMMUNITY CHALLENGE (Day 3)")
	s.NotContains(out, "IMPORTANT")
}

func (s *DirectiveTestSuite) TestChallengeResultsVariants() {
	s.game.Day = 3
	turn := s.slotTurn(3, 2)
	turn.Immunity = true
	turn.ChallengeWon = won(true)
	turn.QueuedElimination = "Tyson"

	out := Build(s.game, turn)
	s.Contains(out, "CHALLENGE RESULTS - VICTORY")
	s.Contains(out, "The Koru tribe WINS immunity!")
	s.Contains(out, "they'll discover who was voted off at the next challenge")
	s.NotContains(out, "Tyson", "the off-screen vote stays secret")

	turn.ChallengeWon = won(false)
	turn.QueuedElimination = ""
	out = Build(s.game, turn)
	s.Contains(out, "CHALLENGE RESULTS - DEFEAT")
	s.Contains(out, "Someone is going home.")

	turn.Immunity = false
	out = Build(s.game, turn)
	s.Contains(out, "The Naru tribe wins the reward.")
}

func (s *DirectiveTestSuite) TestIndividualImmunityResults() {
	s.game.Merged = true
	s.game.MergedTribeName = "Nova"
	s.game.Day = 27
	turn := s.slotTurn(27, 2)
	turn.Immunity = true
	turn.ChallengeWon = won(false)
	turn.ImmunityWinner = "Cirie"

	out := Build(s.game, turn)
	s.Contains(out, "CHALLENGE RESULTS - CIRIE WINS (Day 27)")
	s.Contains(out, "could be voted out tonight")

	turn.ChallengeWon = won(true)
	turn.ImmunityWinner = "Alex"
	out = Build(s.game, turn)
	s.Contains(out, "PLAYER WINS IMMUNITY")
}

func (s *DirectiveTestSuite) TestTribalMentionsImmunityHolder() {
	s.game.Merged = true
	s.game.Day = 27
	s.game.ImmunityHolder = "Tony"

	out := Build(s.game, s.slotTurn(27, 4))

	s.Contains(out, "SCENE TYPE: TRIBAL COUNCIL (Day 27)")
	s.Contains(out, "Tony wears the immunity necklace")
}

func (s *DirectiveTestSuite) TestTribalResultsNamesTarget() {
	s.game.Merged = true
	s.game.Day = 27
	turn := s.slotTurn(27, 5)
	turn.VotedOut = "Sandra"

	out := Build(s.game, turn)

	s.Contains(out, "Sandra is voted out and becomes a member of the jury")
	s.Contains(out, "5 will remain after this vote.")
	s.Contains(out, "SCENE_TYPE must be: tribal_results")
}

func (s *DirectiveTestSuite) TestFinale() {
	s.game.Merged = true
	s.game.Day = schedule.FinalDay
	s.game.Jury = []string{"Sandra", "Tyson"}

	turn := s.slotTurn(schedule.FinalDay, 1)
	turn.Finale = true
	out := Build(s.game, turn)
	s.Contains(out, "SCENE TYPE: FINAL TRIBAL COUNCIL (Day 39)")
	s.Contains(out, "Jurors Sandra, Tyson")

	turn = s.slotTurn(schedule.FinalDay, 2)
	turn.Finale = true
	out = Build(s.game, turn)
	s.Contains(out, "SCENE TYPE: FINAL RESULTS (Day 39)")
	s.Contains(out, "Social 2.5")
	s.Contains(out, "Nobody is voted out tonight.")
}

func (s *DirectiveTestSuite) TestUnknownSlotTypeFallsBack() {
	turn := &engine.Turn{Day: 1, Slot: models.Slot{Type: "confessional", Description: "Talk to camera"}}

	out := Build(s.game, turn)

	s.Contains(out, "SCENE TYPE: CONFESSIONAL (Day 1)")
	s.Contains(out, "Continue the story")
}

func (s *DirectiveTestSuite) TestSystemPrompt() {
	s.game.Day = 3
	s.game.Eliminate("Cirie")
	s.game.PendingOpposingElimination = "Cirie"
	s.game.Eliminate("Sandra")

	out := System(s.game, s.slotTurn(3, 0), "SCENE TYPE: CAMP (Day 3)")

	s.Contains(out, "PLAYER: Alex")
	s.Contains(out, "TRIBES: Koru (player's tribe) vs Naru")
	s.Contains(out, "ACTIVE ALL-STARS (3): Parvati, Tony, Tyson")
	s.Contains(out, "ELIMINATED: Sandra")
	s.NotContains(out, "Cirie")
	s.Contains(out, "SCENE TYPE: CAMP (Day 3)")
	s.Contains(out, "RESPONSE FORMAT:")
	s.NotContains(out, "MERGED TRIBE")
}

func (s *DirectiveTestSuite) TestGMNote() {
	s.Equal("[GM Note: Generate the next CHALLENGE_RESULTS scene.]",
		GMNote(models.Slot{Type: models.SceneTypeChallengeResults}))
}

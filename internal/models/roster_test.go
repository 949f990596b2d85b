package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RosterTestSuite struct {
	suite.Suite
	game *GameState
}

func (s *RosterTestSuite) SetupTest() {
	s.game = &GameState{
		ID:         "test-game-id",
		PlayerName: "Alex",
		Tribes: Tribes{
			Tribe1: []string{"Alex", "Parvati", "Sandra"},
			Tribe2: []string{"Tony", "Cirie", "Tyson"},
		},
		Day:   1,
		Stats: DefaultStats(),
	}
}

func TestRosterTestSuite(t *testing.T) {
	suite.Run(t, new(RosterTestSuite))
}

func (s *RosterTestSuite) TestEliminateRemovesFromTribe() {
	s.game.Eliminate("Tony")

	s.NotContains(s.game.Tribes.Tribe1, "Tony")
	s.NotContains(s.game.Tribes.Tribe2, "Tony")
	s.Equal([]string{"Tony"}, s.game.Eliminated)
	s.Empty(s.game.Jury, "pre-merge eliminations never join the jury")
}

func (s *RosterTestSuite) TestEliminateIsIdempotent() {
	s.game.Eliminate("Parvati")
	once := s.game.Clone()

	s.game.Eliminate("Parvati")

	s.Equal(once.Eliminated, s.game.Eliminated)
	s.Equal(once.Tribes, s.game.Tribes)
	s.Equal(once.Jury, s.game.Jury)
}

func (s *RosterTestSuite) TestEliminateEmptyNameIsNoop() {
	s.game.Eliminate("")
	s.Empty(s.game.Eliminated)
}

func (s *RosterTestSuite) TestPostMergeEliminationJoinsJury() {
	s.game.Merged = true
	s.game.Eliminate("Cirie")

	s.Equal([]string{"Cirie"}, s.game.Jury)
}

func (s *RosterTestSuite) TestJuryIsCapped() {
	s.game.Merged = true
	s.game.Jury = []string{"j1", "j2", "j3", "j4", "j5", "j6", "j7", "j8", "j9"}

	s.game.Eliminate("Tyson")

	s.Len(s.game.Jury, JuryCap)
	s.Contains(s.game.Eliminated, "Tyson")
}

func (s *RosterTestSuite) TestEliminatedNeverInTribes() {
	for _, name := range []string{"Tony", "Sandra", "Tony", "Tyson"} {
		s.game.Eliminate(name)
	}
	for _, name := range s.game.Eliminated {
		s.NotContains(s.game.Tribes.Tribe1, name)
		s.NotContains(s.game.Tribes.Tribe2, name)
	}
}

func (s *RosterTestSuite) TestActiveNonPlayer() {
	s.game.Eliminate("Cirie")

	s.ElementsMatch([]string{"Parvati", "Sandra", "Tony", "Tyson"}, s.game.ActiveNonPlayer())
	s.ElementsMatch([]string{"Alex", "Parvati", "Sandra", "Tony", "Tyson"}, s.game.Active())
}

func (s *RosterTestSuite) TestTribematesPreMerge() {
	s.Equal([]string{"Parvati", "Sandra"}, s.game.Tribemates())
	s.Equal([]string{"Tony", "Cirie", "Tyson"}, s.game.OpposingMembers())
}

func (s *RosterTestSuite) TestTribematesPostMerge() {
	s.game.Merged = true
	s.ElementsMatch([]string{"Parvati", "Sandra", "Tony", "Cirie", "Tyson"}, s.game.Tribemates())
}

func (s *RosterTestSuite) TestPhaseDerivedFromMerged() {
	s.Equal(PhasePreMerge, s.game.Phase())
	s.game.Merged = true
	s.Equal(PhaseMerged, s.game.Phase())
}

func (s *RosterTestSuite) TestCloneIsDeep() {
	s.game.SetChallengeOutcome(true)
	clone := s.game.Clone()

	clone.Eliminate("Tony")
	*clone.LastChallengeWon = false

	s.Contains(s.game.Tribes.Tribe2, "Tony")
	won, known := s.game.ChallengeOutcome()
	s.True(known)
	s.True(won)
}

package game

import (
	"time"

	"github.com/KirkDiggler/castaway/internal/models"
)

func testGame(id string, now time.Time) *models.GameState {
	won := true
	game := &models.GameState{
		ID:            id,
		PlayerName:    "Alex",
		Location:      "the reef-ringed islands of Palau",
		PlayerTribe:   "Koru",
		OpposingTribe: "Naru",
		TribeColors: models.TribeColors{
			Tribe1Name:  "Koru",
			Tribe1Color: "#840404",
			Tribe2Name:  "Naru",
			Tribe2Color: "#0C5F9E",
		},
		Tribes: models.Tribes{
			Tribe1: []string{"Alex", "Parvati"},
			Tribe2: []string{"Tony"},
		},
		StartingTribes: models.Tribes{
			Tribe1: []string{"Alex", "Parvati"},
			Tribe2: []string{"Tony", "Cirie"},
		},
		Eliminated:                 []string{"Cirie"},
		Jury:                       []string{},
		Day:                        3,
		SceneIndexInDay:            3,
		LastChallengeWon:           &won,
		PendingOpposingElimination: "Cirie",
		SceneCount:                 9,
		LastSceneType:              models.SceneTypeChallengeResults,
		Stats:                      models.Stats{Social: 3, Strategy: 2.5, Challenge: 4.25, Threat: 1},
		History: []models.Message{
			{Role: models.RoleAssistant, Content: "### Premiere"},
			{Role: models.RoleUser, Content: "A) Find water"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return game
}

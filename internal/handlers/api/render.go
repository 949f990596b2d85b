package api

import (
	"slices"

	"github.com/KirkDiggler/castaway/internal/models"
	"github.com/KirkDiggler/castaway/internal/services/game"
)

type tribeMember struct {
	Name       string `json:"name"`
	Eliminated bool   `json:"eliminated"`
}

type startGameResponse struct {
	GameID        string                   `json:"gameId"`
	Location      string                   `json:"location"`
	PlayerTribe   string                   `json:"playerTribe"`
	OpposingTribe string                   `json:"opposingTribe"`
	TribeColors   map[string]string        `json:"tribeColors"`
	Tribes        map[string][]tribeMember `json:"tribes"`
	Stats         models.Stats             `json:"stats"`
}

type sceneResponse struct {
	Message          string                   `json:"message"`
	SceneType        models.SceneType         `json:"sceneType"`
	SceneDescription string                   `json:"sceneDescription"`
	SceneIndex       int                      `json:"sceneIndex"`
	Stats            models.Stats             `json:"stats"`
	Day              int                      `json:"day"`
	Phase            models.Phase             `json:"phase"`
	PlayerTribe      string                   `json:"playerTribe"`
	OpposingTribe    string                   `json:"opposingTribe"`
	MergedTribeName  string                   `json:"mergedTribeName,omitempty"`
	TribeColors      map[string]string        `json:"tribeColors"`
	Tribes           map[string][]tribeMember `json:"tribes"`
}

type gameSummary struct {
	Day        int          `json:"day"`
	Phase      models.Phase `json:"phase"`
	Stats      models.Stats `json:"stats"`
	SceneCount int          `json:"sceneCount"`
	Eliminated []string     `json:"eliminated"`
	Jury       []string     `json:"jury"`
}

func newStartGameResponse(g *models.GameState) *startGameResponse {
	return &startGameResponse{
		GameID:        g.ID,
		Location:      g.Location,
		PlayerTribe:   g.PlayerTribe,
		OpposingTribe: g.OpposingTribe,
		TribeColors:   renderTribeColors(g),
		Tribes:        renderTribes(g),
		Stats:         g.Stats,
	}
}

func newSceneResponse(out *game.AdvanceSceneOutput) *sceneResponse {
	g := out.Game
	return &sceneResponse{
		Message:          out.Message,
		SceneType:        out.SceneType,
		SceneDescription: out.SceneDescription,
		SceneIndex:       g.SceneIndexInDay,
		Stats:            g.Stats,
		Day:              g.Day,
		Phase:            g.Phase(),
		PlayerTribe:      g.PlayerTribe,
		OpposingTribe:    g.OpposingTribe,
		MergedTribeName:  g.MergedTribeName,
		TribeColors:      renderTribeColors(g),
		Tribes:           renderTribes(g),
	}
}

func newGameSummary(g *models.GameState) *gameSummary {
	return &gameSummary{
		Day:        g.Day,
		Phase:      g.Phase(),
		Stats:      g.Stats,
		SceneCount: g.SceneCount,
		Eliminated: revealedEliminations(g),
		Jury:       nonNil(g.Jury),
	}
}

func renderTribeColors(g *models.GameState) map[string]string {
	return map[string]string{
		g.TribeColors.Tribe1Name: g.TribeColors.Tribe1Color,
		g.TribeColors.Tribe2Name: g.TribeColors.Tribe2Color,
	}
}

// renderTribes lists the starting rosters with each member's elimination flag
func renderTribes(g *models.GameState) map[string][]tribeMember {
	eliminated := revealedEliminations(g)
	render := func(names []string) []tribeMember {
		members := make([]tribeMember, 0, len(names))
		for _, name := range names {
			members = append(members, tribeMember{
				Name:       name,
				Eliminated: slices.Contains(eliminated, name),
			})
		}
		return members
	}

	return map[string][]tribeMember{
		g.PlayerTribe:   render(g.StartingTribes.Tribe1),
		g.OpposingTribe: render(g.StartingTribes.Tribe2),
	}
}

// revealedEliminations omits a pending elimination the player has not seen yet
func revealedEliminations(g *models.GameState) []string {
	names := make([]string, 0, len(g.Eliminated))
	for _, name := range g.Eliminated {
		if name != g.PendingOpposingElimination {
			names = append(names, name)
		}
	}
	return names
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}

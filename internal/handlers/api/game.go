package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/KirkDiggler/castaway/internal/services/game"
	"github.com/gin-gonic/gin"
)

type startGameRequest struct {
	PlayerName string `json:"playerName"`
}

type sceneRequest struct {
	UserInput string `json:"userInput"`
}

// StartGame creates a new season for the player
func (s *Server) StartGame(c *gin.Context) {
	var req startGameRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	out, err := s.gameService.StartGame(c.Request.Context(), &game.StartGameInput{
		PlayerName: req.PlayerName,
	})
	if err != nil {
		if errors.Is(err, game.ErrMissingPlayerName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgPlayerNameMissing})
			return
		}
		log.Printf("Error starting game: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStartFailed})
		return
	}

	c.JSON(http.StatusOK, newStartGameResponse(out.Game))
}

// AdvanceScene plays the next scene of a game
func (s *Server) AdvanceScene(c *gin.Context) {
	var req sceneRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	out, err := s.gameService.AdvanceScene(c.Request.Context(), &game.AdvanceSceneInput{
		GameID:    c.Param("gameId"),
		UserInput: req.UserInput,
	})
	if err != nil {
		switch {
		case errors.Is(err, game.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": msgGameNotFound})
		case errors.Is(err, game.ErrGenerationFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": msgNarratorFailed})
		default:
			log.Printf("Scene generation error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgSceneFailed})
		}
		return
	}

	c.JSON(http.StatusOK, newSceneResponse(out))
}

// GetGame returns a summary of a game
func (s *Server) GetGame(c *gin.Context) {
	out, err := s.gameService.GetGame(c.Request.Context(), &game.GetGameInput{
		GameID: c.Param("gameId"),
	})
	if err != nil {
		if errors.Is(err, game.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgGameNotFound})
			return
		}
		log.Printf("Error loading game: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoadFailed})
		return
	}

	c.JSON(http.StatusOK, newGameSummary(out.Game))
}

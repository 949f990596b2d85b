package game

import (
	"errors"
	"time"

	"github.com/KirkDiggler/castaway/internal/models"
	"github.com/redis/go-redis/v9"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires idle games; zero keeps them forever
	TTL time.Duration
}

type SaveGameInput struct {
	Game *models.GameState
}

type GetGameInput struct {
	GameID string
}

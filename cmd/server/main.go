package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/castaway/internal/common/clock"
	"github.com/KirkDiggler/castaway/internal/common/uuid"
	"github.com/KirkDiggler/castaway/internal/config"
	"github.com/KirkDiggler/castaway/internal/dice"
	"github.com/KirkDiggler/castaway/internal/engine"
	"github.com/KirkDiggler/castaway/internal/generator"
	"github.com/KirkDiggler/castaway/internal/handlers/api"
	"github.com/KirkDiggler/castaway/internal/repositories/game"
	gameService "github.com/KirkDiggler/castaway/internal/services/game"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if cfg.SitePassword == "" {
		log.Println("SITE_PASSWORD is not set; new games cannot be started")
	}
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize game repository
	var gameRepo game.Repository
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		gameRepo, err = game.NewRedis(&game.Config{
			RedisClient: redisClient,
			TTL:         cfg.GameTTL,
		})
		if err != nil {
			log.Fatalf("Failed to create game repository: %v", err)
		}
		log.Printf("Storing games in Redis at %s", cfg.RedisAddr)
	} else {
		gameRepo = game.NewMemory()
		log.Println("REDIS_ADDR is not set; games are kept in memory")
	}

	// Initialize generator
	backend, closeBackend, err := newBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create generator backend: %v", err)
	}
	defer closeBackend()

	gen, err := generator.New(&generator.Config{
		Backend:  backend,
		Provider: cfg.Provider,
		Timeout:  cfg.Timeout,
		MaxTries: cfg.MaxTries,
	})
	if err != nil {
		log.Fatalf("Failed to create generator: %v", err)
	}

	// Initialize engine
	diceRoller := dice.New(&dice.Config{Seed: cfg.RandomSeed})

	policy, err := engine.PolicyByName(cfg.EliminationPolicy)
	if err != nil {
		log.Fatalf("Failed to select elimination policy %q: %v", cfg.EliminationPolicy, err)
	}

	gameEngine, err := engine.New(&engine.Config{
		Roller: diceRoller,
		Policy: policy,
	})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		HistoryWindow: cfg.HistoryLimit,
		GameRepo:      gameRepo,
		Engine:        gameEngine,
		Generator:     gen,
		DiceRoller:    diceRoller,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New("game"),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize HTTP server
	server, err := api.New(&api.Config{
		Addr:         cfg.Addr(),
		SitePassword: cfg.SitePassword,
		GameService:  gameSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Printf("Error stopping server: %v", err)
	}

	log.Println("Server has been shut down")
}

// newBackend builds the provider selected in the config
func newBackend(ctx context.Context, cfg *config.Config) (generator.Backend, func(), error) {
	switch cfg.Provider {
	case generator.ProviderOpenAI:
		backend, err := generator.NewOpenAI(&generator.OpenAIConfig{
			APIKey:      cfg.OpenAIKey,
			Model:       cfg.OpenAIModel,
			Temperature: cfg.Temperature,
			MaxTokens:   int64(cfg.MaxTokens),
			BaseURL:     cfg.OpenAIURL,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Narrating with OpenAI model %s", cfg.OpenAIModel)
		return backend, func() {}, nil

	case generator.ProviderGemini:
		backend, err := generator.NewGemini(ctx, &generator.GeminiConfig{
			APIKey:      cfg.GeminiKey,
			Model:       cfg.GeminiModel,
			Temperature: float32(cfg.Temperature),
			MaxTokens:   int32(cfg.MaxTokens),
		})
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Narrating with Gemini model %s", cfg.GeminiModel)
		return backend, func() {
			if err := backend.Close(); err != nil {
				log.Printf("Error closing Gemini client: %v", err)
			}
		}, nil
	}
	return nil, nil, generator.ErrUnknownProvider
}

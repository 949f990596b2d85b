package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/KirkDiggler/castaway/internal/common/clock"
	"github.com/KirkDiggler/castaway/internal/common/keylock"
	"github.com/KirkDiggler/castaway/internal/common/uuid"
	"github.com/KirkDiggler/castaway/internal/dice"
	"github.com/KirkDiggler/castaway/internal/directive"
	"github.com/KirkDiggler/castaway/internal/engine"
	"github.com/KirkDiggler/castaway/internal/generator"
	"github.com/KirkDiggler/castaway/internal/models"
	gameRepo "github.com/KirkDiggler/castaway/internal/repositories/game"
)

type service struct {
	gameRepo      gameRepo.Repository
	engine        *engine.Engine
	generator     generator.Generator
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.Generator
	locker        *keylock.Locker
	historyWindow int
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}
	if cfg.Generator == nil {
		return nil, ErrNilGenerator
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	locker := cfg.Locker
	if locker == nil {
		locker = keylock.New()
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		engine:        cfg.Engine,
		generator:     cfg.Generator,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		locker:        locker,
		historyWindow: cfg.HistoryWindow,
	}, nil
}

// StartGame creates a new season: a location, two tribes with their colours
// and an 18 member roster with the player on the first tribe.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrMissingPlayerName
	}

	playerName := strings.TrimSpace(input.PlayerName)
	if playerName == "" {
		return nil, ErrMissingPlayerName
	}

	location := dice.Pick(s.diceRoller, models.Locations)
	tribe1Name, tribe2Name := dice.PickTwo(s.diceRoller, models.TribeNames)
	tribe1Color, tribe2Color := dice.PickTwo(s.diceRoller, models.TribeColorPool)

	// an all-star sharing the player's name would make the roster ambiguous
	pool := slices.DeleteFunc(slices.Clone(models.AllStars), func(star string) bool {
		return strings.EqualFold(star, playerName)
	})
	castaways := dice.Shuffle(s.diceRoller, pool)[:models.RosterSize-1]

	tribe1 := append([]string{playerName}, castaways[:models.TribeSize-1]...)
	tribe2 := slices.Clone(castaways[models.TribeSize-1:])

	now := s.clock.Now()
	game := &models.GameState{
		ID:            s.uuidGenerator.NewID(),
		PlayerName:    playerName,
		Location:      location,
		PlayerTribe:   tribe1Name,
		OpposingTribe: tribe2Name,
		TribeColors: models.TribeColors{
			Tribe1Name:  tribe1Name,
			Tribe1Color: tribe1Color,
			Tribe2Name:  tribe2Name,
			Tribe2Color: tribe2Color,
		},
		Tribes: models.Tribes{
			Tribe1: tribe1,
			Tribe2: tribe2,
		},
		StartingTribes: models.Tribes{
			Tribe1: slices.Clone(tribe1),
			Tribe2: slices.Clone(tribe2),
		},
		Eliminated: []string{},
		Jury:       []string{},
		Day:        1,
		Stats:      models.DefaultStats(),
		History:    []models.Message{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	log.Printf("New game %s: %s on %s, %s vs %s", game.ID, playerName, location, tribe1Name, tribe2Name)

	return &StartGameOutput{Game: game}, nil
}

// AdvanceScene plays one slot. Turns for the same game are serialized; the
// outcome is planned first and only committed once the narrative is in hand.
func (s *service) AdvanceScene(ctx context.Context, input *AdvanceSceneInput) (*AdvanceSceneOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrMissingGameID
	}

	unlock := s.locker.Lock(input.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	turn, err := s.engine.Plan(game)
	if err != nil {
		return nil, fmt.Errorf("failed to plan scene: %w", err)
	}

	log.Printf("Day %d | Scene %d | Type: %s", turn.Day, turn.SceneIndex, turn.Slot.Type)
	log.Printf("Description: %s", turn.Slot.Description)

	userInput := strings.TrimSpace(input.UserInput)
	prompt := userInput
	if prompt == "" {
		prompt = directive.GMNote(turn.Slot)
	}

	sceneDirective := directive.Build(game, turn)
	generated, err := s.generator.Generate(ctx, &generator.GenerateInput{
		System:    directive.System(game, turn, sceneDirective),
		History:   s.window(game.History),
		UserInput: prompt,
	})
	if err != nil {
		log.Printf("Scene generation failed for game %s: %v", game.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	reply := generator.ParseReply(generated.Text)
	if reply.HasSceneType() && reply.SceneType != turn.Slot.Type {
		log.Printf("Game %s: reply claimed %s, schedule requires %s", game.ID, reply.SceneType, turn.Slot.Type)
	}

	result, err := s.engine.Commit(game, turn, &engine.CommitInput{
		UserInput:   userInput,
		Narrative:   reply.Raw,
		StatUpdates: reply.StatUpdates,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to commit scene: %w", err)
	}
	game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &AdvanceSceneOutput{
		Game:             game,
		Message:          reply.Message,
		SceneType:        turn.Slot.Type,
		SceneDescription: turn.Slot.Description,
		RolledOver:       result.RolledOver,
		Merged:           result.Merged,
	}, nil
}

// GetGame returns the stored game
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrMissingGameID
	}

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{Game: game}, nil
}

func (s *service) loadGame(ctx context.Context, gameID string) (*models.GameState, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

// window returns the most recent messages the generator should see
func (s *service) window(history []models.Message) []models.Message {
	if s.historyWindow <= 0 || len(history) <= s.historyWindow {
		return history
	}
	return history[len(history)-s.historyWindow:]
}

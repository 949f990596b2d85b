// Package config loads the server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ConfigError is a custom error type for configuration errors
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMissingOpenAIKey   ConfigError = "OPENAI_API_KEY is required for the openai provider"
	ErrMissingGeminiKey   ConfigError = "GEMINI_API_KEY is required for the gemini provider"
	ErrUnknownProvider    ConfigError = "GENERATOR_PROVIDER must be openai or gemini"
	ErrNegativeWindow     ConfigError = "HISTORY_WINDOW cannot be negative"
	ErrNonPositiveTimeout ConfigError = "GENERATOR_TIMEOUT must be positive"
)

// Config holds every server setting
type Config struct {
	Port         string `env:"PORT" envDefault:"3000"`
	SitePassword string `env:"SITE_PASSWORD"`
	GinMode      string `env:"GIN_MODE" envDefault:"release"`

	// Generator
	Provider     string        `env:"GENERATOR_PROVIDER" envDefault:"openai"`
	OpenAIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIModel  string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIURL    string        `env:"OPENAI_BASE_URL"`
	GeminiKey    string        `env:"GEMINI_API_KEY"`
	GeminiModel  string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Timeout      time.Duration `env:"GENERATOR_TIMEOUT" envDefault:"30s"`
	Temperature  float64       `env:"GENERATOR_TEMPERATURE" envDefault:"0.85"`
	MaxTokens    int           `env:"GENERATOR_MAX_TOKENS" envDefault:"600"`
	MaxTries     uint          `env:"GENERATOR_MAX_TRIES" envDefault:"2"`
	HistoryLimit int           `env:"HISTORY_WINDOW" envDefault:"40"`

	// Storage; an empty address keeps games in memory
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	GameTTL       time.Duration `env:"GAME_TTL" envDefault:"0s"`

	// Game rules
	EliminationPolicy string `env:"ELIMINATION_POLICY" envDefault:"uniform"`
	RandomSeed        int64  `env:"RANDOM_SEED" envDefault:"0"`
}

// Load reads an optional .env file and then parses the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// FromMap parses settings from an explicit variable set
func FromMap(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports settings the server cannot start with
func (c *Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAIKey == "" {
			return ErrMissingOpenAIKey
		}
	case "gemini":
		if c.GeminiKey == "" {
			return ErrMissingGeminiKey
		}
	default:
		return ErrUnknownProvider
	}

	if c.HistoryLimit < 0 {
		return ErrNegativeWindow
	}
	if c.Timeout <= 0 {
		return ErrNonPositiveTimeout
	}
	return nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

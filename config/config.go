// Package config holds the startup configuration. Values come from the
// environment (optionally a .env file) and fall back to defaults; command
// line flags override them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Defaults.
const (
	DefaultGridSize     = 30
	DefaultTickMS       = 100
	DefaultBackend      = "file"
	DefaultRedrawPerSec = 30

	MinGridSize = 2
	MaxGridSize = 200
)

// Config is the game configuration.
type Config struct {
	GridSize     int
	TickInterval time.Duration
	Backend      string
	BackendArgs  string
	HighScoreKey string
	RedrawRate   rate.Limit
	LogLevel     string
	LogFile      string
}

// Load reads .env files when present and builds the config from the
// environment.
func Load(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil {
		log.WithError(err).Debug(".env file not found or could not be loaded")
	}

	return Config{
		GridSize:     getEnvInt("SNAKE_GRID_SIZE", DefaultGridSize),
		TickInterval: time.Duration(getEnvInt("SNAKE_TICK_MS", DefaultTickMS)) * time.Millisecond,
		Backend:      getEnvString("SNAKE_BACKEND", DefaultBackend),
		BackendArgs:  getEnvString("SNAKE_BACKEND_ARGS", ""),
		HighScoreKey: getEnvString("SNAKE_HIGHSCORE_KEY", "highScore"),
		RedrawRate:   rate.Limit(getEnvInt("SNAKE_REDRAW_RPS", DefaultRedrawPerSec)),
		LogLevel:     getEnvString("SNAKE_LOG_LEVEL", "info"),
		LogFile:      getEnvString("SNAKE_LOG_FILE", ""),
	}
}

// Validate checks the config describes a playable game.
func (c Config) Validate() error {
	if c.GridSize < MinGridSize || c.GridSize > MaxGridSize {
		return fmt.Errorf("config: grid size must be between %d and %d, got %d", MinGridSize, MaxGridSize, c.GridSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("config: tick interval must be positive, got %s", c.TickInterval)
	}
	if c.RedrawRate <= 0 {
		return fmt.Errorf("config: redraw rate must be positive, got %v", c.RedrawRate)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %v", err)
	}
	return nil
}

func getEnvString(varName string, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

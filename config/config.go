package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	SearchDepth     int
	HumanFirst      bool
	LogLevel        zerolog.Level
	LogFile         string // Used while the terminal UI owns the screen
	ExperimentGames int
	ExperimentDir   string
	Seed            uint64
}

// Load reads an optional .env file from the working directory and then the
// environment. Unset or invalid values fall back to their defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}
	return FromEnv()
}

// FromEnv reads the configuration from the environment only.
func FromEnv() Config {
	cfg := Config{
		SearchDepth:     GetEnvAsInt("CONNECT4_DEPTH", 5),
		HumanFirst:      GetEnvAsBool("CONNECT4_HUMAN_FIRST", false),
		LogLevel:        GetEnvAsLevel("CONNECT4_LOG_LEVEL", zerolog.InfoLevel),
		LogFile:         GetEnv("CONNECT4_LOG_FILE", "connect4.log"),
		ExperimentGames: GetEnvAsInt("CONNECT4_EXPERIMENT_GAMES", 10),
		ExperimentDir:   GetEnv("CONNECT4_EXPERIMENT_DIR", "experiments"),
		Seed:            GetEnvAsUint64("CONNECT4_SEED", 1),
	}
	if cfg.SearchDepth < 1 {
		log.Warn().Msgf("search depth must be positive, got %d, using default: 5", cfg.SearchDepth)
		cfg.SearchDepth = 5
	}
	if cfg.ExperimentGames < 1 {
		log.Warn().Msgf("experiment games must be positive, got %d, using default: 10", cfg.ExperimentGames)
		cfg.ExperimentGames = 10
	}
	return cfg
}

func GetEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("invalid unsigned value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsLevel(key string, defaultValue zerolog.Level) zerolog.Level {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := zerolog.ParseLevel(strings.ToLower(valueStr))
	if err != nil {
		log.Warn().Msgf("invalid log level for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

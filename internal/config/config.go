// Package config reads runtime settings from the environment.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment win.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds every tunable of the server and terminal hosts.
type Config struct {
	Port           string
	LogLevel       zerolog.Level
	DBPath         string
	WordsFile      string
	Classifier     string // "guard" | "table"
	TokenSecret    string
	TokenTTL       time.Duration
	DailySalt      string
	ClientOrigin   string
	RateLimitRPS   int
	RateLimitBurst int
	SessionTTL     time.Duration
	RequestTimeout time.Duration
}

const devTokenSecret = "dev_secret_change_me"

// Load reads .env (if any) and the environment, falling back to defaults
// for unset or malformed values.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	c := Config{
		Port:           getEnv("PORT", "5175"),
		LogLevel:       getLevel("LOG_LEVEL", zerolog.InfoLevel),
		DBPath:         getEnv("DB_PATH", "./data/games.db"),
		WordsFile:      os.Getenv("WORDS_FILE"),
		Classifier:     getEnv("CLASSIFIER", "guard"),
		TokenSecret:    getEnv("TOKEN_SECRET", devTokenSecret),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 24*time.Hour),
		DailySalt:      getEnv("DAILY_SALT", "local_dev_salt"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
		SessionTTL:     getEnvDuration("SESSION_TTL", 2*time.Hour),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
	}
	if c.TokenSecret == devTokenSecret {
		log.Warn().Msg("TOKEN_SECRET not set; using development secret")
	}
	return c
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt reads a positive int or returns the fallback.
func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("invalid int, using default")
		return def
	}
	return n
}

// getEnvDuration reads a time.Duration or returns the fallback.
func getEnvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn().Str("key", k).Str("value", v).Dur("default", def).Msg("invalid duration, using default")
		return def
	}
	return d
}

func getLevel(k string, def zerolog.Level) zerolog.Level {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	lvl, err := zerolog.ParseLevel(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("invalid log level, using default")
		return def
	}
	return lvl
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-foh/models"
	"restaurant-foh/statemachine"
)

// Config is read once at startup and passed to whoever needs it.
type Config struct {
	Port              string
	GinMode           string
	DatabasePath      string
	JWTSecret         []byte
	TokenTTL          time.Duration
	Policy            statemachine.Policy
	StrictTransitions bool
	SeedPath          string
	LogLevel          zerolog.Level
}

// Load reads the environment, after merging a .env file when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		DatabasePath: getEnv("DATABASE_PATH", "restaurant_foh.db"),
		// falls back to a development secret when unset
		JWTSecret: []byte(getEnv("JWT_SECRET", "restaurant_foh_dev_secret")),
		SeedPath:  os.Getenv("SEED_PATH"),
	}

	var err error
	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "24h")); err != nil {
		return cfg, fmt.Errorf("TOKEN_TTL: %w", err)
	}

	switch p := statemachine.RemovePolicy(getEnv("REMOVE_POLICY", string(statemachine.RemoveDecrement))); p {
	case statemachine.RemoveDecrement, statemachine.RemoveLine:
		cfg.Policy.Remove = p
	default:
		return cfg, fmt.Errorf("REMOVE_POLICY: unknown policy %q", p)
	}
	if cfg.Policy.RequireTable, err = strconv.ParseBool(getEnv("REQUIRE_TABLE", "true")); err != nil {
		return cfg, fmt.Errorf("REQUIRE_TABLE: %w", err)
	}
	if cfg.StrictTransitions, err = strconv.ParseBool(getEnv("STRICT_TRANSITIONS", "false")); err != nil {
		return cfg, fmt.Errorf("STRICT_TRANSITIONS: %w", err)
	}
	if cfg.LogLevel, err = zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return cfg, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB opens the sqlite database and migrates the persisted models.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Document{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

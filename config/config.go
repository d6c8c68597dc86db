package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// HTTP configuration
	Port string

	// Storage configuration
	DatabasePath string // JSON file path for the file store
	DatabaseURL  string // when set, the postgres store is used instead

	// Domain configuration
	StartingBalance int64 // coin balance granted to every new user

	// Environment
	Environment string // "development", "production" or "test"
	LogLevel    string
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		Port:         os.Getenv("PORT"),
		DatabasePath: os.Getenv("DATABASE_PATH"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),

		// Domain settings with defaults
		StartingBalance: 100,

		Environment: os.Getenv("ENVIRONMENT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	// Defaults match the original deployment: port 4000, db.json next to the binary
	if config.Port == "" {
		config.Port = "4000"
	}
	if config.DatabasePath == "" {
		config.DatabasePath = "db.json"
	}

	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		parsedBalance, err := strconv.ParseInt(balance, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid STARTING_BALANCE %q: %w", balance, err)
		}
		if parsedBalance < 0 {
			return nil, fmt.Errorf("STARTING_BALANCE must not be negative, got %d", parsedBalance)
		}
		config.StartingBalance = parsedBalance
	}

	if config.Environment == "" {
		config.Environment = "development"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	return config, nil
}

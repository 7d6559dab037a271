// Package config loads the loader settings from environment variables
// (populated from the .env file in main.go when present).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	ElasticURL   string
	ElasticIndex string
	ElasticType  string
	HTTPTimeout  time.Duration

	MongoConnString string
	MongoDatabase   string
	MongoCollection string

	SQLConnString string
	SQLTable      string

	SampleLimit   int
	ProgressEvery int

	LogFile  string
	LogLevel string
}

// LoadConfig reads the environment, applying defaults for unset values.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ElasticURL:      getEnv("FINESS_ES_URL", "http://localhost:9200"),
		ElasticIndex:    getEnv("FINESS_ES_INDEX", "finess"),
		ElasticType:     getEnv("FINESS_ES_TYPE", "et"),
		MongoConnString: os.Getenv("MONGO_CONNECTION_STRING"),
		MongoDatabase:   getEnv("FINESS_MONGO_DATABASE", "finess"),
		MongoCollection: getEnv("FINESS_MONGO_COLLECTION", "et"),
		SQLConnString:   os.Getenv("SQL_CONNECTION_STRING"),
		SQLTable:        getEnv("FINESS_SQL_TABLE", "finess_et"),
		LogFile:         os.Getenv("LOG_FILE"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.HTTPTimeout, err = time.ParseDuration(getEnv("FINESS_HTTP_TIMEOUT", "30s")); err != nil {
		return nil, fmt.Errorf("invalid FINESS_HTTP_TIMEOUT: %w", err)
	}
	if cfg.SampleLimit, err = getEnvInt("FINESS_SAMPLE_LIMIT", 10); err != nil {
		return nil, err
	}
	if cfg.ProgressEvery, err = getEnvInt("FINESS_PROGRESS_EVERY", 10000); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequireMongo checks the settings the Mongo target needs.
func (c *Config) RequireMongo() error {
	if c.MongoConnString == "" {
		return errors.New("MONGO_CONNECTION_STRING environment variable not set")
	}
	return nil
}

// RequireSQL checks the settings the SQL Server target needs.
func (c *Config) RequireSQL() error {
	if c.SQLConnString == "" {
		return errors.New("SQL_CONNECTION_STRING environment variable not set")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q is not a positive integer", key, v)
	}
	return n, nil
}

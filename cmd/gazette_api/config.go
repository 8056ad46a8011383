package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/fileurl"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/query"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/storage/pg"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/suggestion"
	"github.com/DjordjeVuckovic/gazette-hunter/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type GazetteAPIConfig struct {
	Search              es.ClientConfig
	GazetteFields       query.GazetteFields
	ThemedExcerptFields query.ThemedExcerptFields
	Files               fileurl.Config
	ThemesFile          string
	CitiesFile          string
	// nil when the relational store is not configured
	Postgres   *pg.PoolConfig
	Suggestion suggestion.Config
}

// LoadDotEnv must run before anything reads the environment, logger and server config included.
func (as *AppConfig) LoadDotEnv() {
	err := env.LoadDotEnv(as.ENV, "cmd/gazette_api/.env")
	if err != nil {
		slog.Info("Failed to load .env file, continuing with existing environment variables", "error", err)
	}
}

func (as *AppConfig) Load() (*GazetteAPIConfig, error) {
	searchCfg, err := es.LoadEnv()
	if err != nil {
		return nil, err
	}

	themedFields, err := query.LoadThemedExcerptFieldsEnv()
	if err != nil {
		return nil, err
	}

	pgCfg, err := pg.LoadEnv()
	if err != nil {
		return nil, err
	}

	return &GazetteAPIConfig{
		Search:              searchCfg,
		GazetteFields:       query.LoadGazetteFieldsEnv(),
		ThemedExcerptFields: themedFields,
		Files:               fileurl.LoadEnv(),
		ThemesFile:          env.String("THEMES_CONFIG_FILE", "config/themes_config.json"),
		CitiesFile:          env.String("CITY_DATABASE_CSV", "config/territories.csv"),
		Postgres:            pgCfg,
		Suggestion:          suggestion.LoadEnv(),
	}, nil
}

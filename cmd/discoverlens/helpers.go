package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/mriviere/discoverlens/internal/classifier"
	"github.com/mriviere/discoverlens/internal/config"
	"github.com/mriviere/discoverlens/internal/embedding"
	"github.com/mriviere/discoverlens/internal/model"
	"github.com/mriviere/discoverlens/internal/storage"
)

// loadCategorySet loads the configured category file, falling back to the
// built-in set when none is configured.
func loadCategorySet() ([]model.Category, error) {
	path := viper.GetString("categories.file")
	if path == "" {
		return config.DefaultCategories(), nil
	}
	return config.LoadCategories(config.ExpandPath(path))
}

// buildProvider constructs the embedding provider from configuration.
// Returns nil in keyword-only mode: the classifier treats that as an
// explicit opt-out of semantic scoring.
func buildProvider(keywordOnly bool) (embedding.Provider, error) {
	if keywordOnly {
		return nil, nil
	}

	cfg := embedding.CohereConfig{
		APIKey:     viper.GetString("embedding.api_key"),
		Model:      viper.GetString("embedding.model"),
		MaxRetries: viper.GetInt("embedding.max_retries"),
		RetryDelay: viper.GetDuration("embedding.retry_delay"),
		Timeout:    viper.GetDuration("embedding.timeout"),
	}
	if cfg.APIKey == "" {
		// DISCOVERLENS_COHERE_API_KEY via viper's env mapping.
		cfg.APIKey = viper.GetString("cohere_api_key")
	}

	provider, err := embedding.NewCohereProvider(cfg, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to configure embedding provider: %w", err)
	}
	return provider, nil
}

// buildClassifier wires categories and provider into a classifier.
func buildClassifier(keywordOnly bool) (*classifier.Classifier, error) {
	categories, err := loadCategorySet()
	if err != nil {
		return nil, err
	}

	provider, err := buildProvider(keywordOnly)
	if err != nil {
		return nil, err
	}

	return classifier.New(categories, provider, classifier.Config{KeywordOnly: keywordOnly}, slog.Default())
}

// initStorage opens the run database with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/discoverlens/discoverlens.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// embeddingModelName reports the model recorded with a stored run.
func embeddingModelName(keywordOnly bool) string {
	if keywordOnly {
		return "keyword-only"
	}
	if m := viper.GetString("embedding.model"); m != "" {
		return m
	}
	return embedding.DefaultCohereModel
}

// formatElapsed renders a duration for log output.
func formatElapsed(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

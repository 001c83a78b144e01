package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/newslens/internal/config"
	"github.com/Veraticus/newslens/internal/detector"
	"github.com/Veraticus/newslens/internal/engine"
	"github.com/Veraticus/newslens/internal/model"
	"github.com/Veraticus/newslens/internal/zeroshot"
	"github.com/spf13/viper"
)

// backend bundles the analysis engine with the resources it owns.
type backend struct {
	cfg      *config.Config
	engine   *engine.Engine
	pipeline *zeroshot.Pipeline
}

func newBackend() (*backend, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.Default()

	pipeline, err := zeroshot.NewPipeline(zeroshotConfig(cfg.Model), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create classification pipeline: %w", err)
	}

	info := model.NewModelInfo(pipeline.Provider(), pipeline.ModelID())
	eng := engine.New(
		detector.NewPolarityDetector(pipeline),
		detector.NewBiasDetector(pipeline),
		info,
		logger,
	)

	return &backend{cfg: cfg, engine: eng, pipeline: pipeline}, nil
}

func (b *backend) Close() {
	if err := b.pipeline.Close(); err != nil {
		slog.Warn("Failed to close classification pipeline", "error", err)
	}
}

func zeroshotConfig(m config.ModelConfig) zeroshot.Config {
	return zeroshot.Config{
		StaticScores:  m.StaticScores,
		Provider:      m.Provider,
		APIKey:        m.APIKey,
		Model:         m.ID,
		BaseURL:       m.BaseURL,
		Timeout:       m.Timeout,
		RetryDelay:    m.RetryDelay,
		CacheTTL:      m.CacheTTL,
		Temperature:   m.Temperature,
		MaxRetries:    m.MaxRetries,
		RateLimit:     m.RateLimit,
		MaxTokens:     m.MaxTokens,
		MaxInputChars: m.MaxInputChars,
	}
}

package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/ai"
	"github.com/spigell/resume-screener/internal/ai/gemini"
	"github.com/spigell/resume-screener/internal/document"
	"github.com/spigell/resume-screener/internal/extract"
	"github.com/spigell/resume-screener/internal/parser"
	"github.com/spigell/resume-screener/internal/secrets"
	"github.com/spigell/resume-screener/internal/similarity"
)

const geminiKeyEnv = "GEMINI_API_KEY"

func newParser(config *Config, logger *zap.Logger) *parser.Parser {
	return parser.New(
		extract.New(config.Extraction),
		document.NewRegistry(document.WithLogger(logger)),
		parser.WithWorkers(config.Workers),
		parser.WithLogger(logger),
	)
}

// embedderFactory returns nil for the token overlap provider so that
// similarity.Resolve goes straight to Jaccard.
func embedderFactory(cfg *SimilarityConfig, logger *zap.Logger) ai.Factory {
	if cfg == nil || cfg.Provider != similarity.ProviderGemini {
		return nil
	}

	return func(ctx context.Context) (ai.Embedder, error) {
		apiKey, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: cfg.Gemini.APIKeyFile,
			Env:  geminiKeyEnv,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w (set similarity.gemini.api-key-file or GEMINI_API_KEY_FILE)", ai.ErrUnavailable, err)
		}

		gcfg := cfg.Gemini
		gcfg.APIKey = apiKey

		embedder, err := gemini.NewEmbedder(ctx, gcfg, logger)
		if err != nil {
			return nil, err
		}
		return embedder, nil
	}
}

// Package similarity scores how close a candidate's skills are to the skills
// a job requires.
package similarity

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/ai"
	"github.com/spigell/resume-screener/internal/logger"
)

const (
	ProviderJaccard = "jaccard"
	ProviderGemini  = "gemini"
)

// Scorer returns a similarity in [0,1] and the derived score in [0,100].
// Empty skill lists score 0 without error.
type Scorer interface {
	Score(ctx context.Context, candidate, required []string) (similarity float64, score float64, err error)
	Name() string
}

// Resolve picks the scoring tier once. A nil factory or one that fails
// selects the Jaccard fallback.
func Resolve(ctx context.Context, factory ai.Factory, log *zap.Logger) Scorer {
	if log == nil {
		log = zap.NewNop()
	}

	if factory != nil {
		embedder, err := factory(ctx)
		if err == nil && embedder != nil {
			log.Info("similarity tier selected", logger.CommonFields(ProviderGemini, embedder.Model())...)
			return NewEmbedding(embedder)
		}
		log.Warn("embedding model unavailable, falling back to token overlap", zap.Error(err))
	}

	log.Info("similarity tier selected", logger.CommonFields(ProviderJaccard, "")...)
	return Jaccard{}
}

// Phrase joins the non-empty skills with single spaces.
func Phrase(skills []string) string {
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// ScoreOf converts a similarity to a score rounded to two decimals.
func ScoreOf(similarity float64) float64 {
	return math.Round(similarity*100*100) / 100
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

package similarity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/spigell/resume-screener/internal/ai"
)

// Embedding scores the cosine similarity of the embedded skill phrases.
// Phrase vectors are memoised, so the required phrase is embedded once per
// scorer.
type Embedding struct {
	embedder ai.Embedder

	mu    sync.Mutex
	cache map[string][]float64
}

func NewEmbedding(embedder ai.Embedder) *Embedding {
	return &Embedding{embedder: embedder, cache: make(map[string][]float64)}
}

func (e *Embedding) Name() string { return ProviderGemini }

func (e *Embedding) Score(ctx context.Context, candidate, required []string) (float64, float64, error) {
	cand, req := Phrase(candidate), Phrase(required)
	if cand == "" || req == "" {
		return 0, 0, nil
	}

	vectors, err := e.vectors(ctx, cand, req)
	if err != nil {
		return 0, 0, err
	}

	sim := clamp01(Cosine(vectors[0], vectors[1]))
	return sim, ScoreOf(sim), nil
}

func (e *Embedding) vectors(ctx context.Context, phrases ...string) ([][]float64, error) {
	out := make([][]float64, len(phrases))
	var missing []string

	e.mu.Lock()
	for i, p := range phrases {
		if v, ok := e.cache[p]; ok {
			out[i] = v
		} else if !slices.Contains(missing, p) {
			missing = append(missing, p)
		}
	}
	e.mu.Unlock()

	if len(missing) > 0 {
		embedded, err := e.embedder.EmbedStrings(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("embed skill phrases: %w", err)
		}
		if len(embedded) != len(missing) {
			return nil, errors.New("embedder returned a vector count different from the input count")
		}

		e.mu.Lock()
		for i, p := range missing {
			e.cache[p] = embedded[i]
		}
		for i, p := range phrases {
			out[i] = e.cache[p]
		}
		e.mu.Unlock()
	}

	return out, nil
}

// Cosine returns the cosine similarity of a and b, 0 for zero or mismatched
// vectors.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

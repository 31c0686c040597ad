package similarity

import (
	"context"
	"strings"
)

// Jaccard compares lower-cased, trimmed skill sets by intersection over union.
type Jaccard struct{}

func (Jaccard) Name() string { return ProviderJaccard }

func (Jaccard) Score(_ context.Context, candidate, required []string) (float64, float64, error) {
	if Phrase(candidate) == "" || Phrase(required) == "" {
		return 0, 0, nil
	}
	sim := JaccardIndex(candidate, required)
	return sim, ScoreOf(sim), nil
}

// JaccardIndex returns |A∩B| / |A∪B|, or 0 when either set is empty.
func JaccardIndex(a, b []string) float64 {
	setA, setB := tokenSet(a), tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inter := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func tokenSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		if t := strings.ToLower(strings.TrimSpace(item)); t != "" {
			out[t] = struct{}{}
		}
	}
	return out
}

// Package ai defines the embedding capability used for semantic scoring.
package ai

import (
	"context"
	"errors"
)

// ErrUnavailable reports that no embedding model can be used.
var ErrUnavailable = errors.New("embedding model unavailable")

// Embedder maps phrases to fixed-length vectors, one per input, in order.
type Embedder interface {
	EmbedStrings(ctx context.Context, texts []string) ([][]float64, error)
	Model() string
}

// Factory constructs an Embedder. It is called at most once per ranking run.
type Factory func(ctx context.Context) (Embedder, error)

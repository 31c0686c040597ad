package filtering

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/spigell/resume-screener/internal/ranking"
)

// Candidates is the list of scored candidates passed between steps.
type Candidates struct {
	Items []ranking.CandidateMatch
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

// Exclude drops every candidate for which drop returns true and returns the
// resume paths of the dropped ones. The order of the rest is preserved.
func (c *Candidates) Exclude(drop func(ranking.CandidateMatch) bool) []string {
	var excluded []string
	kept := make([]ranking.CandidateMatch, 0, len(c.Items))
	for _, m := range c.Items {
		if drop(m) {
			excluded = append(excluded, m.ResumePath)
			continue
		}
		kept = append(kept, m)
	}
	c.Items = kept
	return excluded
}

// ExcludedCandidates is the on-disk list of already reviewed resumes.
type ExcludedCandidates struct {
	Items []*ExcludedCandidate
}

type ExcludedCandidate struct {
	ResumePath string
	Name       string
	MatchScore float64
	ExcludedAt time.Time
}

// ToExcluded converts the candidates into exclude file entries.
func (c *Candidates) ToExcluded() *ExcludedCandidates {
	excluded := &ExcludedCandidates{}
	for _, m := range c.Items {
		excluded.Items = append(excluded.Items, &ExcludedCandidate{
			ResumePath: m.ResumePath,
			Name:       m.Name,
			MatchScore: m.MatchScore,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

// LoadExcluded reads an exclude file. A missing or empty file yields an
// empty list.
func LoadExcluded(path string) (*ExcludedCandidates, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ExcludedCandidates{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedCandidates{}, nil
	}

	var excluded ExcludedCandidates
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedCandidates) Append(s *ExcludedCandidates) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedCandidates) Paths() map[string]struct{} {
	paths := make(map[string]struct{}, len(e.Items))
	for _, item := range e.Items {
		paths[item.ResumePath] = struct{}{}
	}
	return paths
}

func (e *ExcludedCandidates) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

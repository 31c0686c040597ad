package skillgap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate []string
		required  []string
		matched   []string
		missing   []string
		pct       float64
	}{
		{
			name:      "partial",
			candidate: []string{"Python", " sql ", "docker"},
			required:  []string{"python", "sql", "aws"},
			matched:   []string{"python", "sql"},
			missing:   []string{"aws"},
			pct:       66.67,
		},
		{
			name:      "nothing required",
			candidate: []string{"python"},
			required:  nil,
			matched:   []string{},
			missing:   []string{},
			pct:       0,
		},
		{
			name:      "no candidate skills",
			candidate: nil,
			required:  []string{"aws", "AWS", ""},
			matched:   []string{},
			missing:   []string{"aws"},
			pct:       0,
		},
		{
			name:      "full",
			candidate: []string{"aws", "go", "sql"},
			required:  []string{"sql", "go"},
			matched:   []string{"go", "sql"},
			missing:   []string{},
			pct:       100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Generate("Jane", tt.candidate, tt.required)
			assert.Equal(t, "Jane", r.CandidateName)
			assert.Equal(t, tt.matched, r.MatchedSkills)
			assert.Equal(t, tt.missing, r.MissingSkills)
			assert.Equal(t, tt.pct, r.MatchPercentage)
		})
	}
}

func TestGenerateProperties(t *testing.T) {
	t.Parallel()

	collections := [][]string{
		nil,
		{"python"},
		{"python", "sql", "python"},
		{"Go", "go", "rust", "c++"},
		{"aws", "gcp", "azure", "docker", "kubernetes"},
	}

	for _, a := range collections {
		self := Generate("", a, a)
		assert.Equal(t, set(a), set(self.MatchedSkills), "matched(A,A) is dedup(A)")
		assert.True(t, isSorted(self.MatchedSkills))
		assert.Empty(t, self.MissingSkills)

		for _, b := range collections {
			r := Generate("", a, b)
			assert.GreaterOrEqual(t, r.MatchPercentage, 0.0)
			assert.LessOrEqual(t, r.MatchPercentage, 100.0)
			if len(b) == 0 {
				assert.Equal(t, 0.0, r.MatchPercentage)
			}
			assert.Equal(t, len(set(b)), len(r.MatchedSkills)+len(r.MissingSkills))
		}
	}
}

func isSorted(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-screener/internal/parser"
	"github.com/spigell/resume-screener/internal/similarity"
)

var fixedNow = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func newTestRanker(scorer similarity.Scorer, log *zap.Logger) *Ranker {
	r := New(scorer, log)
	r.now = func() time.Time { return fixedNow }
	return r
}

type failingScorer struct {
	failFor string
}

func (f failingScorer) Name() string { return "failing" }

func (f failingScorer) Score(ctx context.Context, candidate, required []string) (float64, float64, error) {
	for _, s := range candidate {
		if s == f.failFor {
			return 0.9, 90, errors.New("embedding request failed")
		}
	}
	return similarity.Jaccard{}.Score(ctx, candidate, required)
}

func TestParseRequiredYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		phrases []string
		expect  int
	}{
		{name: "range takes minimum", phrases: []string{"3-5 years"}, expect: 3},
		{name: "plus", phrases: []string{"10+ Years"}, expect: 10},
		{name: "max over phrases", phrases: []string{"2+ years", "4 to 6 years"}, expect: 6},
		{name: "single year", phrases: []string{"1 year"}, expect: 1},
		{name: "none", phrases: nil, expect: 0},
		{name: "unparseable", phrases: []string{"lots of experience"}, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ParseRequiredYears(tt.phrases))
		})
	}
}

func TestEstimateCandidateYears(t *testing.T) {
	t.Parallel()

	experience := []parser.Experience{
		{Duration: "2019 - 2022"},
		{Duration: "Jun 2022 - Present"},
		{Duration: "Jan 2017 - Dec 2018"},
		{Duration: "2021 – current"},
		{Duration: "2022 - 2019"},
		{Duration: "since 2015"},
		{Role: "Intern"},
	}
	assert.Equal(t, 13.0, EstimateCandidateYears(experience, fixedNow))

	long := []parser.Experience{{Duration: "1950 - 2000"}, {Duration: "1960 - 2010"}}
	assert.Equal(t, 50.0, EstimateCandidateYears(long, fixedNow))

	assert.Equal(t, 0.0, EstimateCandidateYears(nil, fixedNow))
}

func TestExperienceBoost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, ExperienceBoost(0, 0))
	assert.Equal(t, 1.0, ExperienceBoost(5, 3))
	assert.Equal(t, 1.0, ExperienceBoost(3, 3))
	assert.InDelta(t, 2.0/3, ExperienceBoost(2, ParseRequiredYears([]string{"3-5 years"})), 1e-9)
	assert.Equal(t, 0.0, ExperienceBoost(0, 4))
}

func TestEducationBoost(t *testing.T) {
	t.Parallel()

	withDegree := []parser.Education{{Institution: "MIT"}, {Degree: "MSc"}}
	withoutDegree := []parser.Education{{Institution: "MIT"}}

	assert.Equal(t, 1.0, EducationBoost([]string{"msc"}, withDegree))
	assert.Equal(t, 0.0, EducationBoost([]string{"msc"}, withoutDegree))
	assert.Equal(t, 0.0, EducationBoost(nil, withDegree))
	assert.Equal(t, 0.0, EducationBoost([]string{" "}, withDegree))
}

func TestFinalScoreClamped(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100.0, FinalScore(100, 1, 1, 5))
	assert.Equal(t, 0.0, FinalScore(-50, 0, 0, 0))
	assert.Equal(t, 67.14, FinalScore(66.67, 0.9, 0, 1))
	assert.Equal(t, 89.0, FinalScore(100, 0.5, 0, 1))
}

func TestRankPrefersSkillMatchOverQuality(t *testing.T) {
	t.Parallel()

	resumes := []*parser.Resume{
		{FilePath: "c1.txt", Name: "Candidate One", Skills: []string{"python", "sql"}, QualityScore: 0.9},
		{FilePath: "c2.txt", Name: "Candidate Two", Skills: []string{"python", "sql", "aws"}, QualityScore: 0.5},
	}
	req := Requirements{Skills: []string{"python", "sql", "aws"}}

	matches := newTestRanker(nil, zap.NewNop()).Rank(context.Background(), resumes, req, 5)
	require.Len(t, matches, 2)

	assert.Equal(t, "Candidate Two", matches[0].Name)
	assert.Equal(t, 89.0, matches[0].MatchScore)
	assert.Equal(t, 1.0, matches[0].SemanticSimilarity)
	assert.Equal(t, []string{"aws", "python", "sql"}, matches[0].SkillGap.MatchedSkills)

	assert.Equal(t, "Candidate One", matches[1].Name)
	assert.Equal(t, 67.14, matches[1].MatchScore)
	assert.Equal(t, 0.6667, matches[1].SemanticSimilarity)
	assert.Equal(t, []string{"aws"}, matches[1].SkillGap.MissingSkills)
	assert.Equal(t, 66.67, matches[1].SkillGap.MatchPercentage)
}

func TestScoreBoosts(t *testing.T) {
	t.Parallel()

	resumes := []*parser.Resume{{
		FilePath:     "cv.txt",
		Skills:       []string{"go"},
		Education:    []parser.Education{{Degree: "B.Tech"}},
		Experience:   []parser.Experience{{Role: "Dev", Company: "Initech", Duration: "2020 - 2022"}},
		QualityScore: 0.12344,
	}}
	req := Requirements{Skills: []string{"go"}, Education: []string{"b.tech"}, Experience: []string{"3-5 years"}}

	matches := newTestRanker(similarity.Jaccard{}, nil).Score(context.Background(), resumes, req)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, parser.UnknownCandidate, m.Name)
	assert.Equal(t, parser.UnknownCandidate, m.SkillGap.CandidateName)
	assert.Equal(t, 0.6667, m.ExperienceBoost)
	assert.Equal(t, 1.0, m.EducationBoost)
	assert.Equal(t, 0.1234, m.QualityScore)
	// 80 + 1.4814 + 5 + 2
	assert.Equal(t, 88.48, m.MatchScore)
}

func TestScoreDegradesFailedCandidate(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.WarnLevel)
	resumes := []*parser.Resume{
		{FilePath: "bad.txt", Name: "Bad Embed", Skills: []string{"go", "rust"}},
		{FilePath: "good.txt", Name: "Good Embed", Skills: []string{"go"}},
	}

	matches := newTestRanker(failingScorer{failFor: "rust"}, zap.New(core)).
		Score(context.Background(), resumes, Requirements{Skills: []string{"go"}})
	require.Len(t, matches, 2)

	assert.Equal(t, 0.0, matches[0].SemanticSimilarity)
	assert.Equal(t, 3.0, matches[0].MatchScore)
	assert.Equal(t, 1.0, matches[1].SemanticSimilarity)
	assert.Equal(t, 83.0, matches[1].MatchScore)

	require.Equal(t, 1, observed.Len())
	assert.Equal(t, "bad.txt", observed.All()[0].ContextMap()["path"])
}

func TestSortIsStable(t *testing.T) {
	t.Parallel()

	in := []CandidateMatch{
		{Name: "a", MatchScore: 50},
		{Name: "b", MatchScore: 70},
		{Name: "c", MatchScore: 50},
		{Name: "d", MatchScore: 70},
		{Name: "e", MatchScore: 10},
	}

	out := Sort(in)

	var names []string
	for _, m := range out {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, names)
	assert.Equal(t, "a", in[0].Name)
}

func TestTop(t *testing.T) {
	t.Parallel()

	in := []CandidateMatch{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	assert.Len(t, Top(in, 2), 2)
	assert.Len(t, Top(in, 0), 1)
	assert.Len(t, Top(in, -3), 1)
	assert.Len(t, Top(in, 10), 3)
	assert.Empty(t, Top(nil, 5))
}

func TestNewRunID(t *testing.T) {
	t.Parallel()

	a, b := NewRunID(), NewRunID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	r := New(nil, nil)
	assert.Equal(t, similarity.ProviderJaccard, r.scorer.Name())
	assert.NotNil(t, r.logger)
}

// Package ranking scores parsed resumes against a job and orders them.
package ranking

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/parser"
	"github.com/spigell/resume-screener/internal/similarity"
	"github.com/spigell/resume-screener/internal/skillgap"
)

const (
	weightMatch      = 0.80
	weightQuality    = 0.12
	weightEducation  = 0.05
	weightExperience = 0.03
)

// CandidateMatch is the scored outcome for one resume. MatchScore is the
// final composite score in [0,100].
type CandidateMatch struct {
	Name               string          `json:"name"`
	ResumePath         string          `json:"resume_path"`
	MatchScore         float64         `json:"match_score"`
	SemanticSimilarity float64         `json:"semantic_similarity"`
	QualityScore       float64         `json:"resume_quality_score"`
	EducationBoost     float64         `json:"education_boost"`
	ExperienceBoost    float64         `json:"experience_boost"`
	SkillGap           skillgap.Report `json:"skill_gap"`
}

// Requirements is what a job asks of candidates.
type Requirements struct {
	Skills     []string
	Education  []string
	Experience []string
}

// RequirementsOf returns the requirements of a parsed job.
func RequirementsOf(j *parser.Job) Requirements {
	return Requirements{
		Skills:     j.RequiredSkills,
		Education:  j.RequiredEducation,
		Experience: j.RequiredExperience,
	}
}

// Ranker scores candidates with one similarity tier.
type Ranker struct {
	scorer similarity.Scorer
	logger *zap.Logger
	now    func() time.Time
}

// New returns a Ranker. A nil scorer falls back to Jaccard.
func New(scorer similarity.Scorer, logger *zap.Logger) *Ranker {
	if scorer == nil {
		scorer = similarity.Jaccard{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{scorer: scorer, logger: logger, now: time.Now}
}

// Score returns one match per resume in input order. A similarity failure
// for one candidate scores that candidate's similarity as 0.
func (r *Ranker) Score(ctx context.Context, resumes []*parser.Resume, req Requirements) []CandidateMatch {
	requiredYears := ParseRequiredYears(req.Experience)
	now := r.now()

	out := make([]CandidateMatch, 0, len(resumes))
	for _, res := range resumes {
		name := strings.TrimSpace(res.CandidateID())

		sim, matchScore, err := r.scorer.Score(ctx, res.Skills, req.Skills)
		if err != nil {
			r.logger.Warn("similarity failed, scoring candidate as 0",
				zap.String("path", res.FilePath),
				zap.String("scorer", r.scorer.Name()),
				zap.Error(err),
			)
			sim, matchScore = 0, 0
		}

		candidateYears := EstimateCandidateYears(res.Experience, now)
		expBoost := ExperienceBoost(candidateYears, requiredYears)
		eduBoost := EducationBoost(req.Education, res.Education)

		out = append(out, CandidateMatch{
			Name:               name,
			ResumePath:         res.FilePath,
			MatchScore:         FinalScore(matchScore, res.QualityScore, eduBoost, expBoost),
			SemanticSimilarity: round(sim, 4),
			QualityScore:       round(res.QualityScore, 4),
			EducationBoost:     round(eduBoost, 4),
			ExperienceBoost:    round(expBoost, 4),
			SkillGap:           skillgap.Generate(name, res.Skills, req.Skills),
		})

		r.logger.Debug("candidate scored",
			zap.String("path", res.FilePath),
			zap.Float64("similarity", sim),
			zap.Float64("candidate_years", candidateYears),
			zap.Int("required_years", requiredYears),
		)
	}
	return out
}

// Rank scores, sorts and truncates to the top n (at least one).
func (r *Ranker) Rank(ctx context.Context, resumes []*parser.Resume, req Requirements, n int) []CandidateMatch {
	return Top(Sort(r.Score(ctx, resumes, req)), n)
}

// Sort orders matches by MatchScore, highest first. Equal scores keep their
// input order. The input slice is not modified.
func Sort(matches []CandidateMatch) []CandidateMatch {
	out := append([]CandidateMatch(nil), matches...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	return out
}

// Top returns the first max(1, n) matches.
func Top(matches []CandidateMatch, n int) []CandidateMatch {
	if n < 1 {
		n = 1
	}
	if n > len(matches) {
		n = len(matches)
	}
	return matches[:n]
}

// ExperienceBoost is 1 when nothing is required or the candidate meets the
// requirement, else the fraction of required years covered.
func ExperienceBoost(candidateYears float64, requiredYears int) float64 {
	if requiredYears <= 0 || candidateYears >= float64(requiredYears) {
		return 1
	}
	return math.Max(candidateYears, 0) / float64(requiredYears)
}

// EducationBoost is 1 when the job names a degree and the candidate has one.
func EducationBoost(required []string, education []parser.Education) float64 {
	hasRequired := false
	for _, r := range required {
		if strings.TrimSpace(r) != "" {
			hasRequired = true
			break
		}
	}
	if !hasRequired {
		return 0
	}
	for _, e := range education {
		if strings.TrimSpace(e.Degree) != "" {
			return 1
		}
	}
	return 0
}

// FinalScore blends the components into a score clamped to [0,100] and
// rounded to two decimals.
func FinalScore(matchScore, quality, educationBoost, experienceBoost float64) float64 {
	v := weightMatch*matchScore +
		weightQuality*quality*100 +
		weightEducation*educationBoost*100 +
		weightExperience*experienceBoost*100
	return round(math.Max(0, math.Min(100, v)), 2)
}

// NewRunID identifies one ranking run in reports and logs.
func NewRunID() string {
	return uuid.NewString()
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

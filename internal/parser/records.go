package parser

import (
	"math"

	"github.com/spigell/resume-screener/internal/extract"
)

type (
	Education  = extract.Education
	Experience = extract.Experience
)

// Resume is the structured form of a candidate resume.
type Resume struct {
	FilePath       string       `json:"file_path"`
	Name           string       `json:"name,omitempty"`
	Emails         []string     `json:"emails"`
	Phones         []string     `json:"phones"`
	Skills         []string     `json:"skills"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
	RawTextPreview string       `json:"raw_text_preview"`
	QualityScore   float64      `json:"resume_quality_score"`
}

// CandidateID returns the display identifier of the candidate.
func (r *Resume) CandidateID() string {
	if r.Name == "" {
		return UnknownCandidate
	}
	return r.Name
}

// UnknownCandidate identifies resumes without an extracted name.
const UnknownCandidate = "Unknown"

// Job is the structured form of a job description.
type Job struct {
	FilePath           string   `json:"file_path"`
	Title              string   `json:"title,omitempty"`
	RequiredSkills     []string `json:"required_skills"`
	RequiredEducation  []string `json:"required_education"`
	RequiredExperience []string `json:"required_experience"`
	RawTextPreview     string   `json:"raw_text_preview"`
}

const maxSkillsForQuality = 20

// Quality blends field completeness with the number of recognised skills.
func Quality(r *Resume) float64 {
	present := 0
	for _, ok := range []bool{
		r.Name != "",
		len(r.Emails) > 0,
		len(r.Phones) > 0,
		len(r.Skills) > 0,
		len(r.Education) > 0,
		len(r.Experience) > 0,
	} {
		if ok {
			present++
		}
	}

	completeness := float64(present) / 6
	skills := math.Min(float64(len(r.Skills))/maxSkillsForQuality, 1)

	return round(0.65*completeness+0.35*skills, 4)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

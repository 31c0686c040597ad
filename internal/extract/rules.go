// Package extract implements the heuristic field extractors used to turn
// resume and job description text into structured records.
package extract

import (
	"regexp"
	"strings"

	"github.com/spigell/resume-screener/internal/textnorm"
)

// DefaultVocabulary is the built-in skill dictionary.
var DefaultVocabulary = []string{
	// Languages
	"python",
	"java",
	"javascript",
	"typescript",
	"c++",
	"c#",
	"sql",
	"nosql",
	// Web / Backend
	"fastapi",
	"flask",
	"django",
	"node.js",
	"rest api",
	"microservices",
	// Data / ML
	"pandas",
	"numpy",
	"scikit-learn",
	"machine learning",
	"deep learning",
	"data analysis",
	"data science",
	"nlp",
	"spacy",
	"nltk",
	"sentence-transformers",
	// DevOps / Cloud
	"git",
	"docker",
	"kubernetes",
	"linux",
	"aws",
	"azure",
	"gcp",
	// BI / Tools
	"excel",
	"power bi",
	"tableau",
	"streamlit",
}

// Rules holds the configurable keyword sets the extractors work with.
// Zero-valued fields fall back to DefaultRules.
type Rules struct {
	Vocabulary          []string `mapstructure:"vocabulary" json:"vocabulary"`
	ResumeSkillHeaders  []string `mapstructure:"resume-skill-headers" json:"resume_skill_headers"`
	JobSkillHeaders     []string `mapstructure:"job-skill-headers" json:"job_skill_headers"`
	EducationHeaders    []string `mapstructure:"education-headers" json:"education_headers"`
	ExperienceHeaders   []string `mapstructure:"experience-headers" json:"experience_headers"`
	SectionStopKeywords []string `mapstructure:"section-stop-keywords" json:"section_stop_keywords"`
	// JobScanWindow is the number of lines, header included, scanned for
	// vocabulary terms in a job requirements section.
	JobScanWindow int `mapstructure:"job-scan-window" json:"job_scan_window"`
	// JobTokenWindow is the number of lines split into list tokens.
	JobTokenWindow int `mapstructure:"job-token-window" json:"job_token_window"`
	NameScanLines  int `mapstructure:"name-scan-lines" json:"name_scan_lines"`
	PreviewLength  int `mapstructure:"preview-length" json:"preview_length"`
}

// DefaultRules returns the rule set used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		Vocabulary:          append([]string(nil), DefaultVocabulary...),
		ResumeSkillHeaders:  []string{"skills", "technical skills", "skills & tools"},
		JobSkillHeaders:     []string{"requirements", "required skills", "skills"},
		EducationHeaders:    []string{"education", "academics"},
		ExperienceHeaders:   []string{"experience", "work experience", "professional experience"},
		SectionStopKeywords: []string{"experience", "education", "skills", "projects", "summary", "certifications"},
		JobScanWindow:       40,
		JobTokenWindow:      60,
		NameScanLines:       8,
		PreviewLength:       600,
	}
}

// WithDefaults fills every unset field from DefaultRules.
func (r Rules) WithDefaults() Rules {
	d := DefaultRules()
	if len(r.Vocabulary) == 0 {
		r.Vocabulary = d.Vocabulary
	}
	if len(r.ResumeSkillHeaders) == 0 {
		r.ResumeSkillHeaders = d.ResumeSkillHeaders
	}
	if len(r.JobSkillHeaders) == 0 {
		r.JobSkillHeaders = d.JobSkillHeaders
	}
	if len(r.EducationHeaders) == 0 {
		r.EducationHeaders = d.EducationHeaders
	}
	if len(r.ExperienceHeaders) == 0 {
		r.ExperienceHeaders = d.ExperienceHeaders
	}
	if len(r.SectionStopKeywords) == 0 {
		r.SectionStopKeywords = d.SectionStopKeywords
	}
	if r.JobScanWindow <= 0 {
		r.JobScanWindow = d.JobScanWindow
	}
	if r.JobTokenWindow <= 0 {
		r.JobTokenWindow = d.JobTokenWindow
	}
	if r.NameScanLines <= 0 {
		r.NameScanLines = d.NameScanLines
	}
	if r.PreviewLength <= 0 {
		r.PreviewLength = d.PreviewLength
	}
	return r
}

// Extractor runs the field extractors against a fixed, normalized rule set.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	rules    Rules
	vocab    []string
	vocabSet map[string]struct{}
}

// New compiles the rules into an Extractor.
func New(rules Rules) *Extractor {
	rules = rules.WithDefaults()

	normalized := make([]string, 0, len(rules.Vocabulary))
	for _, term := range rules.Vocabulary {
		normalized = append(normalized, textnorm.Normalize(term))
	}
	vocab := textnorm.UniquePreserveOrder(normalized)

	set := make(map[string]struct{}, len(vocab))
	for _, term := range vocab {
		set[term] = struct{}{}
	}

	return &Extractor{
		rules:    rules,
		vocab:    vocab,
		vocabSet: set,
	}
}

// Rules returns the effective rule set.
func (e *Extractor) Rules() Rules {
	return e.rules
}

// Vocabulary returns the normalized skill vocabulary.
func (e *Extractor) Vocabulary() []string {
	return append([]string(nil), e.vocab...)
}

// Preview returns a bounded excerpt of text.
func (e *Extractor) Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= e.rules.PreviewLength {
		return text
	}
	return string(runes[:e.rules.PreviewLength]) + " ..."
}

var sectionHeaderRe = regexp.MustCompile(`^[a-z &/]{3,40}$`)

// section returns the lines following the first header line until the next
// line that looks like another section header. The header line itself is not
// included. An empty string means no header was found.
func (e *Extractor) section(text string, headers []string) string {
	lines := rawLines(text)

	start := headerIndex(lines, headers)
	if start < 0 {
		return ""
	}
	start++

	end := len(lines)
	for j := start; j < len(lines); j++ {
		if e.isSectionHeader(lines[j]) {
			end = j
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}

func (e *Extractor) isSectionHeader(line string) bool {
	low := strings.ToLower(strings.TrimSpace(line))
	if !sectionHeaderRe.MatchString(low) {
		return false
	}
	for _, kw := range e.rules.SectionStopKeywords {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}

// window returns up to size lines starting at the first header line, the
// header included.
func window(lines []string, start, size int) string {
	end := start + size
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n")
}

func headerIndex(lines, headers []string) int {
	for i, line := range lines {
		low := strings.ToLower(strings.TrimSpace(line))
		for _, h := range headers {
			h = strings.ToLower(strings.TrimSpace(h))
			if h != "" && strings.HasPrefix(low, h) {
				return i
			}
		}
	}
	return -1
}

func rawLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return lines
}

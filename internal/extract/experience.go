package extract

import (
	"regexp"
	"strings"

	"github.com/spigell/resume-screener/internal/textnorm"
)

// Experience is a single work experience entry. Empty fields were not found.
type Experience struct {
	Role     string `json:"role,omitempty"`
	Company  string `json:"company,omitempty"`
	Duration string `json:"duration,omitempty"`
}

var (
	roleCompanyRe = regexp.MustCompile(`^(?P<role>.+?)\s*(?:@|-)\s*(?P<company>.+?)(?:\s*\|\s*(?P<duration>.+))?$`)
	monthRe       = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)\b`)
	// YearSpanRe matches "2019 - 2022", "2021 – present" and similar.
	YearSpanRe = regexp.MustCompile(`(?i)\b(19\d{2}|20\d{2})\s*[-–]\s*(19\d{2}|20\d{2}|present|current)\b`)

	requiredExperienceRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b\d+\s*\+\s*years?\b`),
		regexp.MustCompile(`(?i)\b\d+\s*-\s*\d+\s*years?\b`),
		regexp.MustCompile(`(?i)\b\d+\s*to\s*\d+\s*years?\b`),
	}
)

type lineKind int

const (
	lineDuration lineKind = iota + 1
	lineEntry
)

type classified struct {
	kind  lineKind
	entry Experience
}

// Experience extracts "<role> @|- <company> [| <duration>]" entries from the
// experience section, or from the whole text when no such section exists.
// A line that is not an entry but mentions a month or a year span is attached
// as the duration of the preceding entry when it has none yet. Entry lines
// win, so "Jan 2017 - Dec 2018" is read as an entry of its own.
func (e *Extractor) Experience(text string) []Experience {
	blob := e.section(text, e.rules.ExperienceHeaders)
	if blob == "" {
		blob = text
	}

	out := []Experience{}
	for _, line := range textnorm.Lines(blob) {
		c, _, ok := FirstMatch(line, experienceStrategies...)
		if !ok {
			continue
		}

		switch c.kind {
		case lineEntry:
			out = append(out, c.entry)
		case lineDuration:
			if n := len(out); n > 0 && out[n-1].Duration == "" {
				out[n-1].Duration = line
			}
		}
	}
	return out
}

var experienceStrategies = []Strategy[classified]{
	{Name: "role-company", Match: func(line string) (classified, bool) {
		m := roleCompanyRe.FindStringSubmatch(line)
		if m == nil {
			return classified{}, false
		}
		return classified{kind: lineEntry, entry: Experience{
			Role:     strings.TrimSpace(m[roleCompanyRe.SubexpIndex("role")]),
			Company:  strings.TrimSpace(m[roleCompanyRe.SubexpIndex("company")]),
			Duration: strings.TrimSpace(m[roleCompanyRe.SubexpIndex("duration")]),
		}}, true
	}},
	{Name: "duration", Match: func(line string) (classified, bool) {
		return classified{kind: lineDuration}, isDuration(line)
	}},
}

func isDuration(line string) bool {
	return monthRe.MatchString(line) || YearSpanRe.MatchString(line)
}

// RequiredExperience returns the raw experience phrases of a job description
// ("2+ years", "3-5 years", "3 to 5 years"), normalized and deduplicated.
func RequiredExperience(text string) []string {
	var out []string
	for _, re := range requiredExperienceRes {
		for _, m := range re.FindAllString(text, -1) {
			out = append(out, textnorm.Normalize(m))
		}
	}
	return textnorm.UniquePreserveOrder(out)
}

package extract

import (
	"regexp"
	"strings"

	"github.com/spigell/resume-screener/internal/textnorm"
)

// Education is a single education entry. Empty fields were not found.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

var (
	degreeRe = regexp.MustCompile(`(?i)\b(b\.?tech|btech|be|b\.?e|bsc|m\.?tech|mtech|me|msc|mba|phd)\b`)
	yearRe   = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	requiredDegreeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(b\.?tech|btech|be|b\.?e|bsc)\b`),
		regexp.MustCompile(`(?i)\b(m\.?tech|mtech|me|msc|mba)\b`),
		regexp.MustCompile(`(?i)\b(phd|doctorate)\b`),
	}
)

// Education extracts education entries from the education section, or from
// the whole text when no such section exists. Only lines that mention a
// degree token, a university or a college are kept.
func (e *Extractor) Education(text string) []Education {
	blob := e.section(text, e.rules.EducationHeaders)
	if blob == "" {
		blob = text
	}
	blob = strings.ReplaceAll(blob, "\t", " ")

	out := []Education{}
	for _, line := range textnorm.Lines(blob) {
		low := strings.ToLower(line)
		degree := degreeRe.FindString(line)
		if degree == "" && !strings.Contains(low, "university") && !strings.Contains(low, "college") {
			continue
		}

		out = append(out, Education{
			Degree:      degree,
			Institution: institution(line),
			Year:        yearRe.FindString(line),
		})
	}
	return out
}

// institution returns the text after the first '-' or, failing that, the
// first ','.
func institution(line string) string {
	for _, sep := range []string{"-", ","} {
		if _, after, ok := strings.Cut(line, sep); ok {
			return strings.TrimSpace(after)
		}
	}
	return ""
}

// RequiredEducation returns normalized degree tokens mentioned by a job
// description, bachelor level first, then master and doctorate. The
// requirements section is searched first and the whole text is used when it
// names no degree.
func (e *Extractor) RequiredEducation(text string) []string {
	lines := rawLines(text)
	if start := headerIndex(lines, e.rules.JobSkillHeaders); start >= 0 {
		if found := requiredDegrees(window(lines, start, e.rules.JobTokenWindow)); len(found) > 0 {
			return found
		}
	}
	return requiredDegrees(text)
}

func requiredDegrees(text string) []string {
	var out []string
	for _, re := range requiredDegreeRes {
		for _, m := range re.FindAllString(text, -1) {
			out = append(out, textnorm.Normalize(m))
		}
	}
	return textnorm.UniquePreserveOrder(out)
}

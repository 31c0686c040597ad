package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/spigell/resume-screener/internal/textnorm"
)

// skillSeparatorRe splits list-like skill sections into candidate tokens.
var skillSeparatorRe = regexp.MustCompile(`[,/|\n•\x{2022}\-]+`)

// Skills extracts canonical skills from resume text. A skills section is
// preferred; without one the whole text is scanned.
func (e *Extractor) Skills(text string) []string {
	section := e.section(text, e.rules.ResumeSkillHeaders)

	var found []string
	if norm := textnorm.Normalize(section); norm != "" {
		found = e.scan(norm)
	} else {
		found = e.scan(textnorm.Normalize(text))
	}

	if section != "" {
		found = append(found, e.tokens(section)...)
	}

	return textnorm.UniquePreserveOrder(found)
}

// RequiredSkills extracts canonical skills from a job description. The
// requirements section window starts at its header line, so skills listed
// inline ("Requirements: python, sql") are found.
func (e *Extractor) RequiredSkills(text string) []string {
	lines := rawLines(text)
	start := headerIndex(lines, e.rules.JobSkillHeaders)

	var found []string
	if start < 0 {
		found = e.scan(textnorm.Normalize(text))
		return textnorm.UniquePreserveOrder(found)
	}

	if norm := textnorm.Normalize(window(lines, start, e.rules.JobScanWindow)); norm != "" {
		found = e.scan(norm)
	} else {
		found = e.scan(textnorm.Normalize(text))
	}
	found = append(found, e.tokens(window(lines, start, e.rules.JobTokenWindow))...)

	return textnorm.UniquePreserveOrder(found)
}

// scan returns every vocabulary term that occurs in the normalized haystack
// bounded by start/end of string or a space, ordered by first position.
// Terms starting at the same position keep vocabulary order.
func (e *Extractor) scan(haystack string) []string {
	if haystack == "" {
		return nil
	}
	padded := " " + haystack + " "

	type hit struct {
		term string
		pos  int
	}
	var hits []hit
	for _, term := range e.vocab {
		if term == "" {
			continue
		}
		if pos := strings.Index(padded, " "+term+" "); pos >= 0 {
			hits = append(hits, hit{term: term, pos: pos})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.term)
	}
	return out
}

// tokens splits a raw section on list separators and keeps tokens that
// normalize to an exact vocabulary entry.
func (e *Extractor) tokens(section string) []string {
	var out []string
	for _, tok := range skillSeparatorRe.Split(section, -1) {
		s := textnorm.Normalize(tok)
		if len(s) < 2 {
			continue
		}
		if _, ok := e.vocabSet[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

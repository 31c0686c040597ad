// Package skillgap compares a candidate's skills with the skills a job requires.
package skillgap

import (
	"math"
	"sort"
	"strings"
)

// Report is the outcome of a skill comparison for one candidate.
type Report struct {
	CandidateName   string   `json:"candidate_name"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage float64  `json:"match_percentage"`
}

// Generate compares both collections as trimmed, lower-cased sets. The match
// percentage is 0 when nothing is required.
func Generate(candidate string, candidateSkills, requiredSkills []string) Report {
	have := set(candidateSkills)
	need := set(requiredSkills)

	matched := []string{}
	missing := []string{}
	for skill := range need {
		if _, ok := have[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	var pct float64
	if len(need) > 0 {
		pct = math.Round(float64(len(matched))/float64(len(need))*100*100) / 100
	}

	return Report{
		CandidateName:   candidate,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		MatchPercentage: pct,
	}
}

func set(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out[item] = struct{}{}
		}
	}
	return out
}

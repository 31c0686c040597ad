package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/spigell/resume-screener/internal/ranking"
	"github.com/spigell/resume-screener/internal/skillgap"
)

// Summary prints a numbered list of candidates.
func Summary(w io.Writer, matches []ranking.CandidateMatch) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, "No candidates matched.")
		return err
	}

	for i, m := range matches {
		_, err := fmt.Fprintf(w, "%d. %s  score=%.2f  similarity=%.4f  skills=%.2f%%\n",
			i+1, m.Name, m.MatchScore, m.SemanticSimilarity, m.SkillGap.MatchPercentage)
		if err != nil {
			return err
		}
	}
	return nil
}

// Gap prints the skill gap of one candidate.
func Gap(w io.Writer, r skillgap.Report) error {
	_, err := fmt.Fprintf(w, "%s\n  matched: %s\n  missing: %s\n  match: %.2f%%\n",
		r.CandidateName, orNone(r.MatchedSkills), orNone(r.MissingSkills), r.MatchPercentage)
	return err
}

func orNone(list []string) string {
	if len(list) == 0 {
		return "-"
	}
	return strings.Join(list, ", ")
}

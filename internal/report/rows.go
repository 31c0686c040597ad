package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/resume-screener/internal/ranking"
)

// RankingRow is one line of candidate_ranking.csv.
type RankingRow struct {
	Name                 string  `json:"name"`
	ResumePath           string  `json:"resume_path"`
	MatchScore           float64 `json:"match_score"`
	SemanticSimilarity   float64 `json:"semantic_similarity"`
	QualityScore         float64 `json:"resume_quality_score"`
	EducationBoost       float64 `json:"education_boost"`
	ExperienceBoost      float64 `json:"experience_boost"`
	SkillMatchPercentage float64 `json:"skill_match_percentage"`
}

var RankingColumns = []string{
	"name", "resume_path", "match_score", "semantic_similarity",
	"resume_quality_score", "education_boost", "experience_boost", "skill_match_percentage",
}

// GapRow is one line of skill_gap_report.csv.
type GapRow struct {
	Name                 string  `json:"name"`
	MatchedSkills        string  `json:"matched_skills"`
	MissingSkills        string  `json:"missing_skills"`
	SkillMatchPercentage float64 `json:"skill_match_percentage"`
}

var GapColumns = []string{"name", "matched_skills", "missing_skills", "skill_match_percentage"}

func rankingRows(matches []ranking.CandidateMatch) []any {
	rows := make([]any, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, RankingRow{
			Name:                 m.Name,
			ResumePath:           m.ResumePath,
			MatchScore:           m.MatchScore,
			SemanticSimilarity:   m.SemanticSimilarity,
			QualityScore:         m.QualityScore,
			EducationBoost:       m.EducationBoost,
			ExperienceBoost:      m.ExperienceBoost,
			SkillMatchPercentage: m.SkillGap.MatchPercentage,
		})
	}
	return rows
}

func gapRows(matches []ranking.CandidateMatch) []any {
	rows := make([]any, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, GapRow{
			Name:                 m.Name,
			MatchedSkills:        strings.Join(m.SkillGap.MatchedSkills, ", "),
			MissingSkills:        strings.Join(m.SkillGap.MissingSkills, ", "),
			SkillMatchPercentage: m.SkillGap.MatchPercentage,
		})
	}
	return rows
}

// Table flattens rows into a header line followed by one line per row. Each
// row is decoded by its json tags and cells follow the order of columns.
func Table(columns []string, rows []any) ([][]string, error) {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, append([]string(nil), columns...))

	for i, row := range rows {
		fields, err := decode(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		line := make([]string, len(columns))
		for j, col := range columns {
			line[j] = format(fields[col])
		}
		out = append(out, line)
	}
	return out, nil
}

func decode(row any) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &fields,
		TagName: "json",
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(row); err != nil {
		return nil, err
	}
	return fields, nil
}

func format(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

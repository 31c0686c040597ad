// Package report writes ranking results and parsed documents to disk.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/parser"
	"github.com/spigell/resume-screener/internal/ranking"
)

const (
	RankingJSON   = "ranking_and_skill_gap.json"
	RankingCSV    = "candidate_ranking.csv"
	GapCSV        = "skill_gap_report.csv"
	RankingXLSX   = "candidate_ranking.xlsx"
	ParsedJob     = "parsed_job"
	ParsedResumes = "parsed_resumes"
)

// JobSummary is the job part of the ranking result.
type JobSummary struct {
	Title              string   `json:"title"`
	FilePath           string   `json:"file_path"`
	RequiredSkills     []string `json:"required_skills"`
	RequiredEducation  []string `json:"required_education"`
	RequiredExperience []string `json:"required_experience"`
}

// SummaryOf returns the summary of a parsed job.
func SummaryOf(j *parser.Job) JobSummary {
	return JobSummary{
		Title:              j.Title,
		FilePath:           j.FilePath,
		RequiredSkills:     j.RequiredSkills,
		RequiredEducation:  j.RequiredEducation,
		RequiredExperience: j.RequiredExperience,
	}
}

// Result is the content of ranking_and_skill_gap.json.
type Result struct {
	RunID         string                   `json:"run_id"`
	Scorer        string                   `json:"similarity_provider"`
	Job           JobSummary               `json:"job"`
	TopCandidates []ranking.CandidateMatch `json:"top_candidates"`
}

// Writer writes report files into one output directory.
type Writer struct {
	dir    string
	logger *zap.Logger
}

func NewWriter(dir string, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{dir: dir, logger: logger}
}

// WriteRanking writes the JSON result, both CSV files and the workbook and
// returns the written paths.
func (w *Writer) WriteRanking(res Result) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	jsonPath := filepath.Join(w.dir, RankingJSON)
	if err := WriteJSON(jsonPath, res); err != nil {
		return nil, err
	}

	rank := Sheet{Name: "Ranking", Columns: RankingColumns, Rows: rankingRows(res.TopCandidates)}
	gap := Sheet{Name: "Skill Gap", Columns: GapColumns, Rows: gapRows(res.TopCandidates)}

	rankPath := filepath.Join(w.dir, RankingCSV)
	if err := WriteCSV(rankPath, rank.Columns, rank.Rows); err != nil {
		return nil, err
	}
	gapPath := filepath.Join(w.dir, GapCSV)
	if err := WriteCSV(gapPath, gap.Columns, gap.Rows); err != nil {
		return nil, err
	}
	xlsxPath := filepath.Join(w.dir, RankingXLSX)
	if err := WriteXLSX(xlsxPath, rank, gap); err != nil {
		return nil, err
	}

	written := []string{jsonPath, rankPath, gapPath, xlsxPath}
	for _, p := range written {
		w.logger.Info("report written", zap.String("path", p), zap.String("run_id", res.RunID))
	}
	return written, nil
}

// WriteParsed dumps the parsed job and resumes as JSON and CSV.
func (w *Writer) WriteParsed(job *parser.Job, resumes []*parser.Resume) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	jobRows := []any{job.Row()}
	resumeRows := make([]any, 0, len(resumes))
	for _, r := range resumes {
		resumeRows = append(resumeRows, r.Row())
	}

	written := []string{
		filepath.Join(w.dir, ParsedJob+".json"),
		filepath.Join(w.dir, ParsedJob+".csv"),
		filepath.Join(w.dir, ParsedResumes+".json"),
		filepath.Join(w.dir, ParsedResumes+".csv"),
	}

	if err := WriteJSON(written[0], job); err != nil {
		return nil, err
	}
	if err := WriteCSV(written[1], parser.JobColumns, jobRows); err != nil {
		return nil, err
	}
	if err := WriteJSON(written[2], resumes); err != nil {
		return nil, err
	}
	if err := WriteCSV(written[3], parser.ResumeColumns, resumeRows); err != nil {
		return nil, err
	}

	for _, p := range written {
		w.logger.Info("parsed documents written", zap.String("path", p))
	}
	return written, nil
}

// WriteJSON writes v as indented JSON.
func WriteJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// WriteCSV writes rows with a header line.
func WriteCSV(path string, columns []string, rows []any) error {
	table, err := Table(columns, rows)
	if err != nil {
		return fmt.Errorf("building %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.WriteAll(table); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

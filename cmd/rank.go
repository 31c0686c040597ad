package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/filtering"
	"github.com/spigell/resume-screener/internal/logger"
	"github.com/spigell/resume-screener/internal/parser"
	"github.com/spigell/resume-screener/internal/ranking"
	"github.com/spigell/resume-screener/internal/report"
	"github.com/spigell/resume-screener/internal/similarity"
)

const (
	PromptAppendToExcludeFile = "Append all candidates to exclude file"
	PromptResultsToFile       = "Dump candidates to file"
	PromptExit                = "exit"
)

var errExit = errors.New("exit requested")

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a folder of resumes against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringP("resumes", "r", "", "folder with resumes (.pdf, .docx, .txt)")
	rankCmd.Flags().String("jd", "", "job description file")
	rankCmd.Flags().IntP("top", "n", defaultTop, "number of candidates to report")
	rankCmd.Flags().StringP("out", "o", defaultOutDir, "output folder")
	rankCmd.Flags().Bool("dump-parsed", false, "also write the parsed job and resumes")
	rankCmd.Flags().BoolP("interactive", "i", false, "review the top candidates after ranking")
	rankCmd.Flags().String("provider", similarity.ProviderJaccard, "similarity provider: jaccard or gemini")
	rankCmd.Flags().Float64("min-score", 0, "drop candidates scoring below this value")
	rankCmd.Flags().StringSlice("must-have", nil, "skills every candidate must match")
	rankCmd.Flags().StringP("exclude-file", "e", "", "file with already reviewed resumes to exclude")

	rankCmd.MarkFlagRequired("resumes")
	rankCmd.MarkFlagRequired("jd")

	viper.BindPFlag("top", rankCmd.Flags().Lookup("top"))
	viper.BindPFlag("out", rankCmd.Flags().Lookup("out"))
	viper.BindPFlag("similarity.provider", rankCmd.Flags().Lookup("provider"))
	viper.BindPFlag("filters.minimum-score", rankCmd.Flags().Lookup("min-score"))
	viper.BindPFlag("filters.must-have", rankCmd.Flags().Lookup("must-have"))
	viper.BindPFlag("filters.exclude-file", rankCmd.Flags().Lookup("exclude-file"))
}

func rank(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	resumesDir, _ := cmd.Flags().GetString("resumes")
	jdPath, _ := cmd.Flags().GetString("jd")

	logger.Info("starting the resume-screener",
		zap.String("version", version),
		zap.String("resumes", resumesDir),
		zap.String("jd", jdPath),
	)

	p := newParser(config, logger)

	job, err := p.ParseJobFile(ctx, jdPath)
	if err != nil {
		logger.Fatal("parsing the job description", zap.Error(err))
	}

	batch, err := p.ParseDir(ctx, resumesDir)
	if err != nil {
		logger.Fatal("listing resumes", zap.Error(err))
	}

	if len(batch.Resumes) == 0 {
		logger.Info("exiting", zap.String("reason", "no resumes parsed"))
		return
	}

	matches, scorer, err := rankResumes(ctx, config, job, batch.Resumes, logger)
	if err != nil {
		logger.Fatal("screening candidates", zap.Error(err))
	}

	w := report.NewWriter(config.Out, logger)

	if dump, _ := cmd.Flags().GetBool("dump-parsed"); dump {
		if _, err := w.WriteParsed(job, batch.Resumes); err != nil {
			logger.Fatal("writing parsed documents", zap.Error(err))
		}
	}

	if _, err := w.WriteRanking(report.Result{
		RunID:         matches.runID,
		Scorer:        scorer,
		Job:           report.SummaryOf(job),
		TopCandidates: matches.top,
	}); err != nil {
		logger.Fatal("writing reports", zap.Error(err))
	}

	if err := report.Summary(cmd.OutOrStdout(), matches.top); err != nil {
		logger.Fatal("printing summary", zap.Error(err))
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); !interactive || len(matches.top) == 0 {
		return
	}

	if err := review(cmd, config, matches.top, logger); err != nil && !errors.Is(err, errExit) {
		logger.Fatal("exiting", zap.Error(err))
	}
}

type rankedRun struct {
	runID string
	top   []ranking.CandidateMatch
}

// rankResumes scores every resume, runs the screening steps on the full list
// and cuts it to the configured size.
func rankResumes(ctx context.Context, config *Config, job *parser.Job, resumes []*parser.Resume, log *zap.Logger) (rankedRun, string, error) {
	runID := ranking.NewRunID()
	runLog := logger.WithRun(log, runID, job.FilePath)

	scorer := similarity.Resolve(ctx, embedderFactory(config.Similarity, runLog), runLog)
	ranker := ranking.New(scorer, runLog)

	scored := ranking.Sort(ranker.Score(ctx, resumes, ranking.RequirementsOf(job)))

	steps := filtering.Steps()
	if config.Filters.MinimumScore == 0 {
		filtering.DisableByName(steps, "minimum_score", "minimum score is not set")
	}
	for _, st := range filtering.Describe(steps) {
		runLog.Debug("filter status", zap.String("name", st.Name), zap.Bool("enabled", st.Enabled), zap.String("reason", st.Reason))
	}

	screened, err := filtering.Run(ctx, &config.Filters, filtering.Deps{Logger: runLog}, steps, &filtering.Candidates{Items: scored})
	if err != nil {
		return rankedRun{}, "", err
	}

	top := ranking.Top(screened.Items, config.Top)
	runLog.Info("ranking finished",
		zap.Int("scored", len(scored)),
		zap.Int("screened", screened.Len()),
		zap.Int("reported", len(top)),
	)

	return rankedRun{runID: runID, top: top}, scorer.Name(), nil
}

// review lets the user walk through the reported candidates.
func review(cmd *cobra.Command, config *Config, top []ranking.CandidateMatch, logger *zap.Logger) error {
	candidates := &filtering.Candidates{Items: top}
	excludeFile := strings.TrimSpace(config.Filters.ExcludeFile)

	for {
		items := make([]string, 0, candidates.Len()+3)
		for _, m := range candidates.Items {
			items = append(items, fmt.Sprintf("%s / %.2f / %s", m.Name, m.MatchScore, m.ResumePath))
		}

		if excludeFile != "" && candidates.Len() != 0 {
			items = append(items, PromptAppendToExcludeFile)
		}
		items = append(items, PromptResultsToFile, PromptExit)

		candidatePrompt := promptui.Select{
			Label: "Choose a candidate and press ENTER",
			Items: items,
		}

		idx, selected, err := candidatePrompt.Run()
		if err != nil {
			return err
		}

		switch {
		case idx < candidates.Len():
			if err := report.Gap(cmd.OutOrStdout(), candidates.Items[idx].SkillGap); err != nil {
				return err
			}
		case selected == PromptAppendToExcludeFile:
			excluded, err := filtering.LoadExcluded(excludeFile)
			if err != nil {
				return err
			}

			excluded.Append(candidates.ToExcluded())

			if err = excluded.ToFile(excludeFile); err != nil {
				return err
			}

			logger.Info("appended to exclude file", zap.String("filename", excludeFile))

			paths := excluded.Paths()
			candidates.Exclude(func(m ranking.CandidateMatch) bool {
				_, ok := paths[m.ResumePath]
				return ok
			})
		case selected == PromptResultsToFile:
			filename, err := dumpToTmpFile(candidates.Items)
			if err != nil {
				return fmt.Errorf("dump results to file: %w", err)
			}
			logger.Info("dumping result to file", zap.String("filename", filename))
		case selected == PromptExit:
			return errExit
		default:
			return fmt.Errorf("invalid action: %s", selected)
		}
	}
}

func dumpToTmpFile(matches []ranking.CandidateMatch) (string, error) {
	file, err := os.CreateTemp("", app+"-*.json")
	if err != nil {
		return "", err
	}
	name := file.Name()
	if err := file.Close(); err != nil {
		return "", err
	}

	if err := report.WriteJSON(name, matches); err != nil {
		return "", err
	}
	return name, nil
}

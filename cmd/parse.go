package cmd

import (
	"context"
	"encoding/json"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/logger"
	"github.com/spigell/resume-screener/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse resumes (or job descriptions with --job) and print them as JSON",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().Bool("job", false, "treat the files as job descriptions")
}

func parse(cmd *cobra.Command, paths []string) {
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

	p := newParser(config, logger)

	var out any
	if isJob, _ := cmd.Flags().GetBool("job"); isJob {
		jobs := make([]*parser.Job, 0, len(paths))
		for _, path := range paths {
			job, err := p.ParseJobFile(ctx, path)
			if err != nil {
				logger.Error("parsing job description", zap.String("path", path), zap.Error(err))
				continue
			}
			jobs = append(jobs, job)
		}
		out = jobs
	} else {
		// Failures are logged by the parser.
		out = p.ParseResumes(ctx, paths).Resumes
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Fatal("encoding parsed documents", zap.Error(err))
	}
}

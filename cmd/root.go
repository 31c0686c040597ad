package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/resume-screener/internal/ai/gemini"
	"github.com/spigell/resume-screener/internal/extract"
	"github.com/spigell/resume-screener/internal/filtering"
	"github.com/spigell/resume-screener/internal/parser"
	"github.com/spigell/resume-screener/internal/similarity"
)

const (
	app = "resume-screener"

	defaultTop    = 5
	defaultOutDir = "outputs"
)

type Config struct {
	Workers    int               `mapstructure:"workers"`
	Top        int               `mapstructure:"top"`
	Out        string            `mapstructure:"out"`
	Similarity *SimilarityConfig `mapstructure:"similarity"`
	Extraction extract.Rules     `mapstructure:"extraction"`
	Filters    filtering.Config  `mapstructure:"filters"`
}

type SimilarityConfig struct {
	Provider string        `mapstructure:"provider"`
	Gemini   gemini.Config `mapstructure:"gemini"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-screener extracts structured data from resumes and ranks them against a job description",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("similarity.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	viper.SetDefault("workers", parser.DefaultWorkers)
	viper.SetDefault("top", defaultTop)
	viper.SetDefault("out", defaultOutDir)
	viper.SetDefault("similarity.provider", similarity.ProviderJaccard)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().IntP("workers", "w", parser.DefaultWorkers, "number of documents parsed concurrently")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless given explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}
	if config.Similarity == nil {
		config.Similarity = &SimilarityConfig{}
	}

	provider := strings.ToLower(strings.TrimSpace(config.Similarity.Provider))
	switch provider {
	case "":
		provider = similarity.ProviderJaccard
	case similarity.ProviderJaccard, similarity.ProviderGemini:
	default:
		return nil, fmt.Errorf("unsupported similarity provider: %s", config.Similarity.Provider)
	}
	config.Similarity.Provider = provider
	config.Extraction = config.Extraction.WithDefaults()

	return config, nil
}

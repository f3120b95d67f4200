// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-scout CLI: it
// recommends papers from a local corpus based on a bibliography, a
// free-text query, or author names.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-scout/internal/corpus"
	"github.com/pdiddy/paper-scout/internal/keywords"
	"github.com/pdiddy/paper-scout/internal/retrieval"
	"github.com/pdiddy/paper-scout/internal/suggest"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the process-wide logger, configured in PersistentPreRun.
var log = zerolog.Nop()

// rootCmd is the base command for the paper-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-scout",
	Short: "Recommend papers from a local bibliographic corpus",
	Long: `paper-scout recommends papers you have not read yet. Point it at your
bibliography and it finds corpus papers similar to each of yours, merges
the per-paper rankings into one scored list, and filters out anything
already in your library. Free-text and author queries reuse the same
pipeline without the aggregation step.

The corpus lives in a local SQLite database; use the corpus subcommands
to fetch a snapshot and load it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).With().Timestamp().Logger()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-scout.yaml or ~/.config/paper-scout/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-scout"))
		}
	}

	viper.SetDefault("http.timeout", "30s")
	viper.SetDefault("http.user_agent", "paper-scout/0.1")
	viper.SetDefault("corpus.db_path", "data/corpus.db")
	viper.SetDefault("suggest.candidates_per_query", 100)
	viper.SetDefault("suggest.max_results", 20)
	viper.SetDefault("keywords.per_document", 15)
	viper.SetDefault("keywords.top_display", 10)

	viper.SetEnvPrefix("PAPER_SCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the viper state into typed config.
func loadConfig() types.Config {
	return types.Config{
		HTTP: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		Corpus: types.CorpusConfig{
			DBPath:      viper.GetString("corpus.db_path"),
			SnapshotURL: viper.GetString("corpus.snapshot_url"),
		},
		Suggest: types.SuggestConfig{
			CandidatesPerQuery: viper.GetInt("suggest.candidates_per_query"),
			MaxResults:         viper.GetInt("suggest.max_results"),
		},
		Keywords: types.KeywordConfig{
			PerDocument: viper.GetInt("keywords.per_document"),
			TopDisplay:  viper.GetInt("keywords.top_display"),
		},
	}
}

// buildSuggester loads the corpus into memory and wires the default
// TF-IDF retriever and keyword extractor into a Suggester.
func buildSuggester(ctx context.Context, cfg types.Config) (*suggest.Suggester, error) {
	store, err := corpus.Open(cfg.Corpus.DBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	docs, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("documents", len(docs)).Msg("corpus loaded")

	idx := suggest.NewCorpusIndex(docs)
	retriever := retrieval.NewTFIDFIndex(docs)
	extractor := keywords.NewTFIDFExtractor(docs)
	return suggest.NewSuggester(idx, retriever, extractor, cfg.Suggest, cfg.Keywords, log), nil
}

// yearFlag reads an optional year flag: unset (zero) means no bound.
func yearFlag(cmd *cobra.Command, name string) *int {
	y, _ := cmd.Flags().GetInt(name)
	if y == 0 {
		return nil
	}
	return &y
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/corpus"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the local corpus (fetch, load, stats)",
	Long: `Corpus manages the local SQLite document store the recommendation
pipeline runs against. Fetch a published snapshot, load a YAML dump
into the store, or inspect what is loaded.`,
}

// --- fetch subcommand ---

var corpusFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a corpus snapshot over HTTP",
	Long: `Fetch downloads a corpus snapshot from the configured URL (or --url)
to the local database path. Rate-limited downloads retry with
exponential backoff.`,
	RunE: runCorpusFetch,
}

func runCorpusFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		url = cfg.Corpus.SnapshotURL
	}

	client := &http.Client{Timeout: cfg.HTTP.Timeout}
	return corpus.Fetch(context.Background(), client, url, cfg.Corpus.DBPath, cfg.HTTP, os.Stderr)
}

// --- load subcommand ---

var corpusLoadCmd = &cobra.Command{
	Use:   "load [dump file]",
	Short: "Ingest a YAML corpus dump into the store",
	Long: `Load parses a YAML dump (a list of documents with id, title, abstract,
year, and authors) and upserts it into the SQLite store, creating the
database if needed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusLoad,
}

func runCorpusLoad(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	docs, err := corpus.ReadDump(args[0])
	if err != nil {
		return err
	}

	store, err := corpus.Create(cfg.Corpus.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Ingest(context.Background(), docs); err != nil {
		return err
	}
	fmt.Printf("Loaded %d documents into %s\n", len(docs), cfg.Corpus.DBPath)
	return nil
}

// --- stats subcommand ---

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus row counts and year range",
	RunE:  runCorpusStats,
}

func runCorpusStats(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	store, err := corpus.Open(cfg.Corpus.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := store.Stats(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("papers:    %d\n", st.Papers)
	fmt.Printf("abstracts: %d\n", st.Abstracts)
	if st.MinYear > 0 {
		fmt.Printf("years:     %d-%d\n", st.MinYear, st.MaxYear)
	}
	return nil
}

func init() {
	corpusFetchCmd.Flags().String("url", "", "snapshot URL (overrides corpus.snapshot_url)")

	corpusCmd.AddCommand(corpusFetchCmd)
	corpusCmd.AddCommand(corpusLoadCmd)
	corpusCmd.AddCommand(corpusStatsCmd)

	rootCmd.AddCommand(corpusCmd)
}

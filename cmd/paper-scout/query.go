// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/suggest"
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Recommend papers for a free-text query",
	Long: `Query retrieves the corpus papers closest to a free-text prompt and
ranks them by retrieval score. The same year filters and truncation
apply as in library mode; there is no library to overlap against.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	cfg := loadConfig()
	s, err := buildSuggester(context.Background(), cfg)
	if err != nil {
		return err
	}

	n, _ := cmd.Flags().GetInt("max-results")
	opts := suggest.Options{
		MaxResults: n,
		Since:      yearFlag(cmd, "since"),
		To:         yearFlag(cmd, "to"),
	}

	recs, err := s.SuggestForText(text, opts)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		if err := recs.FormatJSON(os.Stdout); err != nil {
			return err
		}
	} else {
		recs.FormatTable(os.Stdout)
	}

	if csvPath, _ := cmd.Flags().GetString("output"); csvPath != "" {
		if err := recs.WriteCSV(csvPath); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved recommendations to", csvPath)
	}

	if runPath, _ := cmd.Flags().GetString("save-run"); runPath != "" {
		q := suggest.RunQuery{
			Mode:       "text",
			FreeText:   text,
			Since:      opts.Since,
			To:         opts.To,
			MaxResults: opts.MaxResults,
		}
		if err := suggest.WriteRunFile(runPath, q, &suggest.Result{Recommendations: recs}); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved run to", runPath)
	}

	return nil
}

func init() {
	queryCmd.Flags().Int("max-results", 20, "number of recommendations to keep")
	queryCmd.Flags().Int("since", 0, "only recommend papers published in or after this year")
	queryCmd.Flags().Int("to", 0, "only recommend papers published in or before this year")
	queryCmd.Flags().String("output", "", "write recommendations to a CSV file")
	queryCmd.Flags().String("save-run", "", "save the query and results to a YAML run file")
	queryCmd.Flags().Bool("json", false, "output recommendations as JSON")

	rootCmd.AddCommand(queryCmd)
}

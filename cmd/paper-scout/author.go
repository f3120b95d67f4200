// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/suggest"
)

var authorCmd = &cobra.Command{
	Use:   "author [name]...",
	Short: "List corpus papers by author name",
	Long: `Author matches corpus papers whose author list contains any of the given
names. Matching is case-insensitive and ignores punctuation, so
"J. Smith" and "j smith" are the same person. The embedding retriever
is bypassed; year filters and truncation apply as usual.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAuthor,
}

func runAuthor(cmd *cobra.Command, args []string) error {
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

	recs, err := s.SuggestForAuthors(args, opts)
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

	return nil
}

func init() {
	authorCmd.Flags().Int("max-results", 20, "number of papers to keep")
	authorCmd.Flags().Int("since", 0, "only keep papers published in or after this year")
	authorCmd.Flags().Int("to", 0, "only keep papers published in or before this year")
	authorCmd.Flags().String("output", "", "write results to a CSV file")
	authorCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(authorCmd)
}

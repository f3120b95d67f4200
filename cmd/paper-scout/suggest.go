// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/library"
	"github.com/pdiddy/paper-scout/internal/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [library file]",
	Short: "Recommend papers similar to a bibliography",
	Long: `Suggest reads your bibliography (.bib, CSL-YAML, or CSL-JSON), retrieves
the closest corpus papers for each entry, and merges the per-entry
rankings into one scored recommendation list. Papers already in your
library never appear in the output. A keyword profile of your library
and the most frequent authors among the recommendations are reported
alongside.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	libPath, _ := cmd.Flags().GetString("library")
	if libPath == "" && len(args) > 0 {
		libPath = args[0]
	}
	if libPath == "" {
		return fmt.Errorf("library file required: pass a path or --library")
	}

	entries, err := library.Load(libPath)
	if err != nil {
		return err
	}

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

	res, err := s.SuggestForLibrary(entries, opts, &suggest.WriterProgress{W: os.Stderr})
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	if err := printResult(res, jsonOut); err != nil {
		return err
	}

	if csvPath, _ := cmd.Flags().GetString("output"); csvPath != "" {
		if err := res.Recommendations.WriteCSV(csvPath); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved recommendations to", csvPath)
	}

	if runPath, _ := cmd.Flags().GetString("save-run"); runPath != "" {
		q := suggest.RunQuery{
			Mode:        "library",
			LibraryPath: libPath,
			Since:       opts.Since,
			To:          opts.To,
			MaxResults:  opts.MaxResults,
		}
		if err := suggest.WriteRunFile(runPath, q, res); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved run to", runPath)
	}

	return nil
}

// printResult writes the recommendation table plus the keyword and
// author summaries, or the whole result as JSON.
func printResult(res *suggest.Result, jsonOut bool) error {
	if jsonOut {
		return res.Recommendations.FormatJSON(os.Stdout)
	}

	res.Recommendations.FormatTable(os.Stdout)

	if len(res.Keywords) > 0 {
		fmt.Println("\nLibrary keywords:")
		for _, kw := range res.Keywords {
			fmt.Printf("  %-24s %.0f\n", kw.Keyword, kw.Weight)
		}
	}
	if len(res.Authors) > 0 {
		fmt.Println("\nTop recommended authors:")
		for _, a := range res.Authors {
			fmt.Printf("  %-24s %d\n", a.Author, a.Count)
		}
	}
	return nil
}

func init() {
	suggestCmd.Flags().String("library", "", "path to the bibliography file")
	suggestCmd.Flags().Int("max-results", 20, "number of recommendations to keep")
	suggestCmd.Flags().Int("since", 0, "only recommend papers published in or after this year")
	suggestCmd.Flags().Int("to", 0, "only recommend papers published in or before this year")
	suggestCmd.Flags().String("output", "", "write recommendations to a CSV file")
	suggestCmd.Flags().String("save-run", "", "save the query and results to a YAML run file")
	suggestCmd.Flags().Bool("json", false, "output recommendations as JSON")

	rootCmd.AddCommand(suggestCmd)
}

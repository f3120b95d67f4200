// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// Recommendation is one scored output row. Score is normalized to
// (0, 1]: a document ranked first by every contributing query scores
// exactly 1.
type Recommendation struct {
	types.Document `yaml:",inline"`
	Score          float64 `json:"score" yaml:"score"`
}

// Recommendations is the materialized, scored candidate set. It is
// filtered, sorted, and truncated in place over the lifecycle of a
// single query invocation and discarded afterwards.
type Recommendations struct {
	Rows []Recommendation
}

// Collate materializes a points map against the corpus. Rows come out
// in corpus order; duplicate titles collapse to the first occurrence.
// The normalization denominator is k times the number of contributing
// queries, the maximum weight any title can have accumulated.
func Collate(points Points, idx *CorpusIndex, k, queries int) *Recommendations {
	recs := &Recommendations{}
	if len(points) == 0 || k <= 0 || queries <= 0 {
		return recs
	}
	denom := float64(k) * float64(queries)
	seen := make(map[string]bool, len(points))
	for _, doc := range idx.Docs {
		pts, ok := points[doc.Title]
		if !ok || seen[doc.Title] {
			continue
		}
		seen[doc.Title] = true
		recs.Rows = append(recs.Rows, Recommendation{Document: doc, Score: pts / denom})
	}
	return recs
}

// Len returns the number of rows.
func (r *Recommendations) Len() int { return len(r.Rows) }

// RemoveOverlap drops rows whose title exactly matches a title in the
// user's library. A recommendation the user already has carries no
// value; it must never occupy an output slot, so this runs before Rank.
func (r *Recommendations) RemoveOverlap(library []types.LibraryEntry) {
	if len(library) == 0 {
		return
	}
	owned := make(map[string]bool, len(library))
	for _, e := range library {
		owned[e.Title] = true
	}
	kept := r.Rows[:0]
	for _, row := range r.Rows {
		if !owned[row.Title] {
			kept = append(kept, row)
		}
	}
	r.Rows = kept
}

// FilterYears keeps rows inside the inclusive [since, to] window. Either
// bound may be nil, imposing no constraint on that side. An empty result
// is a valid outcome, not an error.
func (r *Recommendations) FilterYears(since, to *int) {
	if since == nil && to == nil {
		return
	}
	kept := r.Rows[:0]
	for _, row := range r.Rows {
		if since != nil && row.Year < *since {
			continue
		}
		if to != nil && row.Year > *to {
			continue
		}
		kept = append(kept, row)
	}
	r.Rows = kept
}

// Rank sorts rows by score descending and truncates to the top n. The
// sort is stable: rows with equal scores keep their prior relative
// order. n <= 0 empties the set; n beyond the row count keeps all rows.
func (r *Recommendations) Rank(n int) {
	sort.SliceStable(r.Rows, func(i, j int) bool {
		return r.Rows[i].Score > r.Rows[j].Score
	})
	if n <= 0 {
		r.Rows = r.Rows[:0]
		return
	}
	if n < len(r.Rows) {
		r.Rows = r.Rows[:n]
	}
}

// FormatTable writes rows as a human-readable table to w.
func (r *Recommendations) FormatTable(w io.Writer) {
	if len(r.Rows) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-4s  %-6s  %s\n",
		"Rank", "Title", "Authors", "Year", "Score", "Journal")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, row := range r.Rows {
		title := row.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-4d  %-6.3f  %s\n",
			i+1, title, formatAuthors(row.Authors), row.Year, row.Score, row.Journal)
	}

	fmt.Fprintf(w, "\n%d recommendations\n", len(r.Rows))
}

// FormatJSON writes rows as indented JSON to w.
func (r *Recommendations) FormatJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Rows)
}

// csvHeader is the column layout for CSV persistence.
var csvHeader = []string{"id", "title", "authors", "year", "journal", "url", "score"}

// WriteCSV persists the set to a CSV file, one row per recommendation,
// including the score column. Scores use the shortest representation
// that round-trips exactly.
func (r *Recommendations) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range r.Rows {
		record := []string{
			row.ID,
			row.Title,
			strings.Join(row.Authors, "; "),
			strconv.Itoa(row.Year),
			row.Journal,
			row.URL,
			strconv.FormatFloat(row.Score, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// ReadCSV loads a previously persisted recommendation set.
func ReadCSV(path string) (*Recommendations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return &Recommendations{}, nil
	}

	recs := &Recommendations{}
	for _, record := range records[1:] {
		if len(record) != len(csvHeader) {
			return nil, fmt.Errorf("malformed CSV row in %s: %d columns, want %d", path, len(record), len(csvHeader))
		}
		year, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("invalid year %q in %s: %w", record[3], path, err)
		}
		score, err := strconv.ParseFloat(record[6], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid score %q in %s: %w", record[6], path, err)
		}
		var authors []string
		if record[2] != "" {
			authors = strings.Split(record[2], "; ")
		}
		recs.Rows = append(recs.Rows, Recommendation{
			Document: types.Document{
				ID:      record[0],
				Title:   record[1],
				Authors: authors,
				Year:    year,
				Journal: record[4],
				URL:     record[5],
			},
			Score: score,
		})
	}
	return recs, nil
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

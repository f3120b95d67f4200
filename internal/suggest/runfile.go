// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// RunFile is the on-disk record of one suggestion run: the query that
// produced it, the recommended rows, and the derived profiles. A run
// can be saved and reloaded without touching the corpus again.
type RunFile struct {
	Query    RunQuery          `yaml:"query"`
	Results  []Recommendation  `yaml:"results"`
	Keywords []WeightedKeyword `yaml:"keywords,omitempty"`
	Authors  []AuthorCount     `yaml:"authors,omitempty"`
	Summary  RunSummary        `yaml:"summary"`
}

// RunQuery stores the query parameters in a serializable form.
type RunQuery struct {
	Mode        string   `yaml:"mode"` // library, text, or author
	LibraryPath string   `yaml:"library_path,omitempty"`
	FreeText    string   `yaml:"free_text,omitempty"`
	Authors     []string `yaml:"authors,omitempty"`
	Since       *int     `yaml:"since,omitempty"`
	To          *int     `yaml:"to,omitempty"`
	MaxResults  int      `yaml:"max_results"`
}

// RunSummary stores result statistics and a timestamp.
type RunSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteRunFile saves a run to a YAML file.
func WriteRunFile(path string, query RunQuery, res *Result) error {
	rf := RunFile{
		Query:    query,
		Results:  res.Recommendations.Rows,
		Keywords: res.Keywords,
		Authors:  res.Authors,
		Summary: RunSummary{
			Total:     res.Recommendations.Len(),
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRunFile loads a previously saved run from disk.
func ReadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &rf, nil
}

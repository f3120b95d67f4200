package types

import "time"

// HTTPConfig holds shared HTTP settings for commands that fetch remote
// resources (corpus snapshots).
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CorpusConfig holds settings for the corpus store.
type CorpusConfig struct {
	// DBPath is the SQLite database holding papers and abstracts
	// (default "data/corpus.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// SnapshotURL is where `corpus fetch` downloads a snapshot from.
	SnapshotURL string `json:"snapshot_url,omitempty" yaml:"snapshot_url,omitempty"`
}

// SuggestConfig holds settings for the recommendation pipeline.
type SuggestConfig struct {
	// CandidatesPerQuery is how many candidates each retrieval call
	// returns; it is also the maximum rank weight (default 100).
	CandidatesPerQuery int `json:"candidates_per_query" yaml:"candidates_per_query"`

	// MaxResults is the default number of recommendations to keep
	// after filtering (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// KeywordConfig holds settings for keyword profiling.
type KeywordConfig struct {
	// PerDocument is how many keywords to extract from each library
	// entry's abstract (default 15).
	PerDocument int `json:"per_document" yaml:"per_document"`

	// TopDisplay is how many profile keywords to show (default 10).
	TopDisplay int `json:"top_display" yaml:"top_display"`
}

// Config groups all settings for the CLI.
type Config struct {
	HTTP     HTTPConfig    `json:"http" yaml:"http"`
	Corpus   CorpusConfig  `json:"corpus" yaml:"corpus"`
	Suggest  SuggestConfig `json:"suggest" yaml:"suggest"`
	Keywords KeywordConfig `json:"keywords" yaml:"keywords"`
}

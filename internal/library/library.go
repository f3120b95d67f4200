// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library loads the user's bibliography. BibTeX is the primary
// format; CSL-YAML and CSL-JSON lists are accepted as well.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nickng/bibtex"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// ErrInputLoad means the library file is missing, unparsable, or empty.
// Always fatal: there is nothing to recommend from without a library.
var ErrInputLoad = errors.New("cannot load library")

// Load parses the bibliography at path, dispatching on the file
// extension.
func Load(path string) ([]types.LibraryEntry, error) {
	var (
		entries []types.LibraryEntry
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".bib":
		entries, err = loadBibTeX(path)
	case ".yaml", ".yml":
		entries, err = loadCSLYAML(path)
	case ".json":
		entries, err = loadCSLJSON(path)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q (use .bib, .yaml, or .json)", ErrInputLoad, ext)
	}
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s contains no usable entries", ErrInputLoad, path)
	}
	return entries, nil
}

func loadBibTeX(path string) ([]types.LibraryEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputLoad, err)
	}
	defer f.Close()

	bib, err := bibtex.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInputLoad, path, err)
	}

	var entries []types.LibraryEntry
	for _, e := range bib.Entries {
		entry := types.LibraryEntry{
			Title:    cleanBraces(field(e, "title")),
			Abstract: cleanBraces(field(e, "abstract")),
		}
		if entry.Title == "" {
			continue
		}
		if y := field(e, "year"); y != "" {
			if n, err := strconv.Atoi(y); err == nil {
				entry.Year = n
			}
		}
		if a := field(e, "author"); a != "" {
			entry.Authors = splitBibAuthors(cleanBraces(a))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func field(e *bibtex.BibEntry, name string) string {
	v, ok := e.Fields[name]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(v.String())
}

// cleanBraces removes the grouping braces BibTeX uses to protect
// capitalization.
func cleanBraces(s string) string {
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "}", "")
	return strings.TrimSpace(s)
}

// splitBibAuthors splits a BibTeX author field on the "and" separator
// and flips "Family, Given" names to natural order.
func splitBibAuthors(s string) []string {
	var authors []string
	for _, part := range strings.Split(s, " and ") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if family, given, ok := strings.Cut(name, ","); ok {
			name = strings.TrimSpace(given) + " " + strings.TrimSpace(family)
			name = strings.TrimSpace(name)
		}
		authors = append(authors, name)
	}
	return authors
}

// cslItem mirrors the subset of the CSL schema the pipeline needs.
type cslItem struct {
	Title    string    `yaml:"title" json:"title"`
	Abstract string    `yaml:"abstract" json:"abstract"`
	Author   []cslName `yaml:"author" json:"author"`
	Issued   *cslDate  `yaml:"issued" json:"issued"`
}

type cslName struct {
	Family  string `yaml:"family" json:"family"`
	Given   string `yaml:"given" json:"given"`
	Literal string `yaml:"literal" json:"literal"`
}

type cslDate struct {
	DateParts [][]int `yaml:"date-parts" json:"date-parts"`
}

func loadCSLYAML(path string) ([]types.LibraryEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputLoad, err)
	}
	var items []cslItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInputLoad, path, err)
	}
	return fromCSL(items), nil
}

func loadCSLJSON(path string) ([]types.LibraryEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputLoad, err)
	}
	var items []cslItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInputLoad, path, err)
	}
	return fromCSL(items), nil
}

func fromCSL(items []cslItem) []types.LibraryEntry {
	var entries []types.LibraryEntry
	for _, item := range items {
		if strings.TrimSpace(item.Title) == "" {
			continue
		}
		entry := types.LibraryEntry{
			Title:    strings.TrimSpace(item.Title),
			Abstract: strings.TrimSpace(item.Abstract),
		}
		for _, n := range item.Author {
			if n.Literal != "" {
				entry.Authors = append(entry.Authors, n.Literal)
				continue
			}
			name := strings.TrimSpace(n.Given + " " + n.Family)
			if name != "" {
				entry.Authors = append(entry.Authors, name)
			}
		}
		if item.Issued != nil && len(item.Issued.DateParts) > 0 && len(item.Issued.DateParts[0]) > 0 {
			entry.Year = item.Issued.DateParts[0][0]
		}
		entries = append(entries, entry)
	}
	return entries
}

package code_index

import (
	"sort"
	"strings"

	"codescout/code_index/models"
	"github.com/pmezard/go-difflib/difflib"
)

const (
	fuzzyMaxResults = 3
	fuzzyCutoff     = 0.6
)

// CodeIndex is the in-memory symbol catalog for one scanned project.
// A name points at the file that last claimed it, while snippets
// accumulate per file, so a name collision moves the pointer but never
// drops text. The index is built once per run and owned by a single
// goroutine; it carries no locks.
type CodeIndex struct {
	names     map[string]string           // folded name -> owning file
	nameOrder []string                    // folded names in first-insertion order
	files     map[string][]models.Snippet // file -> snippets in extraction order
	fileOrder []string                    // files in first-seen order
}

// NewCodeIndex creates an empty index.
func NewCodeIndex() *CodeIndex {
	return &CodeIndex{
		names: make(map[string]string),
		files: make(map[string][]models.Snippet),
	}
}

// Add registers one snippet under its case-folded name. A name seen
// before keeps its position in the order but points at the new file.
func (ci *CodeIndex) Add(filePath string, name string, snippet string) {
	folded := strings.ToLower(name)

	if _, exists := ci.names[folded]; !exists {
		ci.nameOrder = append(ci.nameOrder, folded)
	}
	ci.names[folded] = filePath

	if _, exists := ci.files[filePath]; !exists {
		ci.fileOrder = append(ci.fileOrder, filePath)
	}
	ci.files[filePath] = append(ci.files[filePath], models.Snippet{Name: folded, Text: snippet})
}

// Search returns every entry whose name contains the query, case
// insensitively, in the order the names first entered the index.
func (ci *CodeIndex) Search(query string) []models.Match {
	folded := strings.ToLower(query)

	var matches []models.Match
	for _, name := range ci.nameOrder {
		if strings.Contains(name, folded) {
			matches = append(matches, models.Match{Name: name, File: ci.names[name]})
		}
	}
	return matches
}

// SearchFuzzy relaxes Search to close spellings: similarity ratio of at
// least 0.6 against the stored names, at most three results, best first.
func (ci *CodeIndex) SearchFuzzy(query string) []models.Match {
	folded := strings.ToLower(query)

	names := closeMatches(folded, ci.nameOrder, fuzzyMaxResults, fuzzyCutoff)

	matches := make([]models.Match, 0, len(names))
	for _, name := range names {
		matches = append(matches, models.Match{Name: name, File: ci.names[name]})
	}
	return matches
}

// Snippets returns the ordered snippet list for a file, or nothing when
// the file never produced one.
func (ci *CodeIndex) Snippets(filePath string) []models.Snippet {
	return ci.files[filePath]
}

// Files lists every indexed file in first-seen order.
func (ci *CodeIndex) Files() []string {
	return ci.fileOrder
}

// Stats counts what the scan put into the index.
func (ci *CodeIndex) Stats() models.IndexStats {
	total := 0
	for _, snippets := range ci.files {
		total += len(snippets)
	}
	return models.IndexStats{
		Files:    len(ci.files),
		Names:    len(ci.names),
		Snippets: total,
	}
}

// closeMatches scores possibilities against word over character
// sequences and keeps those reaching cutoff, best n first. The two
// cheap ratio bounds rule out most candidates before the full ratio
// runs. Ties keep their insertion order.
func closeMatches(word string, possibilities []string, n int, cutoff float64) []string {
	type scored struct {
		name  string
		ratio float64
	}

	matcher := difflib.NewMatcher(nil, splitChars(word))

	var results []scored
	for _, candidate := range possibilities {
		matcher.SetSeq1(splitChars(candidate))
		if matcher.RealQuickRatio() >= cutoff && matcher.QuickRatio() >= cutoff {
			if ratio := matcher.Ratio(); ratio >= cutoff {
				results = append(results, scored{name: candidate, ratio: ratio})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ratio > results[j].ratio
	})

	if len(results) > n {
		results = results[:n]
	}

	names := make([]string, 0, len(results))
	for _, result := range results {
		names = append(names, result.name)
	}
	return names
}

// splitChars turns a string into the per-character sequence the matcher
// compares.
func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}

package utils

import (
	"strings"
)

// Exclusions is the set of folder names never entered during a scan.
// Matching is by exact path element, so "vendor" prunes any vendor
// directory at any depth but leaves "vendored" alone.
type Exclusions struct {
	folders map[string]bool
}

// NewExclusions builds the set from the configured folder names.
func NewExclusions(folders []string) *Exclusions {
	set := make(map[string]bool, len(folders))
	for _, folder := range folders {
		folder = strings.TrimSpace(folder)
		if folder != "" {
			set[folder] = true
		}
	}
	return &Exclusions{folders: set}
}

// IsExcluded reports whether a single path element is excluded.
func (e *Exclusions) IsExcluded(name string) bool {
	return e.folders[name]
}

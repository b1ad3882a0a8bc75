package project

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"codescout/utils"
)

// Mapper builds JSON-friendly views of a project tree for prompting.
type Mapper struct {
	exclusions *utils.Exclusions
}

// NewMapper creates a Mapper that drops the given folder names wherever
// they appear as directories.
func NewMapper(excludedFolders []string) *Mapper {
	return &Mapper{exclusions: utils.NewExclusions(excludedFolders)}
}

// MapStructure returns the tree rooted at rootDir wrapped under its base
// name. Directories nest as objects and files appear as null leaves.
// Exclusions apply to directory names only, never to files.
func (m *Mapper) MapStructure(rootDir string) map[string]interface{} {
	return map[string]interface{}{
		filepath.Base(rootDir): m.mapDirectory(rootDir),
	}
}

func (m *Mapper) mapDirectory(dir string) map[string]interface{} {
	structure := make(map[string]interface{})

	entries, err := os.ReadDir(dir)
	if err != nil {
		logrus.Warnf("failed to read directory %s: %v", dir, err)
		return structure
	}

	for _, entry := range entries {
		if entry.IsDir() {
			if m.exclusions.IsExcluded(entry.Name()) {
				continue
			}
			structure[entry.Name()] = m.mapDirectory(filepath.Join(dir, entry.Name()))
			continue
		}
		structure[entry.Name()] = nil
	}

	return structure
}

// MapRootStructure lists only the top level of rootDir for display.
// Directories carry a trailing slash, excluded folders are dropped.
func (m *Mapper) MapRootStructure(rootDir string) []string {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		logrus.Warnf("failed to read directory %s: %v", rootDir, err)
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			if m.exclusions.IsExcluded(entry.Name()) {
				continue
			}
			names = append(names, entry.Name()+"/")
			continue
		}
		names = append(names, entry.Name())
	}

	return names
}

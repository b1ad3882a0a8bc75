package code_index

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"codescout/utils"
	"github.com/sirupsen/logrus"
)

// Walker scans a project tree and feeds every text file through the
// extractor into a fresh index.
type Walker struct {
	exclusions *utils.Exclusions
}

// NewWalker creates a walker that prunes the given folder names at
// every depth.
func NewWalker(excludedFolders []string) *Walker {
	return &Walker{exclusions: utils.NewExclusions(excludedFolders)}
}

// BuildIndex walks rootDir and returns the populated index. Per-file
// trouble is logged and skipped so one unreadable file never aborts a
// scan; only a completely unwalkable root surfaces as an error.
func (w *Walker) BuildIndex(rootDir string) (*CodeIndex, error) {
	index := NewCodeIndex()

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == rootDir {
				return err
			}
			logrus.Warnf("skipping %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			if path != rootDir && w.exclusions.IsExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsTextFile(path) {
			logrus.Debugf("skipping binary file %s", path)
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			logrus.Warnf("failed to read file %s: %v", path, err)
			return nil
		}

		if strings.TrimSpace(string(content)) == "" {
			logrus.Debugf("skipping empty file %s", path)
			return nil
		}

		relativePath, err := filepath.Rel(rootDir, path)
		if err != nil {
			relativePath = path
		}
		relativePath = strings.ReplaceAll(relativePath, "\\", "/")

		for _, snippet := range Extract(d.Name(), string(content)) {
			index.Add(relativePath, snippet.Name, snippet.Text)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return index, nil
}

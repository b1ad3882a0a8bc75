package code_index

import (
	"regexp"
	"strings"

	"codescout/code_index/models"
	"github.com/sirupsen/logrus"
)

// The three declaration patterns below are deliberately lexical. Every
// pass runs on every file regardless of extension, matches accumulate
// across passes, and a captured region is a chunk of text, not a parsed
// declaration.
var (
	// PHP functions and methods, with any stack of visibility modifiers.
	// The body capture stops at the first closing brace.
	phpFunctionRegex = regexp.MustCompile(`(?m)^\s*(?:(?:public|private|protected|static|final|abstract)\s+)*function\s+(\w+)\s*\([^)]*\)[^{]*\{[^}]*\}`)

	// Python def/class headers with at least one indented line after the
	// colon. A bare header with no following block does not match.
	pythonBlockRegex = regexp.MustCompile(`(?m)^[ \t]*(?:def|class)\s+(\w+)[^\n]*:[ \t]*\n(?:[ \t]+[^\n]*\n?)+`)

	// JavaScript named function declarations and class bodies.
	jsDeclarationRegex = regexp.MustCompile(`(?:function\s+(\w+)\s*\([^)]*\)\s*|class\s+(\w+)[^{]*)\{[^}]*\}`)
)

// Extract pulls named snippets out of one file's content. Content that
// carries a "class " marker anywhere is indexed whole under the file's
// own name and the per-declaration passes never run on it. Content that
// matches no pass at all is indexed whole under the bare filename.
func Extract(fileName string, content string) []models.Snippet {
	if strings.Contains(content, "class ") {
		return []models.Snippet{{Name: fileName, Text: content}}
	}

	var snippets []models.Snippet

	for _, match := range phpFunctionRegex.FindAllStringSubmatch(content, -1) {
		snippets = append(snippets, models.Snippet{Name: match[1], Text: match[0]})
	}

	for _, match := range pythonBlockRegex.FindAllStringSubmatch(content, -1) {
		snippets = append(snippets, models.Snippet{Name: match[1], Text: match[0]})
	}

	for _, match := range jsDeclarationRegex.FindAllStringSubmatch(content, -1) {
		name := match[1]
		if name == "" {
			name = match[2]
		}
		snippets = append(snippets, models.Snippet{Name: name, Text: match[0]})
	}

	if len(snippets) == 0 {
		logrus.Debugf("no declarations found in %s, indexing whole file", fileName)
		return []models.Snippet{{Name: fileName, Text: content}}
	}

	return snippets
}

package utils

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

var codeBlockLanguageRegex = regexp.MustCompile("```([a-zA-Z0-9]+)")

// DetectLanguageFromCodeBlock returns the language tag of the first
// fenced code block in content, or "markdown" when there is none.
func DetectLanguageFromCodeBlock(content string) string {
	match := codeBlockLanguageRegex.FindStringSubmatch(content)
	if len(match) < 2 {
		return "markdown"
	}
	return match[1]
}

// RenderAndPrintMarkdownWithContext renders content line by line with
// syntax highlighting, checking for cancellation between lines.
// Diff-style +/- lines inside fenced blocks are colored directly.
func RenderAndPrintMarkdownWithContext(ctx context.Context, content string, language string, theme string) error {
	isCodeBlock := false

	for _, line := range strings.Split(content, "\n") {
		select {
		case <-ctx.Done():
			fmt.Printf("\n\n🔄 Output interrupted...\n")
			return ctx.Err()
		default:
		}

		if strings.HasPrefix(line, "```") {
			isCodeBlock = !isCodeBlock
		}

		if strings.HasPrefix(line, "+") && isCodeBlock {
			fmt.Print("\x1b[92m" + line + "\x1b[0m\n")
		} else if strings.HasPrefix(line, "-") && isCodeBlock {
			fmt.Print("\x1b[91m" + line + "\x1b[0m\n")
		} else {
			var buf bytes.Buffer
			if err := quick.Highlight(&buf, line+"\n", language, "terminal256", theme); err != nil {
				return err
			}
			fmt.Print(buf.String())
		}
	}

	return nil
}

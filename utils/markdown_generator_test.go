package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test that the first fenced block's language tag is picked up
func TestDetectLanguageFromCodeBlock(t *testing.T) {
	content := "Here is the fix:\n```go\nfunc main() {}\n```\nand some prose."

	assert.Equal(t, "go", DetectLanguageFromCodeBlock(content))
}

// Test the fallback when no fenced block carries a tag
func TestDetectLanguageFromCodeBlock_Fallback(t *testing.T) {
	assert.Equal(t, "markdown", DetectLanguageFromCodeBlock("plain prose, no code"))
	assert.Equal(t, "markdown", DetectLanguageFromCodeBlock("```\nuntagged block\n```"))
}

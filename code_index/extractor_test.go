package code_index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codescout/code_index/models"
)

func snippetNames(snippets []models.Snippet) []string {
	names := make([]string, 0, len(snippets))
	for _, snippet := range snippets {
		names = append(names, snippet.Name)
	}
	return names
}

// Test the class marker short circuit: the whole file under its own name
func TestExtract_ClassMarkerShortCircuit(t *testing.T) {
	content := "<?php\nclass UserController {\n    public function index() { return 1; }\n}\n"

	snippets := Extract("UserController.php", content)

	require.Len(t, snippets, 1)
	assert.Equal(t, "UserController.php", snippets[0].Name)
	assert.Equal(t, content, snippets[0].Text)
}

// Test PHP function extraction with stacked visibility modifiers
func TestExtract_PHPFunctions(t *testing.T) {
	content := "<?php\nfunction render($data) { return $data; }\n\npublic static function helper() { return 42; }\n"

	snippets := Extract("helpers.php", content)

	names := snippetNames(snippets)
	assert.Contains(t, names, "render")
	assert.Contains(t, names, "helper")
}

// Test Python def extraction takes the header and its indented block
func TestExtract_PythonDef(t *testing.T) {
	content := "def handle(request):\n    data = request.body\n    return data\n\nprint(\"done\")\n"

	snippets := Extract("views.py", content)

	require.Len(t, snippets, 1)
	assert.Equal(t, "handle", snippets[0].Name)
	assert.Contains(t, snippets[0].Text, "data = request.body")
	assert.NotContains(t, snippets[0].Text, "print")
}

// Test that a def header with no indented block underneath falls through
// to the whole-file fallback
func TestExtract_PythonHeaderWithoutBlock(t *testing.T) {
	content := "def orphan():\nprint(\"not indented\")\n"

	snippets := Extract("orphan.py", content)

	require.Len(t, snippets, 1)
	assert.Equal(t, "orphan.py", snippets[0].Name)
	assert.Equal(t, content, snippets[0].Text)
}

// Test that passes accumulate: a bare function declaration is picked up
// by both the PHP and the JavaScript pass
func TestExtract_PassesAccumulate(t *testing.T) {
	content := "function add(a, b) { return a + b; }\n"

	snippets := Extract("math.js", content)

	require.Len(t, snippets, 2)
	assert.Equal(t, "add", snippets[0].Name)
	assert.Equal(t, "add", snippets[1].Name)
}

// Test the whole-file fallback for content no pass recognizes
func TestExtract_WholeFileFallback(t *testing.T) {
	content := "# just a config file\nkey = value\n"

	snippets := Extract("settings.ini", content)

	require.Len(t, snippets, 1)
	assert.Equal(t, "settings.ini", snippets[0].Name)
	assert.Equal(t, content, snippets[0].Text)
}

// Test that the extension never matters, only the content
func TestExtract_IgnoresExtension(t *testing.T) {
	content := "function hidden() { return true; }\n"

	snippets := Extract("notes.txt", content)

	require.NotEmpty(t, snippets)
	assert.Equal(t, "hidden", snippets[0].Name)
}

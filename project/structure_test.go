package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, root string, dirs []string, files []string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(root, 0755))
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
	for _, file := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, file), []byte("content"), 0644))
	}
}

// Test that the structure nests under the root's base name with files as
// null leaves
func TestMapStructure_WrapsUnderBaseName(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	buildTree(t, root, []string{"app"}, []string{"app/views.py", "manage.py"})

	mapper := NewMapper(nil)
	structure := mapper.MapStructure(root)

	require.Contains(t, structure, "demo")
	top, ok := structure["demo"].(map[string]interface{})
	require.True(t, ok)

	assert.Nil(t, top["manage.py"])

	app, ok := top["app"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, app, "views.py")
}

// Test that excluded folders vanish at every depth
func TestMapStructure_ExcludesFoldersAtAnyDepth(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	buildTree(t, root,
		[]string{"node_modules", "src/node_modules", "src"},
		[]string{"src/index.js"})

	mapper := NewMapper([]string{"node_modules"})
	structure := mapper.MapStructure(root)

	top := structure["demo"].(map[string]interface{})
	assert.NotContains(t, top, "node_modules")

	src := top["src"].(map[string]interface{})
	assert.NotContains(t, src, "node_modules")
	assert.Contains(t, src, "index.js")
}

// Test that exclusion only applies to directories, never to files that
// happen to share the name
func TestMapStructure_ExclusionIsDirectoryOnly(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	buildTree(t, root, nil, []string{"vendor"})

	mapper := NewMapper([]string{"vendor"})
	structure := mapper.MapStructure(root)

	top := structure["demo"].(map[string]interface{})
	assert.Contains(t, top, "vendor")
	assert.Nil(t, top["vendor"])
}

// Test the flat top-level listing with slash-marked directories
func TestMapRootStructure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	buildTree(t, root, []string{"app", "vendor"}, []string{"manage.py"})

	mapper := NewMapper([]string{"vendor"})
	names := mapper.MapRootStructure(root)

	assert.Contains(t, names, "app/")
	assert.Contains(t, names, "manage.py")
	assert.NotContains(t, names, "vendor/")
	assert.NotContains(t, names, "vendor")
}

// Test that an unreadable root degrades to an empty listing
func TestMapRootStructure_MissingRoot(t *testing.T) {
	mapper := NewMapper(nil)

	assert.Empty(t, mapper.MapRootStructure(filepath.Join(t.TempDir(), "missing")))
}

package code_index

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectFile(t *testing.T, root string, relative string, content []byte) {
	t.Helper()
	path := filepath.Join(root, relative)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
}

// Test a full scan: excluded folders pruned, binary and empty files
// skipped, everything else indexed under forward-slash relative paths
func TestWalker_BuildIndex(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "app/views.py", []byte("def index(request):\n    return render(request)\n"))
	writeProjectFile(t, root, "node_modules/lib/pkg.js", []byte("function shouldNotAppear() { return 1; }\n"))
	writeProjectFile(t, root, "vendor/autoload.php", []byte("function shouldNotAppearEither() { return 1; }\n"))
	writeProjectFile(t, root, "logo.png", []byte{0x89, 'P', 'N', 'G', 0x00, 0x1a})
	writeProjectFile(t, root, "empty.txt", []byte("   \n"))
	writeProjectFile(t, root, "README.md", []byte("# demo project\n"))

	walker := NewWalker([]string{"vendor", "node_modules", ".git"})
	index, err := walker.BuildIndex(root)
	require.NoError(t, err)

	matches := index.Search("index")
	require.Len(t, matches, 1)
	assert.Equal(t, "app/views.py", matches[0].File)

	assert.Empty(t, index.Search("shouldnotappear"))

	readme := index.Search("readme.md")
	require.Len(t, readme, 1)
	assert.Equal(t, "README.md", readme[0].File)

	for _, file := range index.Files() {
		assert.NotEqual(t, "logo.png", file)
		assert.NotEqual(t, "empty.txt", file)
	}
}

// Test that a missing root reports an error instead of an empty index
func TestWalker_MissingRoot(t *testing.T) {
	walker := NewWalker(nil)

	_, err := walker.BuildIndex(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

// Test that an exclusion never prunes the scan root itself
func TestWalker_RootNotExcluded(t *testing.T) {
	root := filepath.Join(t.TempDir(), "vendor")
	writeProjectFile(t, root, "tool.py", []byte("def keep():\n    pass\n"))

	walker := NewWalker([]string{"vendor"})
	index, err := walker.BuildIndex(root)
	require.NoError(t, err)

	assert.NotEmpty(t, index.Search("keep"))
}

// Test that an unreadable file inside the tree is skipped, not fatal
func TestWalker_UnreadableFileSkipped(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced the same way on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	root := t.TempDir()
	writeProjectFile(t, root, "ok.py", []byte("def fine():\n    pass\n"))
	locked := filepath.Join(root, "locked.py")
	require.NoError(t, os.WriteFile(locked, []byte("def hidden():\n    pass\n"), 0000))

	walker := NewWalker(nil)
	index, err := walker.BuildIndex(root)
	require.NoError(t, err)

	assert.NotEmpty(t, index.Search("fine"))
	assert.Empty(t, index.Search("hidden"))
}

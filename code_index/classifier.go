package code_index

import (
	"bytes"
	"io"
	"os"
)

// binaryPreCheckBytes is how much of a file the classifier sniffs before
// deciding. A null byte inside this window marks the file as binary.
const binaryPreCheckBytes = 512

// IsTextFile reports whether the file at path looks like readable source
// text. Unreadable files count as binary so the walker leaves them alone.
func IsTextFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, binaryPreCheckBytes)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}

	return bytes.IndexByte(buf[:n], 0) == -1
}

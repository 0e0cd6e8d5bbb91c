package combine

import (
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFileText reads a file as UTF-8 text. Invalid byte sequences are
// replaced with U+FFFD and line endings are normalised to "\n".
func ReadFileText(fsys fs.FS, relPath string) (string, error) {
	raw, err := fs.ReadFile(fsys, relPath)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", relPath, err)
	}

	decoded, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("error decoding file %s: %w", relPath, err)
	}

	return normalizeNewlines(string(decoded)), nil
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

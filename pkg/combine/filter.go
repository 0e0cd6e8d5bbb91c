// File: pkg/combine/filter.go
package combine

import (
	"path/filepath"
	"strings"

	"ingestipy/pkg/ignore"
)

// Skip reasons reported by Filter.ShouldSkip.
const (
	ReasonOutputFile = "output file"
	ReasonVCS        = "version-control metadata"
	ReasonPattern    = "ignore pattern"
)

// Filter applies the exclusion policy to candidate paths under Root.
type Filter struct {
	Root     string             // Absolute traversal root.
	Output   string             // Absolute output path, always excluded.
	Patterns *ignore.PatternSet // Configured ignore patterns; may be nil.
}

// NewFilter returns a Filter for the given root, output path and patterns.
func NewFilter(root, output string, patterns *ignore.PatternSet) *Filter {
	return &Filter{
		Root:     filepath.Clean(root),
		Output:   filepath.Clean(output),
		Patterns: patterns,
	}
}

// ShouldSkip reports whether relPath (slash separated, relative to Root) is
// excluded, and why. It applies equally to files and directories.
func (f *Filter) ShouldSkip(relPath string) (bool, string) {
	if f.Output != "" && filepath.Join(f.Root, filepath.FromSlash(relPath)) == f.Output {
		return true, ReasonOutputFile
	}
	if hasVCSSegment(relPath) {
		return true, ReasonVCS
	}
	if f.Patterns != nil && f.Patterns.MatchesPath(relPath) {
		return true, ReasonPattern
	}
	return false, ""
}

func hasVCSSegment(relPath string) bool {
	for _, segment := range strings.Split(relPath, "/") {
		for _, name := range VCSDirs {
			if segment == name {
				return true
			}
		}
	}
	return false
}

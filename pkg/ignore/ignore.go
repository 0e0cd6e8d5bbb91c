// Package ignore loads flat ignore files and matches relative paths against
// the glob patterns they contain.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Pattern is one glob taken from an ignore source.
type Pattern struct {
	Glob   string // Trimmed pattern text.
	LineNo int    // Line number in the source (1-based).
}

// PatternSet is an unordered collection of ignore patterns. Any match
// excludes a path; there is no negation or precedence.
type PatternSet struct {
	patterns []*Pattern
	match    MatchFunc
	logger   *zap.Logger
}

// NewPatternSet returns an empty set that matches with match (Fnmatch when nil).
func NewPatternSet(match MatchFunc, logger *zap.Logger) *PatternSet {
	if match == nil {
		match = Fnmatch
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PatternSet{
		patterns: []*Pattern{},
		match:    match,
		logger:   logger,
	}
}

// LoadFile builds a PatternSet from the ignore file at path. A path that is
// missing, not a regular file, or unreadable yields an empty set.
func LoadFile(path string, match MatchFunc, logger *zap.Logger) *PatternSet {
	ps := NewPatternSet(match, logger)
	if path != "" {
		ps.CompileIgnoreFile(path)
	}
	return ps
}

// CompileIgnoreLines adds every non-blank, non-comment line as a pattern.
func (ps *PatternSet) CompileIgnoreLines(lines ...string) {
	for i, line := range lines {
		glob, ok := parsePatternLine(line)
		if !ok {
			continue
		}
		p := &Pattern{Glob: glob, LineNo: i + 1}
		ps.patterns = append(ps.patterns, p)
		ps.logger.Debug("Loaded ignore pattern", zap.Int("lineNo", p.LineNo), zap.String("pattern", p.Glob))
	}
}

// CompileIgnoreFile reads an ignore file and adds its patterns. Only regular
// files are read; anything else contributes no patterns. Read failures are
// logged, never returned.
func (ps *PatternSet) CompileIgnoreFile(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		ps.logger.Info("No ignore patterns loaded.", zap.String("filePath", path))
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		ps.logger.Warn("Failed to read ignore file, no ignore patterns loaded", zap.String("filePath", path), zap.Error(err))
		return
	}

	before := len(ps.patterns)
	ps.CompileIgnoreLines(strings.Split(string(content), "\n")...)
	ps.logger.Debug("Compiled ignore patterns",
		zap.String("filePath", path),
		zap.Int("patternCount", len(ps.patterns)-before))
}

// Len returns the number of loaded patterns.
func (ps *PatternSet) Len() int {
	return len(ps.patterns)
}

// Globs returns the loaded pattern strings in load order.
func (ps *PatternSet) Globs() []string {
	globs := make([]string, 0, len(ps.patterns))
	for _, p := range ps.patterns {
		globs = append(globs, p.Glob)
	}
	return globs
}

// MatchesPath checks if relPath matches any pattern.
func (ps *PatternSet) MatchesPath(relPath string) bool {
	matched, _ := ps.MatchesPathWithPattern(relPath)
	return matched
}

// MatchesPathWithPattern returns the first pattern matching relPath.
func (ps *PatternSet) MatchesPathWithPattern(relPath string) (bool, *Pattern) {
	normalized := filepath.ToSlash(relPath)
	for _, p := range ps.patterns {
		if ps.match(p.Glob, normalized) {
			return true, p
		}
	}
	return false, nil
}

// parsePatternLine trims a raw line and reports whether it holds a pattern.
func parsePatternLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	return filepath.ToSlash(trimmed), true
}

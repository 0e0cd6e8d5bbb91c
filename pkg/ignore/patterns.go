// File: pkg/ignore/patterns.go
package ignore

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchFunc reports whether a path relative to the traversal root matches a
// single ignore pattern. Implementations must be pure.
type MatchFunc func(pattern, relPath string) bool

// Supported pattern syntaxes.
const (
	SyntaxFnmatch    = "fnmatch"
	SyntaxDoublestar = "doublestar"
)

// compiled caches fnmatch translations. A nil entry marks a pattern whose
// translation does not compile; such a pattern never matches.
var compiled sync.Map // map[string]*regexp.Regexp

// Fnmatch matches the whole relative path against a shell-style glob.
// '*' matches any run of characters, path separators included.
func Fnmatch(pattern, relPath string) bool {
	re := compileFnmatch(pattern)
	if re == nil {
		return false
	}
	return re.MatchString(relPath)
}

// Doublestar matches with segment-aware glob semantics, where '*' stops at
// '/' and '**' spans directories.
func Doublestar(pattern, relPath string) bool {
	matched, err := doublestar.Match(pattern, relPath)
	return err == nil && matched
}

// Syntax returns the MatchFunc registered under name.
func Syntax(name string) (MatchFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SyntaxFnmatch:
		return Fnmatch, nil
	case SyntaxDoublestar:
		return Doublestar, nil
	default:
		return nil, fmt.Errorf("unknown pattern syntax %q (want %s or %s)", name, SyntaxFnmatch, SyntaxDoublestar)
	}
}

func compileFnmatch(pattern string) *regexp.Regexp {
	if v, ok := compiled.Load(pattern); ok {
		return v.(*regexp.Regexp)
	}
	re, err := regexp.Compile(translateFnmatch(pattern))
	if err != nil {
		re = nil
	}
	compiled.Store(pattern, re)
	return re
}

// translateFnmatch converts a shell glob into an anchored regular expression.
func translateFnmatch(pattern string) string {
	var sb strings.Builder
	sb.WriteString(`^(?s:`)

	runes := []rune(pattern)
	n := len(runes)
	for i := 0; i < n; {
		c := runes[i]
		i++
		switch c {
		case '*':
			for i < n && runes[i] == '*' {
				i++
			}
			sb.WriteString(`.*`)
		case '?':
			sb.WriteString(`.`)
		case '[':
			j := i
			if j < n && runes[j] == '!' {
				j++
			}
			if j < n && runes[j] == ']' {
				j++
			}
			for j < n && runes[j] != ']' {
				j++
			}
			if j >= n {
				// Unterminated set is a literal bracket.
				sb.WriteString(`\[`)
				continue
			}
			sb.WriteString(bracketClass(runes[i:j]))
			i = j + 1
		default:
			sb.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	sb.WriteString(`)\z`)
	return sb.String()
}

// bracketClass renders the body of a [...] set as a regexp character class.
func bracketClass(body []rune) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for k, r := range body {
		switch {
		case k == 0 && r == '!':
			sb.WriteByte('^')
		case k == 0 && r == '^':
			sb.WriteString(`\^`)
		case r == '\\' || r == '[' || r == ']':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

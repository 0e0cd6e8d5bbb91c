// File: pkg/combine/types.go
package combine

import "errors"

// ToolName names the default output and ignore files.
const ToolName = "ingestipy"

// Output layout and default file names.
const (
	HeaderFormat      = "// file: %s:\n" // Header line preceding each file body.
	RecordSeparator   = "\n\n"           // Written after each file body.
	OutputSuffix      = "_" + ToolName + "_output.txt"
	DefaultIgnoreFile = ToolName + "_ignore.txt"
)

// VCSDirs lists version-control metadata directory names that are always
// excluded, whatever the ignore patterns say.
var VCSDirs = []string{".git"}

// ErrOutput marks failures to open, write, flush or close the output sink.
var ErrOutput = errors.New("output stream failure")

// FileRecord is one included file. It is written immediately and discarded.
type FileRecord struct {
	Path    string // Path relative to the traversal root, slash separated.
	Content string // Decoded file content; empty when the file could not be read.
}

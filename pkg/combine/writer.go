// File: pkg/combine/writer.go
package combine

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
)

// RecordWriter streams FileRecords to the output sink.
type RecordWriter struct {
	w     *bufio.Writer
	count int
}

// NewRecordWriter wraps w in a buffered record writer.
func NewRecordWriter(w io.Writer) *RecordWriter {
	return &RecordWriter{w: bufio.NewWriter(w)}
}

// WriteRecord writes the header line, the content and the separator.
// Errors are wrapped with ErrOutput.
func (rw *RecordWriter) WriteRecord(rec FileRecord) error {
	if _, err := fmt.Fprintf(rw.w, HeaderFormat, filepath.FromSlash(rec.Path)); err != nil {
		return fmt.Errorf("%w: failed to write header for %s: %w", ErrOutput, rec.Path, err)
	}
	if _, err := rw.w.WriteString(rec.Content); err != nil {
		return fmt.Errorf("%w: failed to write content for %s: %w", ErrOutput, rec.Path, err)
	}
	if _, err := rw.w.WriteString(RecordSeparator); err != nil {
		return fmt.Errorf("%w: failed to write separator for %s: %w", ErrOutput, rec.Path, err)
	}
	rw.count++
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (rw *RecordWriter) Flush() error {
	if err := rw.w.Flush(); err != nil {
		return fmt.Errorf("%w: failed to flush output: %w", ErrOutput, err)
	}
	return nil
}

// Count returns the number of records written.
func (rw *RecordWriter) Count() int {
	return rw.count
}

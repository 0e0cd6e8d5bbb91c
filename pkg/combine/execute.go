// File: pkg/combine/execute.go
package combine

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"
)

// Execute loads the ignore patterns named by resolved arguments and writes
// the concatenated output. Errors wrapping ErrOutput are fatal sink failures.
func Execute(args Arguments, logger *zap.Logger) error {
	patterns, err := LoadPatterns(args, logger)
	if err != nil {
		return fmt.Errorf("failed to load ignore patterns: %w", err)
	}
	return RunCombine(args, NewFilter(args.InputDir, args.OutputPath, patterns), logger)
}

// RunCombine opens the output file, combines the input tree into it and
// closes it on every path.
func RunCombine(args Arguments, filter *Filter, logger *zap.Logger) (err error) {
	startTime := time.Now()
	logger.Debug("Starting combine process",
		zap.String("inputDir", args.InputDir),
		zap.String("outputPath", args.OutputPath))

	outFile, err := os.Create(args.OutputPath)
	if err != nil {
		return fmt.Errorf("%w: failed to create output file: %w", ErrOutput, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: failed to close output file: %w", ErrOutput, closeErr)
		}
	}()

	count, err := Combine(os.DirFS(args.InputDir), outFile, filter, logger)
	if err != nil {
		return err
	}

	logger.Info("Files written",
		zap.String("outputPath", args.OutputPath),
		zap.Int("totalFiles", count),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// Combine walks fsys and writes a record for every included file to w. It
// returns the number of records written. A file that cannot be read is
// logged and written with an empty body.
func Combine(fsys fs.FS, w io.Writer, filter *Filter, logger *zap.Logger) (int, error) {
	rw := NewRecordWriter(w)

	err := Walk(fsys, filter, logger, func(relPath string) error {
		content, readErr := ReadFileText(fsys, relPath)
		if readErr != nil {
			logger.Error("Error reading file", zap.String("file", relPath), zap.Error(readErr))
			content = ""
		} else {
			logger.Debug("Adding file", zap.String("file", relPath), zap.Int("contentSize", len(content)))
		}
		return rw.WriteRecord(FileRecord{Path: relPath, Content: content})
	})
	if err != nil {
		// Flush what was written so far; the walk error takes precedence.
		_ = rw.Flush()
		return rw.Count(), err
	}

	if err := rw.Flush(); err != nil {
		return rw.Count(), err
	}
	return rw.Count(), nil
}

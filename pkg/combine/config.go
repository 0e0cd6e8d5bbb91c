// File: pkg/combine/config.go
package combine

import (
	"fmt"
	"os"
	"path/filepath"

	"ingestipy/pkg/ignore"

	"go.uber.org/zap"
)

// Arguments holds the configuration options for one ingest run. After
// Resolve every path is absolute.
type Arguments struct {
	InputDir   string // Directory to traverse.
	OutputPath string // Destination of the concatenated output.
	IgnoreFile string // Ignore file; empty means no patterns.
	Syntax     string // Pattern syntax, see ignore.Syntax.
}

// Resolve fills unset arguments with their defaults: the working directory
// as input, <input>/<basename>_ingestipy_output.txt as output, and
// <input>/ingestipy_ignore.txt as ignore file when it exists. The input is
// not required to exist.
func Resolve(args Arguments, logger *zap.Logger) (Arguments, error) {
	resolved := args

	if resolved.InputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Arguments{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		resolved.InputDir = cwd
		logger.Info("No input directory provided. Using current directory", zap.String("inputDir", cwd))
	}
	inputDir, err := filepath.Abs(resolved.InputDir)
	if err != nil {
		return Arguments{}, fmt.Errorf("failed to get absolute path: %w", err)
	}
	// An unusable input produces an empty output rather than an error; only
	// output failures end the run.
	if info, statErr := os.Stat(inputDir); statErr != nil {
		logger.Warn("Input directory cannot be accessed, nothing will be included",
			zap.String("inputDir", inputDir), zap.Error(statErr))
	} else if !info.IsDir() {
		logger.Warn("Input path is not a directory, nothing will be included", zap.String("inputDir", inputDir))
	}
	resolved.InputDir = inputDir

	if resolved.OutputPath == "" {
		resolved.OutputPath = DefaultOutputPath(inputDir)
		logger.Info("No output path provided. Using default", zap.String("outputPath", resolved.OutputPath))
	}
	if resolved.OutputPath, err = filepath.Abs(resolved.OutputPath); err != nil {
		return Arguments{}, fmt.Errorf("failed to get absolute output path: %w", err)
	}

	if resolved.IgnoreFile == "" {
		candidate := filepath.Join(inputDir, DefaultIgnoreFile)
		if isRegularFile(candidate) {
			resolved.IgnoreFile = candidate
			logger.Info("Using ignore file", zap.String("ignoreFile", candidate))
		} else {
			logger.Warn("Ignore file was not given, and the default was also not found",
				zap.String("defaultIgnoreFile", DefaultIgnoreFile))
		}
	}
	if resolved.IgnoreFile != "" {
		if resolved.IgnoreFile, err = filepath.Abs(resolved.IgnoreFile); err != nil {
			return Arguments{}, fmt.Errorf("failed to get absolute ignore file path: %w", err)
		}
	}

	return resolved, nil
}

// DefaultOutputPath returns <inputDir>/<basename(inputDir)>_ingestipy_output.txt.
func DefaultOutputPath(inputDir string) string {
	name := filepath.Base(filepath.Clean(inputDir))
	return filepath.Join(inputDir, name+OutputSuffix)
}

// LoadPatterns reads the ignore patterns named by args.
func LoadPatterns(args Arguments, logger *zap.Logger) (*ignore.PatternSet, error) {
	match, err := ignore.Syntax(args.Syntax)
	if err != nil {
		return nil, err
	}
	if args.IgnoreFile == "" {
		logger.Info("No ignore patterns loaded.")
		return ignore.NewPatternSet(match, logger), nil
	}
	ps := ignore.LoadFile(args.IgnoreFile, match, logger)
	logger.Debug("Loaded ignore patterns", zap.Int("totalPatterns", ps.Len()), zap.Strings("patterns", ps.Globs()))
	return ps, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

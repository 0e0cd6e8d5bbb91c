package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"ingestipy/cmd"
	"ingestipy/pkg/combine"
	"ingestipy/pkg/logging"
	"ingestipy/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger, level, err := logging.Setup(false, combine.ToolName, version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Fatal exits with status 1 after flushing the entry.
	if err := cmd.Execute(logger, &level); err != nil {
		if errors.Is(err, combine.ErrOutput) {
			logger.Fatal("Exception thrown while writing output", zap.Error(err))
		}
		logger.Fatal("ingestipy execution failed", zap.Error(err))
	}

	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}

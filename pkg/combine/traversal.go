// File: pkg/combine/traversal.go
package combine

import (
	"io/fs"

	"go.uber.org/zap"
)

// VisitFunc is called for every included regular file, in traversal order.
type VisitFunc func(relPath string) error

// Walk traverses fsys depth-first in lexical order. Excluded directories are
// pruned before descent, so nothing beneath them is visited or matched.
// Unreadable entries are logged and skipped; only errors returned by visit
// stop the walk.
func Walk(fsys fs.FS, filter *Filter, logger *zap.Logger, visit VisitFunc) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == "." {
			return nil
		}

		if skip, reason := filter.ShouldSkip(path); skip {
			if d.IsDir() {
				logger.Debug("Skipping ignored directory", zap.String("directory", path), zap.String("reason", reason))
				return fs.SkipDir
			}
			logger.Debug("Skipping ignored file", zap.String("file", path), zap.String("reason", reason))
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !isRegular(fsys, path, d, logger) {
			return nil
		}
		return visit(path)
	})
}

// isRegular reports whether the entry is a regular file, following symlinks.
// Symlinked directories are not descended.
func isRegular(fsys fs.FS, path string, d fs.DirEntry, logger *zap.Logger) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular()
	}
	info, err := fs.Stat(fsys, path)
	if err != nil {
		logger.Warn("Failed to resolve symlink", zap.String("path", path), zap.Error(err))
		return false
	}
	if !info.Mode().IsRegular() {
		logger.Debug("Skipping non-regular symlink target", zap.String("path", path))
		return false
	}
	return true
}

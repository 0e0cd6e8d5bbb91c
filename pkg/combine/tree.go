// File: pkg/combine/tree.go
package combine

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// TreeStats counts the entries rendered by GenerateTree.
type TreeStats struct {
	Dirs  int
	Files int
}

// GenerateTree renders the directories and regular files of fsys that
// survive filter, using the same pruning as Walk. rootName labels the
// first line.
func GenerateTree(fsys fs.FS, rootName string, filter *Filter, logger *zap.Logger) (string, TreeStats, error) {
	var stats TreeStats
	var treeBuilder strings.Builder

	treeBuilder.WriteString(rootName + "/\n")
	subtree, err := generateTreeRecursively(fsys, ".", filter, "", &stats, logger)
	if err != nil {
		return "", stats, err
	}
	if subtree != "" {
		treeBuilder.WriteString(subtree)
		treeBuilder.WriteString("\n")
	}
	return treeBuilder.String(), stats, nil
}

func generateTreeRecursively(fsys fs.FS, dir string, filter *Filter, prefix string, stats *TreeStats, logger *zap.Logger) (string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory '%s': %w", dir, err)
	}

	// Keep only what the ingest would visit.
	kept := entries[:0]
	for _, entry := range entries {
		relPath := path.Join(dir, entry.Name())
		if skip, reason := filter.ShouldSkip(relPath); skip {
			logger.Debug("Skipping ignored entry in tree", zap.String("path", relPath), zap.String("reason", reason))
			continue
		}
		if !entry.IsDir() && !isRegular(fsys, relPath, entry, logger) {
			continue
		}
		kept = append(kept, entry)
	}

	// Directories first, then files, alphabetically.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].IsDir() != kept[j].IsDir() {
			return kept[i].IsDir()
		}
		return strings.ToLower(kept[i].Name()) < strings.ToLower(kept[j].Name())
	})

	var output []string
	for i, entry := range kept {
		connector := "├── "
		extension := "│   "
		if i == len(kept)-1 {
			connector = "└── "
			extension = "    "
		}

		if !entry.IsDir() {
			output = append(output, prefix+connector+entry.Name())
			stats.Files++
			continue
		}

		output = append(output, prefix+connector+entry.Name()+"/")
		stats.Dirs++
		subtree, err := generateTreeRecursively(fsys, path.Join(dir, entry.Name()), filter, prefix+extension, stats, logger)
		if err != nil {
			logger.Warn("Failed to generate subtree", zap.String("directory", entry.Name()), zap.Error(err))
			continue
		}
		if subtree != "" {
			output = append(output, subtree)
		}
	}

	return strings.Join(output, "\n"), nil
}

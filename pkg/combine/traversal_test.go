package combine

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func collect(t *testing.T, fsys fstest.MapFS, filter *Filter) []string {
	t.Helper()
	var visited []string
	err := Walk(fsys, filter, zap.NewNop(), func(relPath string) error {
		visited = append(visited, relPath)
		return nil
	})
	require.NoError(t, err)
	return visited
}

func TestWalkOrderAndPruning(t *testing.T) {
	fsys := fstest.MapFS{
		"z.txt":            {Data: []byte("z")},
		"a/b.txt":          {Data: []byte("b")},
		"a/a.txt":          {Data: []byte("a")},
		"a/deep/x.txt":     {Data: []byte("x")},
		"skip/keep.txt":    {Data: []byte("k")},
		"docs/readme.md":   {Data: []byte("r")},
		"docs/guide/g.txt": {Data: []byte("g")},
	}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name: "no patterns",
			want: []string{"a/a.txt", "a/b.txt", "a/deep/x.txt", "docs/guide/g.txt", "docs/readme.md", "skip/keep.txt", "z.txt"},
		},
		{
			name:     "directory pattern prunes subtree",
			patterns: []string{"skip"},
			want:     []string{"a/a.txt", "a/b.txt", "a/deep/x.txt", "docs/guide/g.txt", "docs/readme.md", "z.txt"},
		},
		{
			name:     "contents pattern spans separators",
			patterns: []string{"docs/*"},
			want:     []string{"a/a.txt", "a/b.txt", "a/deep/x.txt", "skip/keep.txt", "z.txt"},
		},
		{
			name:     "flat match on whole path",
			patterns: []string{"*.txt"},
			want:     []string{"docs/readme.md"},
		},
		{
			name:     "nested directory pattern",
			patterns: []string{"a/deep"},
			want:     []string{"a/a.txt", "a/b.txt", "docs/guide/g.txt", "docs/readme.md", "skip/keep.txt", "z.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, fsys, NewFilter("/root", "", patternSet(tt.patterns...)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWalkStopsOnVisitError(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt": {Data: []byte("a")},
		"b.txt": {Data: []byte("b")},
	}

	var visited []string
	err := Walk(fsys, NewFilter("/root", "", nil), zap.NewNop(), func(relPath string) error {
		visited = append(visited, relPath)
		return ErrOutput
	})
	assert.ErrorIs(t, err, ErrOutput)
	assert.Equal(t, []string{"a.txt"}, visited)
}

func TestWalkSymlinks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "real", "file.txt"), "real")
	if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "linkdir")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "real", "file.txt"), filepath.Join(dir, "linkfile.txt")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "absent"), filepath.Join(dir, "dangling")))

	var visited []string
	err := Walk(os.DirFS(dir), NewFilter(dir, "", nil), zap.NewNop(), func(relPath string) error {
		visited = append(visited, relPath)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"linkfile.txt", "real/file.txt"}, visited)
}

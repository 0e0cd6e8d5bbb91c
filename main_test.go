package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mainArgsEnv carries newline-separated arguments into a re-executed test
// binary, which then runs main instead of the tests.
const mainArgsEnv = "INGESTIPY_MAIN_ARGS"

func TestMain(m *testing.M) {
	if args, ok := os.LookupEnv(mainArgsEnv); ok {
		os.Args = []string{"ingestipy"}
		if args != "" {
			os.Args = append(os.Args, strings.Split(args, "\n")...)
		}
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runMain executes main in a child process and returns its exit code.
func runMain(t *testing.T, args ...string) int {
	t.Helper()
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), mainArgsEnv+"="+strings.Join(args, "\n"))
	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	require.NoError(t, err)
	return 0
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file1.txt"), []byte("Hello, World!"), 0o644))
	outputDir := filepath.Join(dir, "output_dir")
	require.NoError(t, os.Mkdir(outputDir, 0o755))
	ignoreDir := filepath.Join(dir, "ignoredir")
	require.NoError(t, os.Mkdir(ignoreDir, 0o755))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"success", []string{"-in", dir, "-out", filepath.Join(dir, "ok.txt")}, 0},
		{"output is a directory", []string{"-in", dir, "-out", outputDir, "-v"}, 1},
		{"ignore path is a directory", []string{"-in", dir, "-out", filepath.Join(dir, "ok2.txt"), "-ignore", ignoreDir}, 0},
		{"missing input with explicit output", []string{"-in", filepath.Join(dir, "absent"), "-out", filepath.Join(dir, "empty.txt")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runMain(t, tt.args...))
		})
	}

	data, err := os.ReadFile(filepath.Join(dir, "ok.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hello, World!")

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"ingestipy/pkg/combine"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// newTreeCmd previews the files an ingest would include.
func newTreeCmd(logger *zap.Logger, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the filtered directory tree of the input",
		Long:  `Print the directory tree of the input directory after applying the same exclusions as the ingest.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := combine.Resolve(opts.arguments(), logger)
			if err != nil {
				return err
			}
			patterns, err := combine.LoadPatterns(resolved, logger)
			if err != nil {
				return err
			}

			filter := combine.NewFilter(resolved.InputDir, resolved.OutputPath, patterns)
			tree, stats, err := combine.GenerateTree(os.DirFS(resolved.InputDir), filepath.Base(resolved.InputDir), filter, logger)
			if err != nil {
				return fmt.Errorf("failed to generate tree structure: %w", err)
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprint(out, tree); err != nil {
				return fmt.Errorf("failed to print tree: %w", err)
			}
			if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				logger.Info("Tree generated", zap.Int("directories", stats.Dirs), zap.Int("files", stats.Files))
			}
			return nil
		},
	}
}

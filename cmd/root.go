package cmd

import (
	"os"

	"ingestipy/pkg/combine"
	"ingestipy/pkg/ignore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// options holds the flag values shared by all commands.
type options struct {
	inputDir   string
	outputPath string
	ignoreFile string
	syntax     string
	verbose    bool
}

func (o *options) arguments() combine.Arguments {
	return combine.Arguments{
		InputDir:   o.inputDir,
		OutputPath: o.outputPath,
		IgnoreFile: o.ignoreFile,
		Syntax:     o.syntax,
	}
}

// NewRootCmd builds the command tree. The root command runs the ingest;
// level, when set, is raised to debug by --verbose.
func NewRootCmd(logger *zap.Logger, level *zap.AtomicLevel) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ingestipy",
		Short: "ingestipy concatenates a directory tree into a single text file",
		Long: `ingestipy writes every non-ignored file under the input directory into one
output file, each preceded by a "// file: <relative/path>:" header.

Ignore patterns are read one per line from the ignore file and matched
against paths relative to the input directory. The output file itself and
.git directories are always excluded.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose && level != nil {
				level.SetLevel(zapcore.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := combine.Resolve(opts.arguments(), logger)
			if err != nil {
				return err
			}
			return combine.Execute(resolved, logger)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.inputDir, "input_dir", "", "Input directory path (default: current directory)")
	flags.StringVar(&opts.outputPath, "output_path", "", "Output file path (default: <input>/<name>"+combine.OutputSuffix+")")
	flags.StringVar(&opts.ignoreFile, "ignore_file_path", "", "Path to ignore file (default: <input>/"+combine.DefaultIgnoreFile+" if present)")
	flags.StringVar(&opts.syntax, "syntax", ignore.SyntaxFnmatch, "Ignore pattern syntax: fnmatch or doublestar")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newTreeCmd(logger, opts), newVersionCmd())
	return rootCmd
}

// Execute runs the command tree against the process arguments.
func Execute(logger *zap.Logger, level *zap.AtomicLevel) error {
	rootCmd := NewRootCmd(logger, level)
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	return rootCmd.Execute()
}

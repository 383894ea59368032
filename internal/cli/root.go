// Package cli defines the proj2tree command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/proj2tree/internal/app"
	"github.com/bethropolis/proj2tree/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the proj2tree command. Running it renders the target
// directory with stdout and stderr as given.
func NewRootCommand(version string, stdout, stderr io.Writer) *cobra.Command {
	cfg := config.New()
	cfg.Version = version

	cmd := &cobra.Command{
		Use:   "proj2tree [directory]",
		Short: "Render a directory tree and its file contents as Markdown",
		Long: `proj2tree writes a Markdown snapshot of a directory: an ASCII tree of
its structure followed by every text file in a fenced code block.

Hidden files, .gitignore matches and the built-in exclusion list are left
out. The result goes to <directory>/tree.md unless --output or --print is
given.

Examples:
  proj2tree                 # snapshot the current directory into ./tree.md
  proj2tree ./service -p    # print the snapshot to stdout
  proj2tree -T -o dump.md   # contents only, written to dump.md`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.RootDir = args[0]
			}
			cfg.Finalize()
			return app.NewWithWriters(cfg, stdout, stderr).Run()
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&cfg.OutputFile, "output", "o", "", "Output file (default <directory>/tree.md)")
	f.BoolVarP(&cfg.NoTree, "no-tree", "T", false, "Do not render the file tree")
	f.BoolVarP(&cfg.NoContents, "no-contents", "C", false, "Do not render file contents")
	f.BoolVarP(&cfg.PrintToConsole, "print", "p", false, "Print the result to stdout instead of a file")
	f.BoolVarP(&cfg.NoGitignore, "no-gitignore", "G", false, "Ignore the rules in .gitignore")
	f.StringVar(&cfg.PolicyFile, "config", "", "Exclusion policy file (TOML or YAML) replacing the built-in one")
	f.Int64Var(&cfg.MaxFileSize, "max-size", 0, "Skip contents of files larger than this many bytes (0 = policy default)")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging")
	f.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Only log warnings and errors")
	f.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error, none); overrides --verbose/--quiet")
	f.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored log output")
	f.BoolVar(&cfg.ShowSkipped, "show-skipped", false, "List skipped files and directories with reasons at the end")

	return cmd
}

// Execute runs the root command against os.Args and exits non-zero on error.
func Execute(version string) {
	cmd := NewRootCommand(version, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

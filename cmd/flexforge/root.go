package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/flexforge/internal/logger"
)

type rootFlags struct {
	verbose bool
	logFile string
}

// isTerminal reports whether stdout is interactive. Tests replace it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	opts := editorOptions{}

	cmd := &cobra.Command{
		Use:           "flexforge",
		Short:         "flexforge builds flexbox layouts in the terminal and exports them as HTML, CSS, and JSX",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			opts.NonInteractive = !isTerminal()
			return editorCmdRunner(cmd, flags, opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")

	cmd.Flags().StringVarP(&opts.LayoutPath, "layout", "l", "", "Layout file to open (created on save if missing)")
	cmd.Flags().StringVarP(&opts.ExportDir, "export-dir", "o", "", "Directory the editor writes exports to")
	cmd.Flags().BoolVar(&opts.Commit, "commit", false, "Commit written exports to the enclosing git repository")

	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) level() string {
	if f.verbose {
		return "debug"
	}
	return "info"
}

// consoleLogger logs human-readable lines to w, or to --log-file when set.
// The returned func releases the log file.
func (f *rootFlags) consoleLogger(w io.Writer) (*logger.Logger, func(), error) {
	if f.logFile != "" {
		return f.fileLogger()
	}
	log, err := logger.New(logger.Options{Level: f.level(), HumanReadable: true, Writer: w})
	return log, func() {}, err
}

// fileLogger logs JSON to --log-file, or nowhere when it is unset.
func (f *rootFlags) fileLogger() (*logger.Logger, func(), error) {
	if f.logFile == "" {
		return logger.Discard(), func() {}, nil
	}
	log, closer, err := logger.OpenFile(f.logFile, f.level())
	if err != nil {
		return nil, nil, err
	}
	return log, func() { closer.Close() }, nil
}

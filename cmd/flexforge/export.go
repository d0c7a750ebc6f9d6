package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flexforge/internal/codegen"
	"github.com/alexisbeaulieu97/flexforge/internal/layout"
	"github.com/alexisbeaulieu97/flexforge/internal/publish"
)

type exportOptions struct {
	LayoutPath string
	Formats    string
	OutDir     string
	WithLayout bool
	Commit     bool
	Message    string
	Verify     bool
	DryRun     bool
}

func newExportCmd(root *rootFlags) *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate HTML, CSS, WordPress, and JSX from a layout file",
		Long: `Generate code from a layout file. Without --out the generated source is
printed to stdout; with --out every selected artifact is written to that
directory and the changes are summarized.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.LayoutPath, "layout", "l", "", "Layout file (defaults to the starter layout)")
	cmd.Flags().StringVarP(&opts.Formats, "format", "f", "all", "Formats to export: html, css, wordpress, jsx, or all (comma separated)")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Write artifacts into this directory instead of stdout")
	cmd.Flags().BoolVar(&opts.WithLayout, "with-layout", false, "Also write layout.yaml next to the artifacts")
	cmd.Flags().BoolVar(&opts.Commit, "commit", false, "Commit changed artifacts to the enclosing git repository")
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "Commit message")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Evaluate the generated JSX style objects before exporting")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would change without writing")

	return cmd
}

func runExport(cmd *cobra.Command, root *rootFlags, opts exportOptions) error {
	formats, err := parseFormats(opts.Formats)
	if err != nil {
		return err
	}
	if opts.Commit && opts.OutDir == "" {
		return fmt.Errorf("--commit requires --out")
	}

	doc, err := loadDocument(opts.LayoutPath, false)
	if err != nil {
		return err
	}

	if opts.Verify {
		if err := codegen.VerifyJSX(doc); err != nil {
			return fmt.Errorf("verify jsx: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if opts.OutDir == "" {
		printArtifacts(out, doc, formats)
		return nil
	}

	log, closeLog, err := root.consoleLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	res, err := publish.Publish(cmd.Context(), doc, publish.Options{
		Dir:           opts.OutDir,
		Formats:       formats,
		IncludeLayout: opts.WithLayout,
		DryRun:        opts.DryRun,
		Commit:        opts.Commit,
		Message:       opts.Message,
		Logger:        log,
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	printSummary(out, res, opts.DryRun)
	return nil
}

// printArtifacts writes generated source to w. Several artifacts are
// separated by a header naming each file.
func printArtifacts(w io.Writer, doc layout.Document, formats []codegen.Format) {
	if len(formats) == 1 {
		fmt.Fprintln(w, strings.TrimRight(formats[0].Generate(doc), "\n"))
		return
	}
	for i, f := range formats {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "==> %s <==\n", f.FileName())
		fmt.Fprintln(w, strings.TrimRight(f.Generate(doc), "\n"))
	}
}

func printSummary(w io.Writer, res *publish.Result, dryRun bool) {
	verb := "wrote"
	if dryRun {
		verb = "would write"
	}
	for _, f := range res.Files {
		if !f.Changed {
			fmt.Fprintf(w, "unchanged %s\n", f.Path)
			continue
		}
		fmt.Fprintf(w, "%s %s (+%d -%d)\n", verb, f.Path, f.Added, f.Removed)
		if dryRun {
			fmt.Fprint(w, f.Diff)
		}
	}
	if res.CommitHash != "" {
		fmt.Fprintf(w, "committed %s\n", res.CommitHash)
	}
}

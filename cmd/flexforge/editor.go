package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flexforge/internal/tui"
)

type editorOptions struct {
	LayoutPath     string
	ExportDir      string
	Commit         bool
	NonInteractive bool
}

var editorCmdRunner = runEditor

func runEditor(cmd *cobra.Command, flags *rootFlags, opts editorOptions) error {
	doc, err := loadDocument(opts.LayoutPath, true)
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so the editor only logs to a file.
	log, closeLog, err := flags.fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	model := tui.NewModel(doc, tui.Options{
		LayoutPath: opts.LayoutPath,
		ExportDir:  opts.ExportDir,
		Commit:     opts.Commit,
		Logger:     log,
	})

	if opts.NonInteractive {
		fmt.Fprint(cmd.OutOrStdout(), model.Static())
		return nil
	}

	log.Info("editor started", "layout", opts.LayoutPath, "items", len(doc.Items))
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	log.Info("editor closed")
	return nil
}

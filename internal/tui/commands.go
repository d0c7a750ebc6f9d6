package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/flexforge/internal/config"
	"github.com/alexisbeaulieu97/flexforge/internal/layout"
	"github.com/alexisbeaulieu97/flexforge/internal/publish"
)

// exportCmd writes every artifact and the layout document to opts.ExportDir.
func exportCmd(doc layout.Document, opts Options) tea.Cmd {
	return func() tea.Msg {
		res, err := publish.Publish(context.Background(), doc, publish.Options{
			Dir:           opts.ExportDir,
			IncludeLayout: true,
			Commit:        opts.Commit,
			Logger:        opts.Logger,
		})
		return ExportDoneMsg{Dir: opts.ExportDir, Result: res, Err: err}
	}
}

// saveCmd writes the layout document to path.
func saveCmd(doc layout.Document, path string) tea.Cmd {
	return func() tea.Msg {
		return LayoutSavedMsg{Path: path, Err: config.Save(path, doc)}
	}
}

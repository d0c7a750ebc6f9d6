// Package tui is the terminal editor: a preview canvas of the flex container,
// a control panel for container and item properties, and a code view of the
// generated exports.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/flexforge/internal/editor"
	"github.com/alexisbeaulieu97/flexforge/internal/layout"
	"github.com/alexisbeaulieu97/flexforge/internal/logger"
	"github.com/alexisbeaulieu97/flexforge/internal/preview"
	"github.com/alexisbeaulieu97/flexforge/internal/resize"
)

const (
	DefaultLayoutPath = "layout.yaml"
	DefaultExportDir  = "export"
)

// Screen geometry. The canvas content starts one row below the title and
// inside its border.
const (
	panelWidth    = 38
	canvasOriginX = 1
	canvasOriginY = 2
	chromeRows    = 5 // title, canvas border, status, help
	minWidth      = 60
	minHeight     = 16

	keyboardStep     = 10
	keyboardFineStep = 1
)

// Options configures the editor program.
type Options struct {
	// LayoutPath is where "s" saves the layout document.
	LayoutPath string
	// ExportDir is where "w" writes the generated files.
	ExportDir string
	// Commit records written files in the git repository containing ExportDir.
	Commit bool
	Logger *logger.Logger
}

// Model is the Bubble Tea model of the editor.
type Model struct {
	editor  *editor.Editor
	notices *noticeQueue
	opts    Options
	log     *logger.Logger

	mode    Mode
	tab     Tab
	cursor  int
	codeTab int

	input   textinput.Model
	editing property
	help    help.Model

	dragging bool
	keyDrag  bool
	pointer  resize.Point

	status    string
	statusErr bool

	width  int
	height int
}

// NewModel creates an editor model over a copy of doc.
func NewModel(doc layout.Document, opts Options) Model {
	if opts.LayoutPath == "" {
		opts.LayoutPath = DefaultLayoutPath
	}
	if opts.ExportDir == "" {
		opts.ExportDir = DefaultExportDir
	}

	notices := &noticeQueue{}
	ed := editor.New(doc, editor.WithLogger(opts.Logger), editor.WithNotifier(notices))

	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 64
	in.Width = panelWidth - 8

	return Model{
		editor:  ed,
		notices: notices,
		opts:    opts,
		log:     opts.Logger,
		input:   in,
		help:    help.New(),
		width:   100,
		height:  30,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Editor exposes the interaction controller behind the model.
func (m Model) Editor() *editor.Editor {
	return m.editor
}

// Mode returns the active screen.
func (m Model) Mode() Mode {
	return m.mode
}

// Tab returns the active control panel tab.
func (m Model) Tab() Tab {
	return m.tab
}

// Status returns the message shown in the status line.
func (m Model) Status() string {
	return m.status
}

func (m Model) canvasSize() (cols, rows int) {
	cols = m.width - panelWidth - 2
	rows = m.height - chromeRows
	if cols < 10 {
		cols = 10
	}
	if rows < 4 {
		rows = 4
	}
	return cols, rows
}

func (m Model) frame() preview.Frame {
	cols, rows := m.canvasSize()
	return preview.Arrange(m.editor.Document(), preview.Viewport{
		Width:  float64(cols * cellWidth),
		Height: float64(rows * cellHeight),
	})
}

func (m Model) canvas() canvas {
	cols, rows := m.canvasSize()
	return newCanvas(m.frame(), cols, rows)
}

func (m Model) currentProperty() (property, bool) {
	props := propertiesFor(m.tab)
	if m.cursor < 0 || m.cursor >= len(props) {
		return property{}, false
	}
	return props[m.cursor], true
}

// propertyValue reads a property from the container or the selected item.
func (m Model) propertyValue(p property) (layout.Value, bool) {
	if m.tab == TabContainer {
		return m.editor.Container().Get(p.name)
	}
	item, ok := m.editor.SelectedItem()
	if !ok {
		return layout.Value{}, false
	}
	return item.Styles.Get(p.name)
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/flexforge/internal/layout"
	"github.com/alexisbeaulieu97/flexforge/internal/resize"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		var next tea.Model
		next, cmd = m.handleKeyPress(msg)
		m = next.(Model)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case ExportDoneMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "export failed", "dir", msg.Dir)
			m.setError(fmt.Sprintf("Export failed: %v", msg.Err))
			return m, nil
		}
		m.setStatus(exportSummary(msg))
		return m, nil

	case LayoutSavedMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "save failed", "path", msg.Path)
			m.setError(fmt.Sprintf("Save failed: %v", msg.Err))
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Layout saved to %s", msg.Path))
		return m, nil

	default:
		if m.mode == ModeInput {
			m.input, cmd = m.input.Update(msg)
		}
	}

	if n, ok := m.notices.drain(); ok {
		m.setStatus(n.Message)
	}
	return m, cmd
}

func exportSummary(msg ExportDoneMsg) string {
	if msg.Result == nil {
		return fmt.Sprintf("Wrote files to %s", msg.Dir)
	}
	s := fmt.Sprintf("Wrote %d files to %s (%d changed)", len(msg.Result.Files), msg.Dir, len(msg.Result.Changed()))
	if h := msg.Result.CommitHash; h != "" {
		if len(h) > 7 {
			h = h[:7]
		}
		s += ", committed " + h
	}
	return s
}

// handleKeyPress dispatches keyboard input based on the current mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch {
	case m.mode == ModeInput:
		return m.handleInputKeys(msg)
	case m.keyDrag:
		return m.handleResizeKeys(msg), nil
	case m.mode == ModeCode:
		return m.handleCodeKeys(msg)
	default:
		return m.handleEditKeys(msg)
	}
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, keys.SwitchTab):
		if m.tab == TabContainer {
			m.tab = TabItems
		} else {
			m.tab = TabContainer
		}
		m.cursor = 0

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(propertiesFor(m.tab))-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Prev):
		m.cycleProperty(-1)

	case key.Matches(msg, keys.Next):
		m.cycleProperty(1)

	case key.Matches(msg, keys.Edit):
		return m.editProperty()

	case key.Matches(msg, keys.SelectNext):
		m.selectNext()

	case key.Matches(msg, keys.Deselect):
		m.editor.ClearSelection()

	case key.Matches(msg, keys.Add):
		m.editor.AddItem()
		m.showItems()

	case key.Matches(msg, keys.Duplicate):
		if _, ok := m.editor.DuplicateSelected(); !ok {
			m.setStatus("Select an item to duplicate")
			break
		}
		m.showItems()

	case key.Matches(msg, keys.Delete):
		if id, ok := m.editor.Selected(); ok && m.editor.DeleteSelected() {
			m.setStatus(fmt.Sprintf("Item %d deleted", id))
		}

	case key.Matches(msg, keys.Resize):
		m.beginKeyboardResize()

	case key.Matches(msg, keys.Code):
		m.mode = ModeCode

	case key.Matches(msg, keys.Write):
		return m, exportCmd(m.editor.Document(), m.opts)

	case key.Matches(msg, keys.Save):
		return m, saveCmd(m.editor.Document(), m.opts.LayoutPath)
	}
	return m, nil
}

func (m Model) handleCodeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "c":
		m.mode = ModeEdit
	case "tab", "right", "l":
		m.codeTab = (m.codeTab + 1) % len(codeTabs)
	case "shift+tab", "left", "h":
		m.codeTab = (m.codeTab + len(codeTabs) - 1) % len(codeTabs)
	case "1", "2", "3":
		m.codeTab = int(msg.String()[0] - '1')
	case "w":
		return m, exportCmd(m.editor.Document(), m.opts)
	}
	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.applyProperty(m.editing, m.editing.parseInput(m.input.Value()))
		m.input.Blur()
		m.mode = ModeEdit
		return m, nil
	case "esc":
		m.input.Blur()
		m.mode = ModeEdit
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResizeKeys(msg tea.KeyMsg) Model {
	step := func(dx, dy float64) {
		m.pointer.X += dx
		m.pointer.Y += dy
		m.editor.UpdateResize(m.pointer)
	}

	switch {
	case key.Matches(msg, resizeKeys.Done):
		m.editor.EndResize()
		m.keyDrag = false
		m.setStatus("Resize finished")
	case key.Matches(msg, resizeKeys.Left):
		step(-keyboardStep, 0)
	case key.Matches(msg, resizeKeys.Right):
		step(keyboardStep, 0)
	case key.Matches(msg, resizeKeys.Up):
		step(0, -keyboardStep)
	case key.Matches(msg, resizeKeys.Down):
		step(0, keyboardStep)
	case key.Matches(msg, resizeKeys.FineLeft):
		step(-keyboardFineStep, 0)
	case key.Matches(msg, resizeKeys.FineRight):
		step(keyboardFineStep, 0)
	case key.Matches(msg, resizeKeys.FineUp):
		step(0, -keyboardFineStep)
	case key.Matches(msg, resizeKeys.FineDown):
		step(0, keyboardFineStep)
	}
	return m
}

// handleMouse maps canvas clicks to selection and border drags to resizes.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	// A release always ends a drag, whatever mode the editor switched to.
	if m.dragging && msg.Action == tea.MouseActionRelease {
		m.editor.EndResize()
		m.dragging = false
		return m
	}
	if m.mode != ModeEdit || m.keyDrag {
		return m
	}

	cx, cy := msg.X-canvasOriginX, msg.Y-canvasOriginY
	p := resize.Point{X: float64(cx * cellWidth), Y: float64(cy * cellHeight)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		cols, rows := m.canvasSize()
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			return m
		}

		c := m.canvas()
		if sel, ok := m.editor.Selected(); ok {
			if r, ok := c.rects[sel]; ok {
				if dir, ok := r.handleAt(cx, cy); ok {
					m.dragging = m.editor.BeginResize(sel, dir, p)
					return m
				}
			}
		}
		if id, ok := c.itemAt(cx, cy); ok {
			m.editor.Select(id)
			m.showItems()
		}

	case tea.MouseActionMotion:
		if m.dragging {
			m.editor.UpdateResize(p)
		}
	}
	return m
}

func (m *Model) beginKeyboardResize() {
	id, ok := m.editor.Selected()
	if !ok {
		m.setStatus("Select an item to resize")
		return
	}
	m.pointer = resize.Point{}
	if m.editor.BeginResize(id, resize.SouthEast, m.pointer) {
		m.keyDrag = true
		m.setStatus(fmt.Sprintf("Resizing item %d: arrows resize, shift for 1px, enter to finish", id))
	}
}

func (m *Model) selectNext() {
	items := m.editor.Items()
	if len(items) == 0 {
		return
	}
	next := 0
	if id, ok := m.editor.Selected(); ok {
		for i, item := range items {
			if item.ID == id {
				next = (i + 1) % len(items)
				break
			}
		}
		if items[next].ID == id {
			return
		}
	}
	m.editor.Select(items[next].ID)
	m.showItems()
}

// showItems switches the panel to the Items tab.
func (m *Model) showItems() {
	if m.tab != TabItems {
		m.tab = TabItems
		m.cursor = 0
	}
}

func (m *Model) cycleProperty(step int) {
	p, ok := m.currentProperty()
	if !ok || p.kind != kindSelect {
		return
	}
	current, _ := m.propertyValue(p)
	m.applyProperty(p, p.cycle(current, step))
}

func (m Model) editProperty() (tea.Model, tea.Cmd) {
	p, ok := m.currentProperty()
	if !ok {
		return m, nil
	}
	if m.tab == TabItems {
		if _, selected := m.editor.Selected(); !selected {
			m.setStatus("Select an item to edit its properties")
			return m, nil
		}
	}
	if p.kind == kindSelect {
		m.cycleProperty(1)
		return m, nil
	}

	current, _ := m.propertyValue(p)
	m.editing = p
	m.input.SetValue(p.inputText(current))
	m.input.CursorEnd()
	m.mode = ModeInput
	focus := m.input.Focus()
	return m, tea.Batch(focus, textinput.Blink)
}

func (m *Model) applyProperty(p property, v layout.Value) {
	if m.tab == TabContainer {
		m.editor.SetContainerProperty(p.name, v)
		return
	}
	if !m.editor.SetItemProperty(p.name, v) {
		m.setStatus("Select an item to edit its properties")
	}
}

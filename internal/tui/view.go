package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/flexforge/internal/codegen"
)

type codeTab struct {
	title   string
	formats []codegen.Format
}

var codeTabs = []codeTab{
	{title: "HTML / CSS", formats: []codegen.Format{codegen.FormatHTML, codegen.FormatCSS}},
	{title: "WordPress", formats: []codegen.Format{codegen.FormatWordPress}},
	{title: "React", formats: []codegen.Format{codegen.FormatJSX}},
}

// View renders the current model state
func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		return errorStyle.Render(fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
			m.width, m.height, minWidth, minHeight))
	}

	var body string
	if m.mode == ModeCode {
		body = m.renderCode()
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderCanvas(), m.renderPanel())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderStatus(),
		m.help.View(keys),
	)
}

// Static renders the canvas and control panel without the interactive
// chrome, for output that is not a terminal.
func (m Model) Static() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderCanvas(), m.renderPanel()),
	) + "\n"
}

func (m Model) renderHeader() string {
	title := "flexforge"
	if name := m.editor.Document().Name; name != "" {
		title += " · " + name
	}
	info := fmt.Sprintf("  %d items  next id %d", len(m.editor.Items()), m.editor.NextID())
	if s, ok := m.editor.Resizing(); ok {
		info += fmt.Sprintf("  resizing item %d (%s)", s.ItemID, s.Direction)
	}
	return titleStyle.Render(title) + labelStyle.Render(info)
}

func (m Model) renderCanvas() string {
	sel, ok := m.editor.Selected()
	return canvasStyle.Render(m.canvas().render(sel, ok))
}

func (m Model) renderPanel() string {
	var b strings.Builder

	tabs := make([]string, 0, 2)
	for _, t := range []Tab{TabContainer, TabItems} {
		style := inactiveTabStyle
		if t == m.tab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if m.tab == TabItems {
		item, ok := m.editor.SelectedItem()
		if !ok {
			b.WriteString(hintStyle.Render("Select an item to edit its properties."))
			b.WriteString("\n\n")
		} else {
			b.WriteString(valueStyle.Render(fmt.Sprintf("Item %d", item.ID)))
			b.WriteString("\n")
		}
	}

	for i, p := range propertiesFor(m.tab) {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("› ")
		}

		value := "-"
		if v, ok := m.propertyValue(p); ok && !v.Empty() {
			value = v.String()
		}
		rendered := valueStyle.Render(value)
		if p.kind == kindSelect {
			rendered = "‹ " + rendered + " ›"
		}
		if m.mode == ModeInput && i == m.cursor {
			rendered = m.input.View()
		}

		b.WriteString(marker + labelStyle.Render(fmt.Sprintf("%-16s", p.label)) + rendered + "\n")
	}

	return panelStyle.Width(panelWidth - 2).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderCode() string {
	tabs := make([]string, 0, len(codeTabs))
	for i, t := range codeTabs {
		style := inactiveTabStyle
		if i == m.codeTab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", i+1, t.title)))
	}

	doc := m.editor.Document()
	sections := make([]string, 0, 2)
	for _, f := range codeTabs[m.codeTab].formats {
		sections = append(sections, labelStyle.Render(f.Title())+"\n"+strings.TrimRight(f.Generate(doc), "\n"))
	}
	source := strings.Join(sections, "\n\n")

	_, rows := m.canvasSize()
	lines := strings.Split(source, "\n")
	if limit := rows - 2; limit > 0 && len(lines) > limit {
		lines = append(lines[:limit-1], hintStyle.Render(fmt.Sprintf("… %d more lines (w writes all files)", len(lines)-limit+1)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		codeStyle.Width(m.width-2).Render(strings.Join(lines, "\n")),
	)
}

func (m Model) renderStatus() string {
	switch {
	case m.status == "":
		return hintStyle.Render(fmt.Sprintf("export dir %s  layout %s", m.opts.ExportDir, m.opts.LayoutPath))
	case m.statusErr:
		return errorStyle.Render(m.status)
	default:
		return noticeStyle.Render(m.status)
	}
}

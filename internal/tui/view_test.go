package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/flexforge/internal/layout"
)

func TestView_TooSmall(t *testing.T) {
	m := send(t, newTestModel(t), tea.WindowSizeMsg{Width: 40, Height: 10})

	assert.Contains(t, m.View(), "Terminal too small")
}

func TestView_ShowsCanvasAndPanel(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "flexforge")
	assert.Contains(t, view, "3 items  next id 4")
	assert.Contains(t, view, "Flex Direction")
	assert.Contains(t, view, "row")
	assert.Contains(t, view, "┌")
	assert.NotContains(t, view, "╔")
}

func TestView_HighlightsSelection(t *testing.T) {
	m := send(t, newTestModel(t), runes("n"))
	view := m.View()

	assert.Contains(t, view, "╔")
	assert.Contains(t, view, "Item 1")
	assert.Contains(t, view, "150px")
}

func TestView_ItemsTabWithoutSelection(t *testing.T) {
	m := send(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyTab})

	assert.Contains(t, m.View(), "Select an item to edit its properties.")
}

func TestView_ShowsResizeInHeader(t *testing.T) {
	m := send(t, newTestModel(t), runes("n"), runes("R"))

	assert.Contains(t, m.View(), "resizing item 1 (se)")
}

func TestStatic(t *testing.T) {
	out := newTestModel(t).Static()

	assert.Contains(t, out, "Justify Content")
	assert.NotContains(t, out, "quit")
}

func TestView_HugeItemSizeStaysResponsive(t *testing.T) {
	m := send(t, newTestModel(t), runes("n"))
	for _, width := range []string{"40000000000px", "1000000000000000000000000000000px"} {
		require.True(t, m.Editor().SetItemProperty(layout.PropWidth, layout.String(width)))
		require.True(t, m.Editor().SetItemProperty(layout.PropHeight, layout.String(width)))

		view := m.View()
		assert.Contains(t, view, "╔", width)
	}
}

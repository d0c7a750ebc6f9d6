package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/flexforge/internal/preview"
	"github.com/alexisbeaulieu97/flexforge/internal/resize"
)

// One terminal cell covers this many CSS pixels.
const (
	cellWidth  = 8
	cellHeight = 16
)

// Cell coordinates are clamped to this magnitude; nothing past it is visible.
const maxCell = 1 << 16

// cellRect is an inclusive rectangle of canvas cells.
type cellRect struct {
	x0, y0, x1, y1 int
}

func rectFor(b preview.Box) cellRect {
	r := cellRect{
		x0: cellIndex(math.Floor(b.X / cellWidth)),
		y0: cellIndex(math.Floor(b.Y / cellHeight)),
		x1: cellIndex(math.Ceil((b.X+b.Width)/cellWidth)) - 1,
		y1: cellIndex(math.Ceil((b.Y+b.Height)/cellHeight)) - 1,
	}
	if r.x1 < r.x0+1 {
		r.x1 = r.x0 + 1
	}
	if r.y1 < r.y0+1 {
		r.y1 = r.y0 + 1
	}
	return r
}

func cellIndex(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxCell:
		return maxCell
	case v < -maxCell:
		return -maxCell
	}
	return int(v)
}

// clip intersects r with a cols x rows grid. ok is false when nothing is left.
func (r cellRect) clip(cols, rows int) (cellRect, bool) {
	r.x0, r.y0 = max(r.x0, 0), max(r.y0, 0)
	r.x1, r.y1 = min(r.x1, cols-1), min(r.y1, rows-1)
	return r, r.x0 <= r.x1 && r.y0 <= r.y1
}

func (r cellRect) contains(x, y int) bool {
	return x >= r.x0 && x <= r.x1 && y >= r.y0 && y <= r.y1
}

// handleAt maps a border cell to the resize handle it represents. Corner cells
// are diagonal handles, other border cells are side handles.
func (r cellRect) handleAt(x, y int) (resize.Direction, bool) {
	if !r.contains(x, y) {
		return "", false
	}
	var d string
	switch y {
	case r.y0:
		d = "n"
	case r.y1:
		d = "s"
	}
	switch x {
	case r.x0:
		d += "w"
	case r.x1:
		d += "e"
	}
	if d == "" {
		return "", false
	}
	return resize.Direction(d), true
}

type cellClass uint8

const (
	classEmpty cellClass = iota
	classItem
	classSelected
)

type borderSet struct {
	tl, tr, bl, br, h, v rune
}

var (
	itemBorder     = borderSet{'┌', '┐', '└', '┘', '─', '│'}
	selectedBorder = borderSet{'╔', '╗', '╚', '╝', '═', '║'}
)

// canvas is the preview frame rasterized to terminal cells.
type canvas struct {
	cols, rows int
	boxes      []preview.Box
	rects      map[int]cellRect
}

func newCanvas(frame preview.Frame, cols, rows int) canvas {
	c := canvas{
		cols:  cols,
		rows:  rows,
		boxes: frame.Boxes,
		rects: make(map[int]cellRect, len(frame.Boxes)),
	}
	for _, b := range frame.Boxes {
		c.rects[b.ItemID] = rectFor(b)
	}
	return c
}

// itemAt returns the topmost item drawn at the cell.
func (c canvas) itemAt(x, y int) (int, bool) {
	for i := len(c.boxes) - 1; i >= 0; i-- {
		id := c.boxes[i].ItemID
		if c.rects[id].contains(x, y) {
			return id, true
		}
	}
	return 0, false
}

// render draws every item, the selected one last and with a double border.
func (c canvas) render(selected int, hasSelection bool) string {
	if c.cols <= 0 || c.rows <= 0 {
		return ""
	}
	cells := make([][]rune, c.rows)
	classes := make([][]cellClass, c.rows)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", c.cols))
		classes[y] = make([]cellClass, c.cols)
	}

	set := func(x, y int, r rune, class cellClass) {
		if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
			return
		}
		cells[y][x] = r
		classes[y][x] = class
	}

	draw := func(id int, border borderSet, class cellClass) {
		r := c.rects[id]
		visible, ok := r.clip(c.cols, c.rows)
		if !ok {
			return
		}
		for y := visible.y0; y <= visible.y1; y++ {
			for x := visible.x0; x <= visible.x1; x++ {
				ch := ' '
				switch {
				case y == r.y0 && x == r.x0:
					ch = border.tl
				case y == r.y0 && x == r.x1:
					ch = border.tr
				case y == r.y1 && x == r.x0:
					ch = border.bl
				case y == r.y1 && x == r.x1:
					ch = border.br
				case y == r.y0 || y == r.y1:
					ch = border.h
				case x == r.x0 || x == r.x1:
					ch = border.v
				}
				set(x, y, ch, class)
			}
		}

		labelY := r.y0 + 1
		if r.y1-r.y0 < 2 {
			labelY = r.y0
		}
		for i, ch := range strconv.Itoa(id) {
			if x := r.x0 + 1 + i; x < r.x1 {
				set(x, labelY, ch, class)
			}
		}
	}

	for _, b := range c.boxes {
		if hasSelection && b.ItemID == selected {
			continue
		}
		draw(b.ItemID, itemBorder, classItem)
	}
	if _, ok := c.rects[selected]; hasSelection && ok {
		draw(selected, selectedBorder, classSelected)
	}

	lines := make([]string, c.rows)
	for y := range cells {
		lines[y] = renderRow(cells[y], classes[y])
	}
	return strings.Join(lines, "\n")
}

func renderRow(cells []rune, classes []cellClass) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && classes[i] == classes[start] {
			continue
		}
		run := string(cells[start:i])
		switch classes[start] {
		case classItem:
			run = canvasItemStyle.Render(run)
		case classSelected:
			run = canvasSelectedStyle.Render(run)
		}
		b.WriteString(run)
		start = i
	}
	return b.String()
}

// Package preview lays out a layout.Document the way a browser would place a
// flex container's children, closely enough to draw a faithful sketch of it.
//
// The arranger covers flexDirection, flexWrap, gap, order, flexGrow,
// flexBasis, justifyContent, alignItems, and alignSelf. Shrinking, baseline
// alignment, and alignContent distribution are not modeled.
package preview

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/flexforge/internal/layout"
	"github.com/alexisbeaulieu97/flexforge/internal/resize"
)

// Viewport is the space available to the container. A zero Height leaves the
// column main axis unbounded.
type Viewport struct {
	Width, Height float64
}

// Box is the placed rectangle of one item, in pixels from the container's
// top-left corner.
type Box struct {
	ItemID        int
	X, Y          float64
	Width, Height float64
}

// Frame is the arranged container.
type Frame struct {
	Width, Height float64
	Boxes         []Box
}

// Box returns the placement of item id.
func (f Frame) Box(id int) (Box, bool) {
	for _, b := range f.Boxes {
		if b.ItemID == id {
			return b, true
		}
	}
	return Box{}, false
}

type flexItem struct {
	id        int
	order     float64
	grow      float64
	main      float64
	cross     float64
	crossSet  bool
	align     string
	mainPos   float64
	crossPos  float64
	lineIndex int
}

type flexLine struct {
	items []*flexItem
	used  float64
	cross float64
}

// Arrange places every item of doc inside vp.
func Arrange(doc layout.Document, vp Viewport) Frame {
	c := doc.Container
	direction := keyword(c, layout.PropFlexDirection, "row")
	row := !strings.HasPrefix(direction, "column")
	reverse := strings.HasSuffix(direction, "-reverse")
	wrapMode := keyword(c, layout.PropFlexWrap, "nowrap")
	wrap := wrapMode == "wrap" || wrapMode == "wrap-reverse"
	gap := length(c, layout.PropGap, 0)
	justify := keyword(c, layout.PropJustifyContent, "flex-start")
	alignItems := keyword(c, layout.PropAlignItems, "stretch")

	mainLimit := vp.Width
	if !row {
		mainLimit = vp.Height
	}
	bounded := mainLimit > 0

	items := make([]*flexItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, newFlexItem(it, row, alignItems))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].order < items[j].order })

	lines := breakLines(items, wrap && bounded, mainLimit, gap)

	mainSize := mainLimit
	if !bounded {
		mainSize = 0
		for _, line := range lines {
			mainSize = math.Max(mainSize, line.used)
		}
	}

	crossCursor := 0.0
	for li, line := range lines {
		free := mainSize - line.used
		distributeGrow(line, &free)
		start, between := justifyOffsets(justify, free, len(line.items))

		pos := start
		for _, it := range line.items {
			it.mainPos = pos
			pos += it.main + gap + between
		}

		for _, it := range line.items {
			if !it.crossSet && it.align == "stretch" {
				it.cross = line.cross
			}
			it.crossPos = crossCursor + alignOffset(it.align, line.cross, it.cross)
			it.lineIndex = li
		}
		crossCursor += line.cross
		if li < len(lines)-1 {
			crossCursor += gap
		}
	}
	crossTotal := crossCursor

	frame := Frame{Boxes: make([]Box, 0, len(items))}
	for _, it := range items {
		mainPos := it.mainPos
		if reverse {
			mainPos = mainSize - it.mainPos - it.main
		}
		crossPos := it.crossPos
		if wrapMode == "wrap-reverse" {
			crossPos = crossTotal - it.crossPos - it.cross
		}

		b := Box{ItemID: it.id}
		if row {
			b.X, b.Y, b.Width, b.Height = mainPos, crossPos, it.main, it.cross
		} else {
			b.X, b.Y, b.Width, b.Height = crossPos, mainPos, it.cross, it.main
		}
		frame.Boxes = append(frame.Boxes, b)
	}

	if row {
		frame.Width, frame.Height = mainSize, crossTotal
	} else {
		frame.Width, frame.Height = crossTotal, mainSize
	}
	for _, b := range frame.Boxes {
		frame.Width = math.Max(frame.Width, b.X+b.Width)
		frame.Height = math.Max(frame.Height, b.Y+b.Height)
	}
	return frame
}

func newFlexItem(it layout.Item, row bool, alignItems string) *flexItem {
	s := it.Styles
	mainProp, crossProp := layout.PropWidth, layout.PropHeight
	if !row {
		mainProp, crossProp = crossProp, mainProp
	}

	fi := &flexItem{
		id:    it.ID,
		order: number(s, layout.PropOrder, 0),
		grow:  number(s, layout.PropFlexGrow, 0),
		main:  length(s, mainProp, resize.DefaultSize),
		cross: length(s, crossProp, resize.DefaultSize),
		align: alignItems,
	}
	if basis, ok := parseLength(s, layout.PropFlexBasis); ok {
		fi.main = basis
	}
	_, fi.crossSet = parseLength(s, crossProp)
	if self := keyword(s, layout.PropAlignSelf, "auto"); self != "auto" {
		fi.align = self
	}
	if !fi.crossSet && fi.align == "stretch" {
		fi.cross = 0
	}
	return fi
}

func breakLines(items []*flexItem, wrap bool, limit, gap float64) []*flexLine {
	lines := []*flexLine{{}}
	for _, it := range items {
		line := lines[len(lines)-1]
		next := line.used + it.main
		if len(line.items) > 0 {
			next += gap
		}
		if wrap && len(line.items) > 0 && next > limit {
			line = &flexLine{}
			lines = append(lines, line)
			next = it.main
		}
		line.items = append(line.items, it)
		line.used = next
		line.cross = math.Max(line.cross, it.cross)
	}
	return lines
}

func distributeGrow(line *flexLine, free *float64) {
	if *free <= 0 {
		return
	}
	total := 0.0
	for _, it := range line.items {
		if it.grow > 0 {
			total += it.grow
		}
	}
	if total == 0 {
		return
	}
	for _, it := range line.items {
		if it.grow > 0 {
			it.main += *free * it.grow / total
		}
	}
	line.used += *free
	*free = 0
}

func justifyOffsets(justify string, free float64, n int) (start, between float64) {
	if free < 0 {
		free = 0
	}
	switch justify {
	case "flex-end", "end", "right":
		return free, 0
	case "center":
		return free / 2, 0
	case "space-between":
		if n > 1 {
			return 0, free / float64(n-1)
		}
		return 0, 0
	case "space-around":
		if n > 0 {
			each := free / float64(n)
			return each / 2, each
		}
	case "space-evenly":
		each := free / float64(n+1)
		return each, each
	}
	return 0, 0
}

func alignOffset(align string, lineCross, itemCross float64) float64 {
	switch align {
	case "flex-end", "end", "self-end":
		return lineCross - itemCross
	case "center":
		return (lineCross - itemCross) / 2
	}
	return 0
}

func keyword(s layout.Styles, name, def string) string {
	v, ok := s.Get(name)
	if !ok || v.Empty() {
		return def
	}
	return strings.TrimSpace(v.String())
}

func number(s layout.Styles, name string, def float64) float64 {
	v, ok := s.Get(name)
	if !ok {
		return def
	}
	if n, ok := v.Float(); ok {
		return n
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64); err == nil {
		return n
	}
	return def
}

func length(s layout.Styles, name string, def float64) float64 {
	if n, ok := parseLength(s, name); ok {
		return n
	}
	return def
}

// parseLength reads a number or the numeric prefix of a string such as
// "12.5px". Units are ignored.
func parseLength(s layout.Styles, name string) (float64, bool) {
	v, ok := s.Get(name)
	if !ok || v.Empty() {
		return 0, false
	}
	if n, ok := v.Float(); ok {
		return n, true
	}

	text := strings.TrimSpace(v.String())
	end := 0
	for end < len(text) && (text[end] == '.' || text[end] == '-' || text[end] == '+' || (text[end] >= '0' && text[end] <= '9')) {
		end++
	}
	n, err := strconv.ParseFloat(text[:end], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

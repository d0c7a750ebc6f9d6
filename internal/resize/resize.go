// Package resize turns pointer drags on an item's handles into new item
// dimensions.
package resize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/flexforge/internal/layout"
)

const (
	// MinSize is the smallest width or height a drag can produce.
	MinSize = 20
	// DefaultSize replaces a starting dimension that is absent or unparsable.
	DefaultSize = 100
)

// Direction names the handle being dragged: a side (n, s, e, w) or a corner
// combining one vertical and one horizontal side.
type Direction string

const (
	North     Direction = "n"
	South     Direction = "s"
	East      Direction = "e"
	West      Direction = "w"
	NorthEast Direction = "ne"
	NorthWest Direction = "nw"
	SouthEast Direction = "se"
	SouthWest Direction = "sw"
)

// Directions lists every handle, sides first.
var Directions = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// ParseDirection validates a handle name.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Directions {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown resize direction %q", s)
}

func (d Direction) has(edge byte) bool {
	return strings.IndexByte(string(d), edge) >= 0
}

// Point is a pointer position in pixels.
type Point struct {
	X, Y float64
}

// Session is an active drag. It is captured once when the drag starts and is
// never modified afterwards.
type Session struct {
	ItemID      int
	Direction   Direction
	Origin      Point
	StartWidth  float64
	StartHeight float64
}

// Begin captures a session for the item whose current styles are given.
func Begin(itemID int, dir Direction, origin Point, styles layout.Styles) Session {
	return Session{
		ItemID:      itemID,
		Direction:   dir,
		Origin:      origin,
		StartWidth:  StartDimension(styles, layout.PropWidth),
		StartHeight: StartDimension(styles, layout.PropHeight),
	}
}

// Size computes the clamped width and height for the pointer at p.
func (s Session) Size(p Point) (width, height float64) {
	dx := p.X - s.Origin.X
	dy := p.Y - s.Origin.Y

	width = s.StartWidth
	switch {
	case s.Direction.has('e'):
		width = s.StartWidth + dx
	case s.Direction.has('w'):
		width = s.StartWidth - dx
	}

	height = s.StartHeight
	switch {
	case s.Direction.has('s'):
		height = s.StartHeight + dy
	case s.Direction.has('n'):
		height = s.StartHeight - dy
	}

	return math.Max(MinSize, width), math.Max(MinSize, height)
}

// Resize returns the width and height values to store for the pointer at p.
func (s Session) Resize(p Point) (width, height layout.Value) {
	w, h := s.Size(p)
	return layout.Pixels(w), layout.Pixels(h)
}

// StartDimension reads a length property the way a drag start does: numbers
// are used as-is, strings are read as a leading integer ("150px" -> 150), and
// anything else falls back to DefaultSize.
func StartDimension(styles layout.Styles, name string) float64 {
	v, ok := styles.Get(name)
	if !ok {
		return DefaultSize
	}
	return ParsePixels(v)
}

// ParsePixels converts a stored value to a pixel count, defaulting to
// DefaultSize.
func ParsePixels(v layout.Value) float64 {
	if n, ok := v.Float(); ok {
		return n
	}
	if s, ok := v.Text(); ok {
		if n, ok := leadingInt(s); ok {
			return n
		}
	}
	return DefaultSize
}

// leadingInt parses an optionally signed run of decimal digits after leading
// whitespace and ignores whatever follows. Long runs round to the nearest
// float64 instead of overflowing.
func leadingInt(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}

	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(sign+s[:digits], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

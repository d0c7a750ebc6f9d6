package editor

import (
	"github.com/alexisbeaulieu97/flexforge/internal/layout"
	"github.com/alexisbeaulieu97/flexforge/internal/resize"
)

// NoWrap is the flexWrap value pinned on the container while a drag is active.
const NoWrap = "nowrap"

// BeginResize starts a drag of item id from handle dir with the pointer at p.
// The container wrap mode is pinned to nowrap until EndResize so siblings do
// not reflow mid-drag. It does nothing if the item does not exist or another
// drag is active.
func (e *Editor) BeginResize(id int, dir resize.Direction, p resize.Point) bool {
	if _, active := e.drag.get(); active {
		return false
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}

	var saved optional[layout.Value]
	if wrap, ok := e.container.Get(layout.PropFlexWrap); ok {
		saved = some(wrap)
	}

	session := resize.Begin(id, dir, p, e.items[idx].Styles)
	e.drag = some(drag{session: session, savedWrap: saved})
	e.container.Set(layout.PropFlexWrap, layout.String(NoWrap))

	e.log.Debug("resize started",
		"item_id", id,
		"direction", string(dir),
		"start_width", session.StartWidth,
		"start_height", session.StartHeight,
	)
	return true
}

// UpdateResize applies the pointer position p to the dragged item.
func (e *Editor) UpdateResize(p resize.Point) bool {
	d, active := e.drag.get()
	if !active {
		return false
	}
	idx := e.indexOf(d.session.ItemID)
	if idx < 0 {
		return false
	}

	width, height := d.session.Resize(p)
	e.items[idx].Styles.Set(layout.PropWidth, width)
	e.items[idx].Styles.Set(layout.PropHeight, height)
	return true
}

// EndResize finishes the drag and restores the container wrap mode it found
// when the drag began.
func (e *Editor) EndResize() bool {
	d, active := e.drag.get()
	if !active {
		return false
	}

	if wrap, ok := d.savedWrap.get(); ok {
		e.container.Set(layout.PropFlexWrap, wrap)
	} else {
		e.container.Delete(layout.PropFlexWrap)
	}
	e.drag = optional[drag]{}

	e.log.Debug("resize finished", "item_id", d.session.ItemID)
	return true
}

// Resizing returns the active drag session.
func (e *Editor) Resizing() (resize.Session, bool) {
	d, ok := e.drag.get()
	return d.session, ok
}

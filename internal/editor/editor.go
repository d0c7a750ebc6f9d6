// Package editor owns the layout being edited: the items, the container
// styles, the current selection, and any resize drag in progress. It is the
// only code that mutates them.
package editor

import (
	"fmt"

	"github.com/alexisbeaulieu97/flexforge/internal/layout"
	"github.com/alexisbeaulieu97/flexforge/internal/logger"
	"github.com/alexisbeaulieu97/flexforge/internal/resize"
)

// Notice is a short user-facing message, such as "Item 4 selected".
type Notice struct {
	ItemID  int
	Message string
}

// Notifier receives notices as they happen.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

// Notify calls f.
func (f NotifierFunc) Notify(n Notice) { f(n) }

// Option configures an Editor.
type Option func(*Editor)

// WithLogger routes mutation logs to log.
func WithLogger(log *logger.Logger) Option {
	return func(e *Editor) {
		e.log = log
	}
}

// WithNotifier sets the receiver for selection notices.
func WithNotifier(n Notifier) Option {
	return func(e *Editor) {
		e.notifier = n
	}
}

// optional is a value that is either present or absent.
type optional[T any] struct {
	value T
	ok    bool
}

func some[T any](v T) optional[T] {
	return optional[T]{value: v, ok: true}
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.ok
}

// drag is the resize session plus the container wrap value to restore when
// it ends.
type drag struct {
	session   resize.Session
	savedWrap optional[layout.Value]
}

// Editor is the interaction controller.
type Editor struct {
	name      string
	component string
	container layout.Styles
	items     []layout.Item
	nextID    int

	selection optional[int]
	drag      optional[drag]

	notifier Notifier
	log      *logger.Logger
}

// New creates an editor seeded with a copy of doc. Ids assigned later start
// after the highest id in doc.
func New(doc layout.Document, opts ...Option) *Editor {
	snapshot := doc.Clone()
	e := &Editor{
		name:      snapshot.Name,
		component: snapshot.Component,
		container: snapshot.Container,
		items:     snapshot.Items,
		nextID:    snapshot.NextID(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Document returns a deep snapshot of the current layout.
func (e *Editor) Document() layout.Document {
	return layout.Document{
		Name:      e.name,
		Component: e.component,
		Container: e.container,
		Items:     e.items,
	}.Clone()
}

// Container returns a copy of the container styles.
func (e *Editor) Container() layout.Styles {
	return e.container.Clone()
}

// Items returns copies of the items in display order.
func (e *Editor) Items() []layout.Item {
	out := make([]layout.Item, len(e.items))
	for i, item := range e.items {
		out[i] = item.Clone()
	}
	return out
}

// NextID returns the id the next added or duplicated item will get.
func (e *Editor) NextID() int {
	return e.nextID
}

// Selected returns the selected item id.
func (e *Editor) Selected() (int, bool) {
	return e.selection.get()
}

// SelectedItem returns a copy of the selected item.
func (e *Editor) SelectedItem() (layout.Item, bool) {
	id, ok := e.selection.get()
	if !ok {
		return layout.Item{}, false
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return layout.Item{}, false
	}
	return e.items[idx].Clone(), true
}

// Select toggles selection of id: selecting the selected item clears the
// selection, selecting another existing item moves it there. Unknown ids are
// ignored. It reports whether id is selected afterwards.
func (e *Editor) Select(id int) bool {
	if current, ok := e.selection.get(); ok && current == id {
		e.selection = optional[int]{}
		e.log.Debug("selection cleared", "item_id", id)
		return false
	}
	if e.indexOf(id) < 0 {
		return false
	}

	e.selection = some(id)
	e.log.Debug("item selected", "item_id", id)
	e.notify(id, fmt.Sprintf("Item %d selected", id))
	return true
}

// ClearSelection deselects any selected item.
func (e *Editor) ClearSelection() {
	e.selection = optional[int]{}
}

// AddItem appends a default 120x120 item, selects it, and returns its id.
func (e *Editor) AddItem() int {
	id := e.allocateID()
	e.items = append(e.items, layout.Item{ID: id, Styles: layout.DefaultItemStyles()})
	e.log.Debug("item added", "item_id", id)
	e.Select(id)
	return id
}

// DuplicateSelected appends a copy of the selected item under a new id and
// selects the copy. It does nothing when no item is selected.
func (e *Editor) DuplicateSelected() (int, bool) {
	source, ok := e.SelectedItem()
	if !ok {
		return 0, false
	}

	id := e.allocateID()
	e.items = append(e.items, layout.Item{ID: id, Styles: source.Styles})
	e.log.Debug("item duplicated", "item_id", id, "source_id", source.ID)
	e.Select(id)
	return id, true
}

// DeleteSelected removes the selected item and clears the selection. It does
// nothing when no item is selected.
func (e *Editor) DeleteSelected() bool {
	id, ok := e.selection.get()
	if !ok {
		return false
	}
	idx := e.indexOf(id)
	e.selection = optional[int]{}
	if idx < 0 {
		return false
	}

	e.items = append(e.items[:idx:idx], e.items[idx+1:]...)
	e.log.Debug("item deleted", "item_id", id)
	return true
}

// SetContainerProperty stores a container style value.
func (e *Editor) SetContainerProperty(name string, value layout.Value) {
	e.container.Set(name, value)
	e.log.Debug("container property changed", "property", name, "value", value.String(), "kind", value.Kind().String())
}

// SetItemProperty stores a style value on the selected item. It reports false
// and changes nothing when no item is selected.
func (e *Editor) SetItemProperty(name string, value layout.Value) bool {
	id, ok := e.selection.get()
	if !ok {
		return false
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}

	e.items[idx].Styles.Set(name, value)
	e.log.Debug("item property changed", "item_id", id, "property", name, "value", value.String(), "kind", value.Kind().String())
	return true
}

func (e *Editor) allocateID() int {
	id := e.nextID
	e.nextID++
	return id
}

func (e *Editor) indexOf(id int) int {
	for i, item := range e.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (e *Editor) notify(id int, msg string) {
	if e.notifier == nil {
		return
	}
	e.notifier.Notify(Notice{ItemID: id, Message: msg})
}

package layout

// Property names used by the editor. Names are camel case; generators convert
// them as needed.
const (
	PropDisplay        = "display"
	PropFlexDirection  = "flexDirection"
	PropFlexWrap       = "flexWrap"
	PropJustifyContent = "justifyContent"
	PropAlignItems     = "alignItems"
	PropAlignContent   = "alignContent"
	PropGap            = "gap"

	PropOrder      = "order"
	PropFlexGrow   = "flexGrow"
	PropFlexShrink = "flexShrink"
	PropFlexBasis  = "flexBasis"
	PropAlignSelf  = "alignSelf"
	PropWidth      = "width"
	PropHeight     = "height"
)

// DefaultComponent names the generated JSX component when a document has none.
const DefaultComponent = "MyGridComponent"

// Item is one child box of the flex container.
type Item struct {
	ID     int
	Styles Styles
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	return Item{ID: i.ID, Styles: i.Styles.Clone()}
}

// Document is a complete snapshot of the Style Model: the container styles
// and the items in display order.
type Document struct {
	Name      string
	Component string
	Container Styles
	Items     []Item
}

// Clone returns a deep copy that shares no state with d.
func (d Document) Clone() Document {
	out := Document{
		Name:      d.Name,
		Component: d.Component,
		Container: d.Container.Clone(),
		Items:     make([]Item, len(d.Items)),
	}
	for i, item := range d.Items {
		out.Items[i] = item.Clone()
	}
	return out
}

// ComponentName returns the JSX component name, falling back to
// DefaultComponent.
func (d Document) ComponentName() string {
	if d.Component == "" {
		return DefaultComponent
	}
	return d.Component
}

// Item looks up an item by id.
func (d Document) Item(id int) (Item, bool) {
	for _, item := range d.Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// NextID returns the first id greater than every id in the document.
func (d Document) NextID() int {
	next := 1
	for _, item := range d.Items {
		if item.ID >= next {
			next = item.ID + 1
		}
	}
	return next
}

package layout

// DefaultItemStyles returns the styles of a freshly added item.
func DefaultItemStyles() Styles {
	return NewStyles(
		Property{PropWidth, String("120px")},
		Property{PropHeight, String("120px")},
	)
}

// DefaultContainer returns the container styles a new session starts with.
func DefaultContainer() Styles {
	return NewStyles(
		Property{PropDisplay, String("flex")},
		Property{PropFlexDirection, String("row")},
		Property{PropFlexWrap, String("wrap")},
		Property{PropJustifyContent, String("flex-start")},
		Property{PropAlignItems, String("flex-start")},
		Property{PropAlignContent, String("flex-start")},
		Property{PropGap, String("8px")},
	)
}

// Starter returns the three-item layout a new session opens with. Its next id
// is 4.
func Starter() Document {
	box := func(id int, w, h string) Item {
		return Item{ID: id, Styles: NewStyles(
			Property{PropWidth, String(w)},
			Property{PropHeight, String(h)},
		)}
	}
	return Document{
		Component: DefaultComponent,
		Container: DefaultContainer(),
		Items: []Item{
			box(1, "150px", "100px"),
			box(2, "100px", "150px"),
			box(3, "200px", "120px"),
		},
	}
}

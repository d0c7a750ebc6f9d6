package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/flexforge/internal/layout"
)

func box(t *testing.T, f Frame, id int) Box {
	t.Helper()
	b, ok := f.Box(id)
	require.True(t, ok, "item %d not placed", id)
	return b
}

func sized(id int, w, h string, extra ...layout.Property) layout.Item {
	props := append([]layout.Property{
		{Name: layout.PropWidth, Value: layout.String(w)},
		{Name: layout.PropHeight, Value: layout.String(h)},
	}, extra...)
	return layout.Item{ID: id, Styles: layout.NewStyles(props...)}
}

func TestArrangeStarterWraps(t *testing.T) {
	f := Arrange(layout.Starter(), Viewport{Width: 300})

	assert.Equal(t, Box{ItemID: 1, X: 0, Y: 0, Width: 150, Height: 100}, box(t, f, 1))
	assert.Equal(t, Box{ItemID: 2, X: 158, Y: 0, Width: 100, Height: 150}, box(t, f, 2))
	assert.Equal(t, Box{ItemID: 3, X: 0, Y: 158, Width: 200, Height: 120}, box(t, f, 3))
	assert.Equal(t, 300.0, f.Width)
	assert.Equal(t, 278.0, f.Height)
}

func TestArrangeNoWrapOverflows(t *testing.T) {
	doc := layout.Starter()
	doc.Container.Set(layout.PropFlexWrap, layout.String("nowrap"))

	f := Arrange(doc, Viewport{Width: 300})

	assert.Equal(t, 0.0, box(t, f, 1).X)
	assert.Equal(t, 158.0, box(t, f, 2).X)
	assert.Equal(t, 266.0, box(t, f, 3).X)
	for _, b := range f.Boxes {
		assert.Equal(t, 0.0, b.Y)
	}
	assert.Equal(t, 466.0, f.Width)
}

func TestArrangeJustifyContent(t *testing.T) {
	tests := []struct {
		justify string
		x1, x2  float64
	}{
		{"flex-start", 0, 100},
		{"flex-end", 200, 300},
		{"center", 100, 200},
		{"space-between", 0, 300},
		{"space-around", 50, 250},
		{"space-evenly", 200.0 / 3, 400.0/3 + 100},
	}
	for _, tt := range tests {
		t.Run(tt.justify, func(t *testing.T) {
			doc := layout.Document{
				Container: layout.NewStyles(
					layout.Property{Name: layout.PropJustifyContent, Value: layout.String(tt.justify)},
				),
				Items: []layout.Item{sized(1, "100px", "50px"), sized(2, "100px", "50px")},
			}
			f := Arrange(doc, Viewport{Width: 400})
			assert.InDelta(t, tt.x1, box(t, f, 1).X, 1e-9)
			assert.InDelta(t, tt.x2, box(t, f, 2).X, 1e-9)
		})
	}
}

func TestArrangeFlexGrowTakesFreeSpace(t *testing.T) {
	doc := layout.Document{
		Items: []layout.Item{
			sized(1, "100px", "50px", layout.Property{Name: layout.PropFlexGrow, Value: layout.Number(1)}),
			sized(2, "100px", "50px"),
		},
	}
	f := Arrange(doc, Viewport{Width: 400})

	assert.Equal(t, 300.0, box(t, f, 1).Width)
	assert.Equal(t, 300.0, box(t, f, 2).X)
}

func TestArrangeOrderAndReverse(t *testing.T) {
	doc := layout.Document{
		Items: []layout.Item{
			sized(1, "100px", "50px"),
			sized(2, "100px", "50px", layout.Property{Name: layout.PropOrder, Value: layout.String("-1")}),
		},
	}

	f := Arrange(doc, Viewport{Width: 400})
	assert.Equal(t, 0.0, box(t, f, 2).X)
	assert.Equal(t, 100.0, box(t, f, 1).X)

	doc.Container.Set(layout.PropFlexDirection, layout.String("row-reverse"))
	f = Arrange(doc, Viewport{Width: 400})
	assert.Equal(t, 300.0, box(t, f, 2).X)
	assert.Equal(t, 200.0, box(t, f, 1).X)
}

func TestArrangeColumn(t *testing.T) {
	doc := layout.Starter()
	doc.Container.Set(layout.PropFlexDirection, layout.String("column"))

	f := Arrange(doc, Viewport{Width: 300})

	assert.Equal(t, Box{ItemID: 1, X: 0, Y: 0, Width: 150, Height: 100}, box(t, f, 1))
	assert.Equal(t, Box{ItemID: 2, X: 0, Y: 108, Width: 100, Height: 150}, box(t, f, 2))
	assert.Equal(t, Box{ItemID: 3, X: 0, Y: 266, Width: 200, Height: 120}, box(t, f, 3))
	assert.Equal(t, 386.0, f.Height)
}

func TestArrangeCrossAxisAlignment(t *testing.T) {
	doc := layout.Document{
		Container: layout.NewStyles(
			layout.Property{Name: layout.PropAlignItems, Value: layout.String("center")},
		),
		Items: []layout.Item{
			sized(1, "100px", "100px"),
			sized(2, "100px", "50px"),
			sized(3, "100px", "50px", layout.Property{Name: layout.PropAlignSelf, Value: layout.String("flex-end")}),
		},
	}
	f := Arrange(doc, Viewport{Width: 400})

	assert.Equal(t, 0.0, box(t, f, 1).Y)
	assert.Equal(t, 25.0, box(t, f, 2).Y)
	assert.Equal(t, 50.0, box(t, f, 3).Y)
}

func TestArrangeStretchFillsMissingCrossSize(t *testing.T) {
	doc := layout.Document{
		Items: []layout.Item{
			sized(1, "100px", "80px"),
			{ID: 2, Styles: layout.NewStyles(layout.Property{Name: layout.PropWidth, Value: layout.String("50px")})},
		},
	}
	f := Arrange(doc, Viewport{Width: 400})

	assert.Equal(t, 80.0, box(t, f, 2).Height)
}

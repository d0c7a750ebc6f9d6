package tui

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/flexforge/internal/layout"
)

// Tab is a page of the control panel.
type Tab int

const (
	TabContainer Tab = iota
	TabItems
)

func (t Tab) String() string {
	if t == TabItems {
		return "Items"
	}
	return "Container"
}

// inputKind decides how a property is edited and how input is stored.
type inputKind int

const (
	kindSelect  inputKind = iota // cycles through options
	kindText                     // stored verbatim
	kindNumber                   // stored as a number when it parses
	kindPixels                   // a bare number gets a px suffix
)

type property struct {
	label   string
	name    string
	kind    inputKind
	options []string
}

var (
	flexDirectionOptions  = []string{"row", "row-reverse", "column", "column-reverse"}
	flexWrapOptions       = []string{"nowrap", "wrap", "wrap-reverse"}
	justifyContentOptions = []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"}
	alignItemsOptions     = []string{"stretch", "flex-start", "flex-end", "center", "baseline"}
	alignContentOptions   = []string{"stretch", "flex-start", "flex-end", "center", "space-between", "space-around"}
	alignSelfOptions      = []string{"auto", "stretch", "flex-start", "flex-end", "center", "baseline"}
)

var containerProperties = []property{
	{label: "Flex Direction", name: layout.PropFlexDirection, kind: kindSelect, options: flexDirectionOptions},
	{label: "Flex Wrap", name: layout.PropFlexWrap, kind: kindSelect, options: flexWrapOptions},
	{label: "Justify Content", name: layout.PropJustifyContent, kind: kindSelect, options: justifyContentOptions},
	{label: "Align Items", name: layout.PropAlignItems, kind: kindSelect, options: alignItemsOptions},
	{label: "Align Content", name: layout.PropAlignContent, kind: kindSelect, options: alignContentOptions},
	{label: "Gap", name: layout.PropGap, kind: kindPixels},
}

var itemProperties = []property{
	{label: "Order", name: layout.PropOrder, kind: kindNumber},
	{label: "Flex Grow", name: layout.PropFlexGrow, kind: kindNumber},
	{label: "Flex Shrink", name: layout.PropFlexShrink, kind: kindNumber},
	{label: "Flex Basis", name: layout.PropFlexBasis, kind: kindText},
	{label: "Align Self", name: layout.PropAlignSelf, kind: kindSelect, options: alignSelfOptions},
	{label: "Width", name: layout.PropWidth, kind: kindText},
	{label: "Height", name: layout.PropHeight, kind: kindText},
}

func propertiesFor(tab Tab) []property {
	if tab == TabItems {
		return itemProperties
	}
	return containerProperties
}

// cycle returns the option step places after current. A value outside the
// option set starts from the first option.
func (p property) cycle(current layout.Value, step int) layout.Value {
	if len(p.options) == 0 {
		return current
	}
	idx := -1
	for i, opt := range p.options {
		if opt == current.String() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return layout.String(p.options[0])
	}
	n := len(p.options)
	return layout.String(p.options[((idx+step)%n+n)%n])
}

// parseInput converts text typed into the property's input to a stored value.
func (p property) parseInput(text string) layout.Value {
	text = strings.TrimSpace(text)
	if text == "" {
		return layout.String("")
	}
	switch p.kind {
	case kindNumber:
		if n, err := strconv.ParseFloat(text, 64); err == nil {
			return layout.Number(n)
		}
	case kindPixels:
		if n, err := strconv.ParseFloat(text, 64); err == nil {
			return layout.Pixels(n)
		}
	}
	return layout.String(text)
}

// inputText is the text an input starts with when editing v.
func (p property) inputText(v layout.Value) string {
	text := v.String()
	if p.kind == kindPixels {
		text = strings.TrimSuffix(text, "px")
	}
	return text
}

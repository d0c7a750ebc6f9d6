package config

import (
	"github.com/alexisbeaulieu97/flexforge/internal/layout"
)

// CurrentVersion is written into every saved layout file.
const CurrentVersion = "1.0"

// LayoutFile is the on-disk form of a layout document.
type LayoutFile struct {
	Version   string        `yaml:"version" validate:"required,semver"`
	Name      string        `yaml:"name,omitempty" validate:"max=100"`
	Component string        `yaml:"component,omitempty" validate:"omitempty,js_ident"`
	Container layout.Styles `yaml:"container"`
	Items     []ItemSpec    `yaml:"items" validate:"dive"`
}

// ItemSpec is one item entry of a layout file.
type ItemSpec struct {
	ID     int           `yaml:"id" validate:"required,min=1"`
	Styles layout.Styles `yaml:"styles"`
}

// Document converts the file into the editor's Style Model.
func (f LayoutFile) Document() layout.Document {
	doc := layout.Document{
		Name:      f.Name,
		Component: f.Component,
		Container: f.Container.Clone(),
		Items:     make([]layout.Item, 0, len(f.Items)),
	}
	for _, spec := range f.Items {
		doc.Items = append(doc.Items, layout.Item{ID: spec.ID, Styles: spec.Styles.Clone()})
	}
	return doc
}

// FromDocument builds the file form of doc.
func FromDocument(doc layout.Document) LayoutFile {
	f := LayoutFile{
		Version:   CurrentVersion,
		Name:      doc.Name,
		Component: doc.Component,
		Container: doc.Container.Clone(),
		Items:     make([]ItemSpec, 0, len(doc.Items)),
	}
	for _, item := range doc.Items {
		f.Items = append(f.Items, ItemSpec{ID: item.ID, Styles: item.Styles.Clone()})
	}
	return f
}

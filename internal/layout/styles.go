package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Property is one named entry of a Styles mapping.
type Property struct {
	Name  string
	Value Value
}

// Styles maps camel-case property names to values and remembers insertion
// order, which is the order generators emit declarations in.
type Styles struct {
	keys   []string
	values map[string]Value
}

// NewStyles builds a Styles from properties in order. Later duplicates
// overwrite earlier ones in place.
func NewStyles(props ...Property) Styles {
	var s Styles
	for _, p := range props {
		s.Set(p.Name, p.Value)
	}
	return s
}

// Get returns the value stored under name.
func (s Styles) Get(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Set stores value under name. An existing name keeps its position.
func (s *Styles) Set(name string, value Value) {
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	if _, exists := s.values[name]; !exists {
		s.keys = append(s.keys, name)
	}
	s.values[name] = value
}

// Delete removes name and reports whether it was present.
func (s *Styles) Delete(name string) bool {
	if _, exists := s.values[name]; !exists {
		return false
	}
	delete(s.values, name)
	for i, key := range s.keys {
		if key == name {
			s.keys = append(s.keys[:i:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored properties.
func (s Styles) Len() int {
	return len(s.keys)
}

// Keys returns property names in insertion order.
func (s Styles) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Properties returns the stored properties in insertion order.
func (s Styles) Properties() []Property {
	props := make([]Property, 0, len(s.keys))
	for _, key := range s.keys {
		props = append(props, Property{Name: key, Value: s.values[key]})
	}
	return props
}

// Clone returns an independent copy.
func (s Styles) Clone() Styles {
	out := Styles{
		keys:   append([]string(nil), s.keys...),
		values: make(map[string]Value, len(s.values)),
	}
	for k, v := range s.values {
		out.values[k] = v
	}
	return out
}

// Equal reports whether both mappings hold the same properties in the same
// order.
func (s Styles) Equal(other Styles) bool {
	if len(s.keys) != len(other.keys) {
		return false
	}
	for i, key := range s.keys {
		if other.keys[i] != key || other.values[key] != s.values[key] {
			return false
		}
	}
	return true
}

// MarshalYAML writes the mapping in insertion order.
func (s Styles) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range s.Properties() {
		var valueNode yaml.Node
		encoded, err := p.Value.MarshalYAML()
		if err != nil {
			return nil, err
		}
		if err := valueNode.Encode(encoded); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Name},
			&valueNode,
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping and keeps the document's key order.
func (s *Styles) UnmarshalYAML(node *yaml.Node) error {
	*s = Styles{}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: styles must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		var value Value
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		s.Set(node.Content[i].Value, value)
	}
	return nil
}

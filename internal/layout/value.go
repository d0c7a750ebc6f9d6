package layout

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind tags the dynamic type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "null"
	}
}

// Value is a single style property value: a length or keyword string, a bare
// number, or null. Values are stored as given and never validated.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Pixels returns n rendered as a pixel length such as "150px".
func Pixels(n float64) Value {
	return String(FormatNumber(n) + "px")
}

// Kind reports the dynamic type of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

// Float returns the numeric payload.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the string payload.
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Empty reports whether v is null or the empty string. Generators omit empty
// values.
func (v Value) Empty() bool {
	return v.kind == KindNull || (v.kind == KindString && v.str == "")
}

// String renders v the way it appears in a CSS declaration.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return FormatNumber(v.num)
	default:
		return ""
	}
}

// GoString is used by %#v and keeps test failures readable.
func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("layout.String(%q)", v.str)
	case KindNumber:
		return fmt.Sprintf("layout.Number(%s)", FormatNumber(v.num))
	default:
		return "layout.Null()"
	}
}

// FormatNumber renders n without trailing zeros: 1 -> "1", 0.5 -> "0.5".
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// MarshalYAML encodes numbers as YAML numbers and strings as YAML strings.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case KindString:
		return v.str, nil
	case KindNumber:
		return v.num, nil
	default:
		return nil, nil
	}
}

// UnmarshalYAML decodes a scalar, keeping its YAML type: `1` is a number while
// `"1"` and `1px` are strings.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: style value must be a scalar", node.Line)
	}

	switch node.ShortTag() {
	case "!!null":
		*v = Null()
	case "!!int", "!!float":
		var n float64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*v = Number(n)
	default:
		*v = String(node.Value)
	}
	return nil
}

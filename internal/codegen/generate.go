package codegen

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/flexforge/internal/layout"
)

// HTML renders the container markup with one labeled child per item.
func HTML(doc layout.Document) string {
	var b strings.Builder
	b.WriteString("<div class=\"container\">\n")
	for _, item := range doc.Items {
		fmt.Fprintf(&b, "  <div class=\"item item-%d\">%d</div>\n", item.ID, item.ID)
	}
	b.WriteString("</div>")
	return b.String()
}

// CSS renders a .container rule followed by one .item-<id> rule per item.
func CSS(doc layout.Document) string {
	var b strings.Builder
	writeRule(&b, ".container", doc.Container)
	for _, item := range doc.Items {
		writeRule(&b, fmt.Sprintf(".item-%d", item.ID), item.Styles)
	}
	return b.String()
}

func writeRule(b *strings.Builder, selector string, styles layout.Styles) {
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, p := range visible(styles) {
		fmt.Fprintf(b, "  %s: %s;\n", KebabCase(p.Name), p.Value.String())
	}
	b.WriteString("}\n\n")
}

// WordPress renders a snippet for a custom HTML block: the markup, a blank
// line, and the stylesheet inside a <style> element.
func WordPress(doc layout.Document) string {
	return HTML(doc) + "\n\n<style>\n" + CSS(doc) + "</style>"
}

// JSX renders a React function component. The container and each item get
// their own style object constant.
func JSX(doc layout.Document) string {
	var items, elements strings.Builder
	for _, item := range doc.Items {
		name := itemVar(item.ID)
		fmt.Fprintf(&items, "  const %s = %s;\n", name, styleObject(item.Styles))
		fmt.Fprintf(&elements, "      <div style={%s}>%d</div>\n", name, item.ID)
	}

	component := doc.ComponentName()

	var b strings.Builder
	b.WriteString("import React from 'react';\n\n")
	fmt.Fprintf(&b, "const %s = () => {\n", component)
	fmt.Fprintf(&b, "  const containerStyles = %s;\n\n", styleObject(doc.Container))
	if items.Len() > 0 {
		b.WriteString(items.String())
		b.WriteString("\n")
	}
	b.WriteString("  return (\n")
	b.WriteString("    <div style={containerStyles}>\n")
	b.WriteString(elements.String())
	b.WriteString("    </div>\n")
	b.WriteString("  );\n")
	b.WriteString("};\n\n")
	fmt.Fprintf(&b, "export default %s;", component)
	return b.String()
}

func itemVar(id int) string {
	return fmt.Sprintf("item%dStyles", id)
}

// styleObject renders an object literal indented for use inside the component
// body.
func styleObject(styles layout.Styles) string {
	props := visible(styles)
	if len(props) == 0 {
		return "{}"
	}

	pairs := make([]string, 0, len(props))
	for _, p := range props {
		pairs = append(pairs, fmt.Sprintf("    %s: %s", jsKey(CamelCase(p.Name)), jsValue(p.Value)))
	}
	return "{\n" + strings.Join(pairs, ",\n") + "\n  }"
}

var jsEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

func jsValue(v layout.Value) string {
	if v.IsNumber() {
		return v.String()
	}
	return "'" + jsEscaper.Replace(v.String()) + "'"
}

func jsKey(key string) string {
	if isIdentifier(key) {
		return key
	}
	return "'" + jsEscaper.Replace(key) + "'"
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c == '$':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// visible drops properties whose value is empty or null.
func visible(styles layout.Styles) []layout.Property {
	props := styles.Properties()
	out := props[:0]
	for _, p := range props {
		if !p.Value.Empty() {
			out = append(out, p)
		}
	}
	return out
}

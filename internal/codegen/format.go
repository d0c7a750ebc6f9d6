package codegen

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/flexforge/internal/layout"
)

// Format identifies one export artifact.
type Format string

const (
	FormatHTML      Format = "html"
	FormatCSS       Format = "css"
	FormatWordPress Format = "wordpress"
	FormatJSX       Format = "jsx"
)

// Formats lists every artifact in display order.
var Formats = []Format{FormatHTML, FormatCSS, FormatWordPress, FormatJSX}

// ParseFormat resolves a format name. "react" is accepted for jsx.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html":
		return FormatHTML, nil
	case "css":
		return FormatCSS, nil
	case "wordpress", "wp":
		return FormatWordPress, nil
	case "jsx", "react":
		return FormatJSX, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Generate renders doc in format f.
func (f Format) Generate(doc layout.Document) string {
	switch f {
	case FormatHTML:
		return HTML(doc)
	case FormatCSS:
		return CSS(doc)
	case FormatWordPress:
		return WordPress(doc)
	case FormatJSX:
		return JSX(doc)
	}
	return ""
}

// FileName is the name used when the artifact is written to disk.
func (f Format) FileName() string {
	switch f {
	case FormatHTML:
		return "layout.html"
	case FormatCSS:
		return "layout.css"
	case FormatWordPress:
		return "layout.wordpress.html"
	case FormatJSX:
		return "Layout.jsx"
	}
	return string(f)
}

// Title is the heading shown above the artifact in the code view.
func (f Format) Title() string {
	switch f {
	case FormatHTML:
		return "HTML"
	case FormatCSS:
		return "CSS"
	case FormatWordPress:
		return "WordPress (Custom HTML Block)"
	case FormatJSX:
		return "React (JSX Component)"
	}
	return string(f)
}

// Artifact is one generated export.
type Artifact struct {
	Format Format
	Source string
}

// Artifacts renders doc in every format.
func Artifacts(doc layout.Document) []Artifact {
	out := make([]Artifact, 0, len(Formats))
	for _, f := range Formats {
		out = append(out, Artifact{Format: f, Source: f.Generate(doc)})
	}
	return out
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/flexforge/internal/codegen"
	"github.com/alexisbeaulieu97/flexforge/internal/config"
	"github.com/alexisbeaulieu97/flexforge/internal/layout"
)

// loadDocument opens the layout at path. An empty path yields the starter
// layout, as does a missing file when allowMissing is set.
func loadDocument(path string, allowMissing bool) (layout.Document, error) {
	if strings.TrimSpace(path) == "" {
		return layout.Starter(), nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return layout.Document{}, fmt.Errorf("resolve layout path: %w", err)
	}
	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, os.ErrNotExist) && allowMissing:
		return layout.Starter(), nil
	case err != nil:
		return layout.Document{}, fmt.Errorf("layout file does not exist: %w", err)
	case info.IsDir():
		return layout.Document{}, fmt.Errorf("layout path %s is a directory", abs)
	}

	doc, err := config.Load(abs)
	if err != nil {
		return layout.Document{}, fmt.Errorf("load layout: %w", err)
	}
	return doc, nil
}

// parseFormats resolves a comma separated format list. "all" selects every
// format.
func parseFormats(value string) ([]codegen.Format, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return codegen.Formats, nil
	}

	var out []codegen.Format
	seen := make(map[codegen.Format]bool)
	for _, part := range strings.Split(value, ",") {
		f, err := codegen.ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

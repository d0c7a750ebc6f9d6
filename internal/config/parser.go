package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/flexforge/internal/layout"
	flexerrors "github.com/alexisbeaulieu97/flexforge/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, parses, and validates the layout file at path.
func Load(path string) (layout.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layout.Document{}, flexerrors.NewParseError(path, 0, err)
	}

	file, err := Parse(path, data)
	if err != nil {
		return layout.Document{}, err
	}
	return file.Document(), nil
}

// Parse decodes and validates layout file contents. path is only used in
// error messages.
func Parse(path string, data []byte) (*LayoutFile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, flexerrors.NewParseError(path, 0, fmt.Errorf("layout file is empty"))
	}

	var file LayoutFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, flexerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateLayout(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// Save writes doc to path atomically: a temporary file is written first and
// renamed over the destination.
func Save(path string, doc layout.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create layout directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}
	return nil
}

// Encode validates doc and returns its layout file contents.
func Encode(doc layout.Document) ([]byte, error) {
	file := FromDocument(doc)
	if err := ValidateLayout(&file); err != nil {
		return nil, err
	}
	return Marshal(file)
}

// Marshal encodes a layout file with two-space indentation.
func Marshal(file LayoutFile) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return buf.Bytes(), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

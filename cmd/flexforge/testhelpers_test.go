package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const heroLayout = `version: "1.0"
name: Hero
component: HeroLayout
container:
  display: flex
  flexDirection: row
  gap: 12px
items:
  - id: 1
    styles:
      width: 200px
      height: 80px
      flexGrow: 1
  - id: 2
    styles:
      width: 100px
      height: 80px
`

func writeLayout(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

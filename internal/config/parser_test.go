package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/flexforge/internal/layout"
	flexerrors "github.com/alexisbeaulieu97/flexforge/pkg/errors"
)

func TestParseLayout(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
name: Hero
component: HeroLayout
container:
  display: flex
  flexDirection: column
  gap: 12px
items:
  - id: 2
    styles:
      width: 150px
      flexGrow: 1
  - id: 5
    styles:
      alignSelf: center
`

	invalidYAML := `version: [1, 0]
items: nope
`

	badVersion := `version: beta
items: []
`

	badComponent := `version: "1.0"
component: my-layout
items: []
`

	duplicateIDs := `version: "1.0"
items:
  - id: 1
  - id: 1
`

	zeroID := `version: "1.0"
items:
  - id: 0
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, file *LayoutFile, err error)
	}{
		{
			name:     "valid layout is parsed",
			contents: validYAML,
			assert: func(t *testing.T, file *LayoutFile, err error) {
				require.NoError(t, err)
				doc := file.Document()
				require.Equal(t, "Hero", doc.Name)
				require.Equal(t, "HeroLayout", doc.ComponentName())
				require.Equal(t, []string{"display", "flexDirection", "gap"}, doc.Container.Keys())
				require.Len(t, doc.Items, 2)
				require.Equal(t, 6, doc.NextID())

				grow, ok := doc.Items[0].Styles.Get(layout.PropFlexGrow)
				require.True(t, ok)
				require.True(t, grow.IsNumber())
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, file *LayoutFile, err error) {
				require.Error(t, err)
				var parseErr *flexerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "version must be semver",
			contents: badVersion,
			assert: func(t *testing.T, file *LayoutFile, err error) {
				var validationErr *flexerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "component must be an identifier",
			contents: badComponent,
			assert: func(t *testing.T, file *LayoutFile, err error) {
				var validationErr *flexerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "component", validationErr.Field)
			},
		},
		{
			name:     "duplicate ids are rejected",
			contents: duplicateIDs,
			assert: func(t *testing.T, file *LayoutFile, err error) {
				var validationErr *flexerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "items[1].id", validationErr.Field)
			},
		},
		{
			name:     "ids must be positive",
			contents: zeroID,
			assert: func(t *testing.T, file *LayoutFile, err error) {
				var validationErr *flexerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "items[0].id", validationErr.Field)
			},
		},
		{
			name:     "empty file",
			contents: "  \n",
			assert: func(t *testing.T, file *LayoutFile, err error) {
				var parseErr *flexerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			file, err := Parse("layout.yaml", []byte(tc.contents))
			tc.assert(t, file, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *flexerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	doc := layout.Starter()
	doc.Name = "Starter"
	doc.Items[1].Styles.Set(layout.PropFlexGrow, layout.Number(2))
	doc.Items[1].Styles.Set(layout.PropOrder, layout.String("3"))
	doc.Items[2].Styles.Set(layout.PropFlexBasis, layout.String(""))

	path := filepath.Join(t.TempDir(), "nested", "layout.yaml")
	require.NoError(t, Save(path, doc))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, doc.Name, loaded.Name)
	require.True(t, doc.Container.Equal(loaded.Container))
	require.Len(t, loaded.Items, len(doc.Items))
	for i := range doc.Items {
		require.Equal(t, doc.Items[i].ID, loaded.Items[i].ID)
		require.True(t, doc.Items[i].Styles.Equal(loaded.Items[i].Styles), "item %d", doc.Items[i].ID)
	}

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestSaveRejectsInvalidDocument(t *testing.T) {
	t.Parallel()

	doc := layout.Document{Items: []layout.Item{{ID: 1}, {ID: 1}}}
	err := Save(filepath.Join(t.TempDir(), "layout.yaml"), doc)
	var validationErr *flexerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

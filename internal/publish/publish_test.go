package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/flexforge/internal/codegen"
	"github.com/alexisbeaulieu97/flexforge/internal/config"
	"github.com/alexisbeaulieu97/flexforge/internal/layout"
	flexerrors "github.com/alexisbeaulieu97/flexforge/pkg/errors"
)

func TestPublishWritesAllArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	doc := layout.Starter()

	res, err := Publish(context.Background(), doc, Options{Dir: dir, IncludeLayout: true})
	require.NoError(t, err)
	require.Len(t, res.Files, len(codegen.Formats)+1)

	for _, f := range codegen.Formats {
		data, err := os.ReadFile(filepath.Join(dir, f.FileName()))
		require.NoError(t, err)
		assert.Equal(t, f.Generate(doc), string(data))
	}

	loaded, err := config.Load(filepath.Join(dir, LayoutFileName))
	require.NoError(t, err)
	assert.Len(t, loaded.Items, 3)

	for _, f := range res.Files {
		assert.True(t, f.Changed, f.Artifact)
		assert.Positive(t, f.Added, f.Artifact)
	}
}

func TestPublishSelectedFormats(t *testing.T) {
	dir := t.TempDir()

	res, err := Publish(context.Background(), layout.Starter(), Options{
		Dir:     dir,
		Formats: []codegen.Format{codegen.FormatCSS},
	})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "css", res.Files[0].Artifact)

	_, err = os.Stat(filepath.Join(dir, codegen.FormatHTML.FileName()))
	assert.True(t, os.IsNotExist(err))
}

func TestPublishReportsUnchangedFiles(t *testing.T) {
	dir := t.TempDir()
	doc := layout.Starter()
	opts := Options{Dir: dir, Formats: []codegen.Format{codegen.FormatCSS, codegen.FormatHTML}}

	_, err := Publish(context.Background(), doc, opts)
	require.NoError(t, err)

	doc.Container.Set(layout.PropGap, layout.String("12px"))
	res, err := Publish(context.Background(), doc, opts)
	require.NoError(t, err)

	changed := res.Changed()
	require.Len(t, changed, 1)
	assert.Equal(t, "css", changed[0].Artifact)
	assert.Equal(t, 1, changed[0].Added)
	assert.Equal(t, 1, changed[0].Removed)
	assert.Contains(t, changed[0].Diff, "-  gap: 8px;")
	assert.Contains(t, changed[0].Diff, "+  gap: 12px;")
}

func TestPublishDryRunLeavesDiskUntouched(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never")

	res, err := Publish(context.Background(), layout.Starter(), Options{Dir: dir, DryRun: true})
	require.NoError(t, err)
	assert.Len(t, res.Changed(), len(codegen.Formats))

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestPublishRequiresDir(t *testing.T) {
	_, err := Publish(context.Background(), layout.Starter(), Options{})

	var exportErr *flexerrors.ExportError
	require.True(t, errors.As(err, &exportErr))
}

func TestPublishRejectsInvalidLayout(t *testing.T) {
	doc := layout.Starter()
	doc.Component = "not-an-identifier"

	_, err := Publish(context.Background(), doc, Options{Dir: t.TempDir(), IncludeLayout: true})

	var exportErr *flexerrors.ExportError
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, ArtifactLayout, exportErr.Artifact)

	var validationErr *flexerrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestPublishHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Publish(ctx, layout.Starter(), Options{Dir: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPublishCommitsChangedFiles(t *testing.T) {
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	res, err := Publish(context.Background(), layout.Starter(), Options{
		Dir:     filepath.Join(root, "site"),
		Commit:  true,
		Message: "Export hero layout",
		Now:     func() time.Time { return when },
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.CommitHash)

	c, err := repo.CommitObject(plumbing.NewHash(res.CommitHash))
	require.NoError(t, err)
	assert.Equal(t, "Export hero layout", c.Message)
	assert.Equal(t, defaultAuthorName, c.Author.Name)
	assert.True(t, when.Equal(c.Author.When))

	tree, err := c.Tree()
	require.NoError(t, err)
	_, err = tree.File("site/layout.css")
	assert.NoError(t, err)
	_, err = tree.File("site/Layout.jsx")
	assert.NoError(t, err)

	again, err := Publish(context.Background(), layout.Starter(), Options{Dir: filepath.Join(root, "site"), Commit: true})
	require.NoError(t, err)
	assert.Empty(t, again.CommitHash, "no changes means no commit")
}

func TestPublishCommitOutsideRepository(t *testing.T) {
	_, err := Publish(context.Background(), layout.Starter(), Options{Dir: t.TempDir(), Commit: true})

	var exportErr *flexerrors.ExportError
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, "commit", exportErr.Artifact)
}

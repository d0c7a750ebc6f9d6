// Package publish writes generated artifacts to a directory and can record
// them as a git commit.
package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/alexisbeaulieu97/flexforge/internal/codegen"
	"github.com/alexisbeaulieu97/flexforge/internal/config"
	"github.com/alexisbeaulieu97/flexforge/internal/layout"
	"github.com/alexisbeaulieu97/flexforge/internal/logger"
	"github.com/alexisbeaulieu97/flexforge/pkg/diff"
	flexerrors "github.com/alexisbeaulieu97/flexforge/pkg/errors"
)

// LayoutFileName is the name of the layout document written next to the
// artifacts.
const LayoutFileName = "layout.yaml"

// ArtifactLayout labels the layout document in results and errors.
const ArtifactLayout = "layout"

const (
	defaultMessage     = "Update flexbox layout"
	defaultAuthorName  = "flexforge"
	defaultAuthorEmail = "flexforge@localhost"
)

// Options controls what Publish writes.
type Options struct {
	// Dir receives the files. It is created when missing.
	Dir string
	// Formats selects the artifacts. Empty means every format.
	Formats []codegen.Format
	// IncludeLayout also writes layout.yaml so the export can be reopened.
	IncludeLayout bool
	// DryRun computes results and diffs without touching the filesystem.
	DryRun bool

	// Commit stages changed files and commits them in the repository that
	// contains Dir.
	Commit      bool
	Message     string
	AuthorName  string
	AuthorEmail string

	Logger *logger.Logger
	Now    func() time.Time
}

// FileResult describes one written (or, in a dry run, pending) file.
type FileResult struct {
	Artifact string
	Path     string
	Changed  bool
	Added    int
	Removed  int
	Diff     string
}

// Result summarizes a Publish call.
type Result struct {
	Files []FileResult
	// CommitHash is set when a commit was created.
	CommitHash string
}

// Changed returns the files whose contents differ from what was on disk.
func (r *Result) Changed() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Changed {
			out = append(out, f)
		}
	}
	return out
}

type pending struct {
	artifact string
	name     string
	data     []byte
}

// Publish renders doc and writes the selected artifacts into opts.Dir.
func Publish(ctx context.Context, doc layout.Document, opts Options) (*Result, error) {
	if opts.Dir == "" {
		return nil, flexerrors.NewExportError("all", "", errors.New("output directory is required"))
	}

	files, err := render(doc, opts)
	if err != nil {
		return nil, err
	}

	if !opts.DryRun {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, flexerrors.NewExportError("all", opts.Dir, fmt.Errorf("create output directory: %w", err))
		}
	}

	result := &Result{Files: make([]FileResult, 0, len(files))}
	for _, f := range files {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return result, err
			}
		}

		res, err := writeFile(opts.Dir, f, opts.DryRun)
		if err != nil {
			return result, err
		}
		opts.Logger.Debug("artifact processed", "artifact", res.Artifact, "path", res.Path, "changed", res.Changed)
		result.Files = append(result.Files, res)
	}

	if opts.Commit && !opts.DryRun {
		hash, err := commit(opts, result.Changed())
		if err != nil {
			return result, err
		}
		result.CommitHash = hash
	}

	opts.Logger.Info("export complete", "dir", opts.Dir, "files", len(result.Files), "changed", len(result.Changed()), "commit", result.CommitHash)
	return result, nil
}

func render(doc layout.Document, opts Options) ([]pending, error) {
	formats := opts.Formats
	if len(formats) == 0 {
		formats = codegen.Formats
	}

	files := make([]pending, 0, len(formats)+1)
	for _, f := range formats {
		files = append(files, pending{artifact: string(f), name: f.FileName(), data: []byte(f.Generate(doc))})
	}

	if opts.IncludeLayout {
		data, err := config.Encode(doc)
		if err != nil {
			return nil, flexerrors.NewExportError(ArtifactLayout, LayoutFileName, err)
		}
		files = append(files, pending{artifact: ArtifactLayout, name: LayoutFileName, data: data})
	}
	return files, nil
}

func writeFile(dir string, f pending, dryRun bool) (FileResult, error) {
	path := filepath.Join(dir, f.name)
	res := FileResult{Artifact: f.artifact, Path: path}

	before, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return res, flexerrors.NewExportError(f.artifact, path, err)
	}

	res.Changed = err != nil || string(before) != string(f.data)
	if !res.Changed {
		return res, nil
	}

	res.Added, res.Removed = diff.Stat(before, f.data)
	res.Diff = diff.Unified(before, f.data, path, path+" (generated)")
	if dryRun {
		return res, nil
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, f.data, 0o644); err != nil {
		return res, flexerrors.NewExportError(f.artifact, path, fmt.Errorf("write temporary file: %w", err))
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return res, flexerrors.NewExportError(f.artifact, path, fmt.Errorf("rename temporary file: %w", err))
	}
	return res, nil
}

func commit(opts Options, changed []FileResult) (string, error) {
	if len(changed) == 0 {
		opts.Logger.Info("nothing to commit", "dir", opts.Dir)
		return "", nil
	}

	repo, err := git.PlainOpenWithOptions(opts.Dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", flexerrors.NewExportError("commit", opts.Dir, fmt.Errorf("open repository: %w", err))
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", flexerrors.NewExportError("commit", opts.Dir, fmt.Errorf("open worktree: %w", err))
	}

	root, err := filepath.EvalSymlinks(wt.Filesystem.Root())
	if err != nil {
		return "", flexerrors.NewExportError("commit", opts.Dir, err)
	}
	for _, f := range changed {
		abs, err := filepath.Abs(f.Path)
		if err == nil {
			abs, err = filepath.EvalSymlinks(abs)
		}
		if err != nil {
			return "", flexerrors.NewExportError(f.Artifact, f.Path, err)
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil {
			return "", flexerrors.NewExportError(f.Artifact, f.Path, err)
		}
		if _, err := wt.Add(filepath.ToSlash(rel)); err != nil {
			return "", flexerrors.NewExportError(f.Artifact, f.Path, fmt.Errorf("stage: %w", err))
		}
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	sig := &object.Signature{
		Name:  valueOr(opts.AuthorName, defaultAuthorName),
		Email: valueOr(opts.AuthorEmail, defaultAuthorEmail),
		When:  now(),
	}
	hash, err := wt.Commit(valueOr(opts.Message, defaultMessage), &git.CommitOptions{Author: sig})
	if err != nil {
		return "", flexerrors.NewExportError("commit", opts.Dir, fmt.Errorf("commit: %w", err))
	}
	return hash.String(), nil
}

func valueOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

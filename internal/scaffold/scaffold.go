// Package scaffold writes generated files to disk and verifies the result.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/magic-expo/cli/internal/errors"
	"github.com/magic-expo/cli/internal/templates"
)

// FileSet is an ordered set of files to write.
type FileSet interface {
	Files() []templates.File
}

// Option configures a scaffold run.
type Option func(*settings)

type settings struct {
	reporter Reporter
	fileMode os.FileMode
	dirMode  os.FileMode
}

// WithReporter sets the event reporter.
func WithReporter(r Reporter) Option {
	return func(s *settings) {
		if r != nil {
			s.reporter = r
		}
	}
}

// Scaffold writes every file of set under targetDir, creating directories as
// needed. Existing files are skipped unless overwrite is set, in which case
// they are replaced atomically and keep their permission bits. The context is checked between files; files
// already written by a cancelled run are left in place.
func Scaffold(ctx context.Context, targetDir string, set FileSet, overwrite bool, opts ...Option) error {
	s := settings{
		reporter: nopReporter{},
		fileMode: 0o644,
		dirMode:  0o755,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if err := os.MkdirAll(targetDir, s.dirMode); err != nil {
		return fsError("creating directory", targetDir, err)
	}

	for _, f := range set.Files() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("scaffold interrupted before %s: %w", f.Path, err)
		}

		dest, err := containedPath(targetDir, f.Path)
		if err != nil {
			return err
		}

		info, err := lstat(dest)
		if err != nil {
			return fsError("checking", dest, err)
		}
		existed := info != nil
		if existed && !overwrite {
			s.reporter.Report(Event{Kind: Skipped, Path: f.Path})
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dest), s.dirMode); err != nil {
			return fsError("creating directory", filepath.Dir(dest), err)
		}

		mode := s.fileMode
		if existed && info.Mode().IsRegular() {
			mode = info.Mode().Perm()
		}

		if err := atomicWrite(dest, []byte(f.Content), mode); err != nil {
			return fsError("writing", dest, err)
		}

		kind := Created
		if existed {
			kind = Overwritten
		}
		s.reporter.Report(Event{Kind: kind, Path: f.Path})
	}

	return nil
}

// containedPath joins a slash-separated manifest path onto root and rejects
// absolute paths and paths that climb out of root.
func containedPath(root, rel string) (string, error) {
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("path %q is outside the project root", rel),
			"path",
			"",
		)
	}
	return filepath.Join(root, local), nil
}

// lstat returns nil info when path does not exist.
func lstat(path string) (fs.FileInfo, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return info, err
}

func fsError(op, path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return oerrors.NewPermissionError(fmt.Sprintf("%s %s: %v", op, path, err), path)
	}
	return fmt.Errorf("%s %s: %w", op, path, err)
}

// atomicWrite writes data to a temp file in the destination directory and
// renames it over path.
func atomicWrite(path string, data []byte, mode os.FileMode) error {
	dir, base := filepath.Split(path)

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	defer func(tmp *os.File) {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}(tmp)

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

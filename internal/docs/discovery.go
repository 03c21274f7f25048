package docs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/raggedy/internal/dialect"
	derrors "git.home.luguber.info/inful/raggedy/internal/docs/errors"
	"git.home.luguber.info/inful/raggedy/internal/foundation/errors"
	"git.home.luguber.info/inful/raggedy/internal/logfields"
	"git.home.luguber.info/inful/raggedy/internal/metrics"
	"git.home.luguber.info/inful/raggedy/internal/observability"
)

// CollectPaths returns the paths of every markdown and asciidoc file below
// root, depth-first. See Scanner.CollectPaths.
func CollectPaths(ctx context.Context, root string) ([]string, error) {
	return NewScanner().CollectPaths(ctx, root)
}

// CollectPaths walks root recursively and returns the files whose extension
// names a supported dialect. Paths are root joined with the entry names, so
// an absolute root yields absolute paths.
//
// Symlinks are followed when deciding whether an entry is a directory, and
// there is no cycle detection: a tree with a symlink loop will not terminate.
// Any directory that cannot be read aborts the walk; there are no partial
// results.
func (s *Scanner) CollectPaths(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		cause := fmt.Errorf("%w: %w", derrors.ErrDocsDirWalkFailed, err)
		if os.IsNotExist(err) {
			cause = fmt.Errorf("%w: %w", derrors.ErrDocsPathNotFound, err)
		}
		return nil, errors.FileSystemError("cannot access scan root").
			WithContext("path", root).
			WithCause(cause).
			Build()
	}
	if !info.IsDir() {
		return nil, errors.FileSystemError("invalid scan root").
			WithContext("path", root).
			WithCause(derrors.ErrRootNotDirectory).
			Build()
	}

	paths := make([]string, 0)
	if err := s.walkDocsDirectory(ctx, root, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// walkDocsDirectory appends the documentation files below dir to paths.
func (s *Scanner) walkDocsDirectory(ctx context.Context, dir string, paths *[]string) error {
	if err := ctx.Err(); err != nil {
		return canceled(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.FileSystemError("failed to read directory").
			WithContext("path", dir).
			WithCause(fmt.Errorf("%w: %w", derrors.ErrDocsDirWalkFailed, err)).
			Build()
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if isDir(entry, path) {
			if err := s.walkDocsDirectory(ctx, path, paths); err != nil {
				return err
			}
			continue
		}

		d := dialect.ForFile(entry.Name())
		if d == dialect.None {
			s.recorder.IncFileResult(metrics.FileSkipped)
			observability.DebugContext(ctx, "Skipping file", logfields.Path(path))
			continue
		}

		s.recorder.IncFileResult(metrics.FileMatched)
		*paths = append(*paths, path)
		observability.DebugContext(ctx, "Discovered file", logfields.Path(path), logfields.Dialect(d.String()))
	}
	return nil
}

// isDir reports whether entry is a directory, following symlinks. A symlink
// whose target cannot be stat'ed is not a directory.
func isDir(entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func canceled(err error) error {
	return errors.RuntimeError("scan interrupted").
		WithCause(fmt.Errorf("%w: %w", derrors.ErrScanCanceled, err)).
		Build()
}

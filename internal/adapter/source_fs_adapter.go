// Package adapter contains the infrastructure adapters used by the verdict CLI:
// filesystem access, suite resolution, the go test engine and report storage.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	m "verdict.dev/pkg/verdict/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the resolver
// relies on when scanning user projects, so resolution logic can be tested
// without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so callers can check existence or
	// distinguish between files and directories.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// ReadDir lists the entries of a directory.
	ReadDir(ctx context.Context, dir m.Path) ([]os.DirEntry, error)

	// FindProjectRoot searches for a go.mod file walking up from startDir.
	FindProjectRoot(ctx context.Context, startDir m.Path) (m.Path, error)

	// AbsPath returns an absolute representation of path.
	AbsPath(ctx context.Context, path m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if !recursive || skipDir(filepath.Base(path)) {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

func skipDir(name string) bool {
	switch name {
	case ".git", "vendor", "node_modules", "testdata":
		return true
	}

	return len(name) > 1 && (name[0] == '.' || name[0] == '_')
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	// #nosec G304 - path is a user project file selected for scanning
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadDir lists the entries of dir.
func (a *LocalSourceFSAdapter) ReadDir(_ context.Context, dir m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(dir))
}

// FindProjectRoot searches for go.mod walking up the directory tree from startDir.
func (a *LocalSourceFSAdapter) FindProjectRoot(_ context.Context, startDir m.Path) (m.Path, error) {
	dir, err := filepath.Abs(string(startDir))
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return m.Path(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent directory of %s", startDir)
		}

		dir = parent
	}
}

// AbsPath returns the absolute form of path.
func (a *LocalSourceFSAdapter) AbsPath(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

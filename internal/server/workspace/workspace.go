package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/studiosync/syncserver/internal/checksum"
	"github.com/studiosync/syncserver/internal/utils"
)

const pathSep = string(filepath.Separator)

var (
	ErrInvalidPath     = errors.New("invalid path")
	ErrPathEscapesRoot = errors.New("path escapes project root")
	ErrNotADirectory   = errors.New("project root is not a directory")
)

// WriteError is returned when a file could not be materialized in the workspace
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Workspace writes files into a project tree.
// Every path it accepts is relative to Root and can never resolve outside of it.
type Workspace struct {
	root string
}

func New(rootDir string) (*Workspace, error) {
	root, err := utils.ResolvePath(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", rootDir, err)
	}

	if !utils.DirExists(root) {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	return &Workspace{root: root}, nil
}

func (w *Workspace) Root() string {
	return w.root
}

// Resolve maps a project relative path to an absolute path inside the root
func (w *Workspace) Resolve(relPath string) (string, error) {
	cleaned, err := CleanRelPath(relPath)
	if err != nil {
		return "", err
	}

	// resolves symlinks as if root were the filesystem root
	fullPath, err := securejoin.SecureJoin(w.root, cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	return fullPath, nil
}

// Write replaces the content of relPath, creating parent directories as needed
func (w *Workspace) Write(relPath string, content string) error {
	fullPath, err := w.Resolve(relPath)
	if err != nil {
		return &WriteError{Path: relPath, Err: err}
	}

	if err := utils.EnsureParent(fullPath); err != nil {
		return &WriteError{Path: relPath, Err: fmt.Errorf("create parent directory: %w", err)}
	}

	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		return &WriteError{Path: relPath, Err: fmt.Errorf("write file: %w", err)}
	}

	return nil
}

// Checksum returns the digest of the file currently stored at relPath.
// The second value is false when there is no regular file there.
func (w *Workspace) Checksum(relPath string) (string, bool) {
	fullPath, err := w.Resolve(relPath)
	if err != nil {
		return "", false
	}

	if !utils.IsRegularFile(fullPath) {
		return "", false
	}

	sum, err := checksum.FileChecksum(fullPath)
	if err != nil {
		return "", false
	}

	return sum, true
}

// CleanRelPath normalizes a caller supplied path and rejects anything that is
// absolute or climbs above the root.
func CleanRelPath(relPath string) (string, error) {
	if strings.TrimSpace(relPath) == "" || strings.ContainsRune(relPath, 0) {
		return "", ErrInvalidPath
	}

	// callers may send either separator
	normalized := filepath.FromSlash(strings.ReplaceAll(relPath, "\\", "/"))

	if filepath.IsAbs(normalized) || filepath.VolumeName(normalized) != "" || strings.HasPrefix(normalized, pathSep) {
		return "", ErrPathEscapesRoot
	}

	cleaned := filepath.Clean(normalized)
	if cleaned == "." {
		return "", ErrInvalidPath
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+pathSep) {
		return "", ErrPathEscapesRoot
	}

	return cleaned, nil
}

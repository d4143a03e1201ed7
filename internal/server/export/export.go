package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	gitignore "github.com/sabhiram/go-gitignore"
)

// Walker collects the exportable files below a source directory
type Walker struct {
	sourceDir  string
	prefix     string
	extensions mapset.Set[string]
	skipDirs   mapset.Set[string]
	ignore     *gitignore.GitIgnore
}

// NewWalker creates a walker for config.SourceDir resolved against projectRoot
func NewWalker(projectRoot string, config *Config) *Walker {
	extensions := mapset.NewThreadUnsafeSet[string]()
	for _, ext := range config.Extensions {
		extensions.Add(strings.ToLower(ext))
	}

	var ignore *gitignore.GitIgnore
	if len(config.Ignore) > 0 {
		ignore = gitignore.CompileIgnoreLines(config.Ignore...)
	}

	return &Walker{
		sourceDir:  filepath.Join(projectRoot, config.SourceDir),
		prefix:     strings.Trim(filepath.ToSlash(config.Prefix), "/"),
		extensions: extensions,
		skipDirs:   mapset.NewThreadUnsafeSet(config.SkipDirs...),
		ignore:     ignore,
	}
}

func (w *Walker) SourceDir() string {
	return w.sourceDir
}

// Walk returns every eligible file in lexical, depth-first order.
// A missing source directory is not an error and yields no files.
func (w *Walker) Walk(ctx context.Context) ([]ExportedFile, error) {
	files := make([]ExportedFile, 0)

	if _, err := os.Stat(w.sourceDir); errors.Is(err, fs.ErrNotExist) {
		slog.Warn("export source dir missing", "path", w.sourceDir)
		return files, nil
	}

	err := filepath.WalkDir(w.sourceDir, func(fullPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if fullPath == w.sourceDir {
			return nil
		}

		relPath, err := filepath.Rel(w.sourceDir, fullPath)
		if err != nil {
			return fmt.Errorf("get relative path: %w", err)
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if w.shouldSkipDir(d.Name(), relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !w.shouldExport(d.Name(), relPath) {
			return nil
		}

		content, err := os.ReadFile(fullPath)
		if err != nil {
			slog.Warn("export read error", "path", relPath, "error", err)
			return nil
		}

		files = append(files, ExportedFile{
			Path:    w.exportPath(relPath),
			Content: string(content),
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	return files, nil
}

func (w *Walker) shouldSkipDir(name string, relPath string) bool {
	if isHidden(name) {
		return true
	}
	if w.skipDirs.Contains(name) {
		return true
	}
	return w.ignore != nil && w.ignore.MatchesPath(relPath+"/")
}

func (w *Walker) shouldExport(name string, relPath string) bool {
	if isHidden(name) {
		return false
	}
	if !w.extensions.Contains(strings.ToLower(filepath.Ext(name))) {
		return false
	}
	return w.ignore == nil || !w.ignore.MatchesPath(relPath)
}

func (w *Walker) exportPath(relPath string) string {
	if w.prefix == "" {
		return relPath
	}
	return path.Join(w.prefix, relPath)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

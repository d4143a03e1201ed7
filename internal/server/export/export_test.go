package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func exportedPaths(files []ExportedFile) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	return paths
}

func TestWalk_AllowListAndSkips(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/a.ts":                  "export const a = 1",
		"src/a.png":                 "binary",
		"src/notes.txt":             "notes",
		"src/component.tsx":         "<div/>",
		"src/node_modules/b.ts":     "dep",
		"src/.cache/c.ts":           "cached",
		"src/.env.json":             "{}",
		"src/styles/Main.CSS":       "body {}",
		"src/pages/shop/index.jsx":  "page",
		"src/pages/shop/README.md":  "# shop",
		"outside.ts":                "not under src",
		"node_modules/pkg/index.js": "dep",
	})

	w := NewWalker(root, &Config{
		SourceDir:  DefaultSourceDir,
		Prefix:     DefaultPrefix,
		Extensions: DefaultExtensions,
		SkipDirs:   DefaultSkipDirs,
	})

	files, err := w.Walk(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"src/a.ts",
		"src/component.tsx",
		"src/pages/shop/README.md",
		"src/pages/shop/index.jsx",
		"src/styles/Main.CSS",
	}, exportedPaths(files))
	assert.Equal(t, "export const a = 1", files[0].Content)
}

func TestWalk_ScenarioOnlyTypeScript(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/a.ts":              "a",
		"src/a.png":             "png",
		"src/node_modules/b.ts": "b",
	})

	cfg := DefaultConfig()
	files, err := NewWalker(root, &cfg).Walk(context.Background())
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, ExportedFile{Path: "src/a.ts", Content: "a"}, files[0])
}

func TestWalk_MissingSourceDir(t *testing.T) {
	cfg := DefaultConfig()
	files, err := NewWalker(t.TempDir(), &cfg).Walk(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestWalk_IgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/a.ts":                "a",
		"src/a.stories.tsx":       "story",
		"src/generated/schema.ts": "gen",
		"src/lib/generated/x.ts":  "gen",
		"src/lib/keep.ts":         "keep",
	})

	cfg := DefaultConfig()
	cfg.Ignore = []string{"*.stories.tsx", "generated"}

	files, err := NewWalker(root, &cfg).Walk(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.ts", "src/lib/keep.ts"}, exportedPaths(files))
}

func TestWalk_CustomPrefix(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"app/main.js": "main"})

	cfg := DefaultConfig()
	cfg.SourceDir = "app"
	cfg.Prefix = "app/"

	files, err := NewWalker(root, &cfg).Walk(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"app/main.js"}, exportedPaths(files))
}

func TestWalk_CanceledContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"src/a.ts": "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultConfig()
	_, err := NewWalker(root, &cfg).Walk(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	bad := DefaultConfig()
	bad.SourceDir = ""
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.SourceDir = "/abs/src"
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Extensions = nil
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Extensions = []string{"ts"}
	assert.Error(t, bad.Validate())
}

package export

import (
	"fmt"
	"path/filepath"
	"strings"
)

var (
	DefaultExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".json", ".css", ".html", ".md"}
	DefaultSkipDirs   = []string{"node_modules"}
)

const (
	DefaultSourceDir = "src"
	DefaultPrefix    = "src"
)

type Config struct {
	// SourceDir is the directory to export, relative to the project root
	SourceDir string `mapstructure:"source_dir"`
	// Prefix is prepended to every exported path
	Prefix string `mapstructure:"prefix"`
	// Extensions is the allow-list of file extensions, matched case-insensitively
	Extensions []string `mapstructure:"extensions"`
	// SkipDirs are directory names that are never descended into
	SkipDirs []string `mapstructure:"skip_dirs"`
	// Ignore holds additional gitignore style patterns
	Ignore []string `mapstructure:"ignore"`
}

func DefaultConfig() Config {
	return Config{
		SourceDir:  DefaultSourceDir,
		Prefix:     DefaultPrefix,
		Extensions: append([]string(nil), DefaultExtensions...),
		SkipDirs:   append([]string(nil), DefaultSkipDirs...),
	}
}

func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("export `source_dir` is required")
	}
	if filepath.IsAbs(c.SourceDir) {
		return fmt.Errorf("export `source_dir` must be relative to the project root")
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("export `extensions` must not be empty")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("export extension %q must start with a dot", ext)
		}
	}
	return nil
}

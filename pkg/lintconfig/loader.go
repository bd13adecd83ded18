package lintconfig

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/zbiljic/gitexec"
)

var (
	// Cached resolved configuration to avoid loading multiple times
	cachedConfig *Config
	// Mutex for thread-safe access to the cache
	configMutex = &sync.Mutex{}
)

// configFileNames are the file names probed in each searched directory,
// in priority order.
var configFileNames = []string{
	".comlintrc.json",
	".comlintrc.yaml",
	".comlintrc.yml",
	"comlint.config.json",
	"package.json",
}

// Load returns the resolved lint configuration for the current directory.
// The first call discovers, parses and resolves the configuration; later
// calls return the same object. When no configuration file exists the
// built-in default applies.
func Load(ctx context.Context) (*Config, error) {
	configMutex.Lock()
	defer configMutex.Unlock()

	if cachedConfig != nil {
		return cachedConfig, nil
	}

	cfg := Default()
	baseDir := ""

	if path, ok := FindFile(); ok {
		parsed, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		cfg = parsed
		baseDir = filepath.Dir(path)
	}

	resolved, err := ResolveFrom(ctx, cfg, baseDir)
	if err != nil {
		return nil, err
	}

	cachedConfig = resolved
	return resolved, nil
}

// LoadFile parses and resolves the configuration at an explicit path,
// bypassing discovery and the cache.
func LoadFile(ctx context.Context, path string) (*Config, error) {
	cfg, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return ResolveFrom(ctx, cfg, filepath.Dir(path))
}

// FindFile searches for a configuration file in hierarchical order.
func FindFile() (string, bool) {
	for _, path := range GetSearchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		// a package.json only counts when it embeds a configuration
		if filepath.Base(path) == "package.json" {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if _, ok := parsePackageJSON(data); !ok {
				continue
			}
		}
		return path, true
	}
	return "", false
}

// GetSearchPaths returns the candidate configuration paths: every known
// file name in the current directory, then in each parent up to the git
// worktree root, stopping at the home directory otherwise.
func GetSearchPaths() []string {
	var paths []string

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	stopDir := ""
	if root, ok := gitWorktreeRoot(cwd); ok {
		stopDir = root
	}

	homeDir := lo.Must(os.UserHomeDir())

	dir := cwd
	for {
		for _, name := range configFileNames {
			paths = append(paths, filepath.Join(dir, name))
		}

		if dir == stopDir {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir || parent == homeDir {
			break // reached root or home directory
		}
		dir = parent
	}

	return paths
}

// ResetCache clears the cached configuration (useful for testing)
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()

	cachedConfig = nil
}

// gitWorktreeRoot returns the top-level directory of the git worktree
// containing path, if any.
func gitWorktreeRoot(path string) (string, bool) {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir:       path,
		ShowToplevel: true,
	})
	if err != nil {
		return "", false
	}

	root := strings.TrimSpace(string(out))
	return root, root != ""
}

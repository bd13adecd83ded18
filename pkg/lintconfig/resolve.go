package lintconfig

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/carlmjohnson/requests"

	"github.com/zbiljic/comlint/pkg/rule"
)

// Resolve flattens the configuration's extends chain into a single rule
// set. Extends entries are processed depth-first in declared order, later
// entries override earlier ones, and the configuration's own rules
// override everything inherited.
func Resolve(ctx context.Context, cfg *Config) (*Config, error) {
	return ResolveFrom(ctx, cfg, "")
}

// ResolveFrom is Resolve with an explicit base directory for relative
// file references in extends entries.
func ResolveFrom(ctx context.Context, cfg *Config, baseDir string) (*Config, error) {
	r := &resolver{
		baseDir: baseDir,
		visited: make(map[string]struct{}),
	}

	rules, err := r.flatten(ctx, cfg)
	if err != nil {
		return nil, err
	}

	resolved := &Config{Rules: rules}
	if err := resolved.Validate(); err != nil {
		return nil, err
	}

	return resolved, nil
}

type resolver struct {
	baseDir string
	// visited holds the extends references on the current resolution path,
	// used for cycle detection.
	visited map[string]struct{}
}

func (r *resolver) flatten(ctx context.Context, cfg *Config) (map[string]rule.Rule, error) {
	merged := make(map[string]rule.Rule)

	for _, ref := range cfg.Extends {
		inherited, err := r.resolveRef(ctx, ref)
		if err != nil {
			return nil, err
		}
		for name, rl := range inherited {
			merged[name] = rl
		}
	}

	for name, rl := range cfg.Rules {
		merged[name] = rl
	}

	return merged, nil
}

func (r *resolver) resolveRef(ctx context.Context, ref string) (map[string]rule.Rule, error) {
	key := r.refKey(ref)
	if _, ok := r.visited[key]; ok {
		return nil, errExtendsCycle(ref)
	}
	r.visited[key] = struct{}{}
	defer delete(r.visited, key)

	switch {
	case isRemoteRef(ref):
		cfg, err := fetchSharedConfig(ctx, ref)
		if err != nil {
			return nil, err
		}
		return r.flatten(ctx, cfg)

	case isFileRef(ref):
		path := ref
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.baseDir, path)
		}
		cfg, err := ParseFile(path)
		if err != nil {
			return nil, err
		}

		// nested file references resolve relative to their own file
		prevBaseDir := r.baseDir
		r.baseDir = filepath.Dir(path)
		defer func() { r.baseDir = prevBaseDir }()

		return r.flatten(ctx, cfg)

	default:
		preset, ok := Preset(ref)
		if !ok {
			return nil, errUnknownExtends(ref)
		}
		return r.flatten(ctx, preset)
	}
}

// refKey canonicalizes an extends reference so that aliases of the same
// preset or differently spelled paths cannot dodge cycle detection.
func (r *resolver) refKey(ref string) string {
	switch {
	case isRemoteRef(ref):
		return ref
	case isFileRef(ref):
		path := ref
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.baseDir, path)
		}
		return filepath.Clean(path)
	default:
		return canonicalPresetName(ref)
	}
}

func isRemoteRef(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func isFileRef(ref string) bool {
	return strings.HasPrefix(ref, "./") ||
		strings.HasPrefix(ref, "../") ||
		filepath.IsAbs(ref)
}

// fetchSharedConfig downloads a shareable configuration published as JSON.
func fetchSharedConfig(ctx context.Context, url string) (*Config, error) {
	var cfg Config

	err := requests.
		URL(url).
		Accept("application/json").
		ToJSON(&cfg).
		Fetch(ctx)
	if err != nil {
		return nil, errFailedToFetch(url, err)
	}

	return &cfg, nil
}

package lintconfig

import (
	"github.com/zbiljic/comlint/pkg/rule"
)

/**
 * The conventional preset mirrors commitlint's config-conventional:
 * https://github.com/conventional-changelog/commitlint/blob/master/%40commitlint/config-conventional/src/index.ts
 */
var conventionalPreset = &Config{
	Rules: map[string]rule.Rule{
		"body-leading-blank":     rule.New(rule.Warning, rule.Always, nil),
		"body-max-line-length":   rule.New(rule.Error, rule.Always, 100),
		"footer-leading-blank":   rule.New(rule.Warning, rule.Always, nil),
		"footer-max-line-length": rule.New(rule.Error, rule.Always, 100),
		"header-max-length":      rule.New(rule.Error, rule.Always, 100),
		"header-trim":            rule.New(rule.Error, rule.Always, nil),
		"subject-case": rule.New(rule.Error, rule.Never, []string{
			"sentence-case",
			"start-case",
			"pascal-case",
			"upper-case",
		}),
		"subject-empty":     rule.New(rule.Error, rule.Never, nil),
		"subject-full-stop": rule.New(rule.Error, rule.Never, "."),
		"type-case":         rule.New(rule.Error, rule.Always, "lower-case"),
		"type-empty":        rule.New(rule.Error, rule.Never, nil),
		"type-enum": rule.New(rule.Error, rule.Always, []string{
			"build",
			"chore",
			"ci",
			"docs",
			"feat",
			"fix",
			"perf",
			"refactor",
			"revert",
			"style",
			"test",
		}),
	},
}

// presets maps canonical preset names to their configuration.
var presets = map[string]*Config{
	"conventional": conventionalPreset,
}

// presetAliases maps the package-style names used in existing configs to
// their canonical preset names.
var presetAliases = map[string]string{
	"@commitlint/config-conventional": "conventional",
	"config-conventional":             "conventional",
}

// Preset returns the named preset configuration, resolving aliases. The
// second return value reports whether the name is registered.
func Preset(name string) (*Config, bool) {
	if canonical, ok := presetAliases[name]; ok {
		name = canonical
	}
	cfg, ok := presets[name]
	return cfg, ok
}

// PresetNames returns the canonical preset names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

// canonicalPresetName resolves aliases to the canonical preset name.
func canonicalPresetName(name string) string {
	if canonical, ok := presetAliases[name]; ok {
		return canonical
	}
	return name
}

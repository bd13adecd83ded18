package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zbiljic/comlint/pkg/lintconfig"
)

type (
	ctxKeyClackPromptStarted struct{}
)

func injectIntoCommandContextWithKey[K, V comparable](cmd *cobra.Command, key K, value V) {
	ctx := cmd.Context()
	ctx = context.WithValue(ctx, key, value)
	cmd.SetContext(ctx)
}

// loadLintConfig loads the resolved lint configuration, either from an
// explicit path or through discovery.
func loadLintConfig(ctx context.Context, configPath string) (*lintconfig.Config, error) {
	if configPath != "" {
		return lintconfig.LoadFile(ctx, configPath)
	}
	return lintconfig.Load(ctx)
}

// describeConfigSource names where the configuration came from, for
// user-facing messages.
func describeConfigSource(configPath string) string {
	if configPath != "" {
		return configPath
	}
	if path, ok := lintconfig.FindFile(); ok {
		return path
	}
	return "built-in defaults"
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/spf13/cobra"

	"github.com/zbiljic/comlint/internal/buildinfo"
	"github.com/zbiljic/comlint/pkg/lintconfig"
	"github.com/zbiljic/comlint/pkg/versioninfo"
)

// AppName - the name of the application.
const AppName = "comlint"

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "Commit message lint configuration tool",
	Long:  `Manage, resolve and validate commit message lint configuration`,
	Version: versioninfo.Info{
		Version: buildinfo.Version,
		Commit:  buildinfo.GitCommit,
		BuiltBy: buildinfo.BuiltBy,
	}.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
		cmd.SetContext(ctx)
	},
	RunE:          runRootE,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called my main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if strings.Contains(err.Error(), "arg(s)") || strings.Contains(err.Error(), "usage") {
			cmd.Usage() //nolint:errcheck
		}

		val, ok := cmd.Context().Value(ctxKeyClackPromptStarted{}).(bool)
		if ok && val {
			prompts.ExitOnError(err)
		} else {
			cobra.CheckErr(err)
		}
	}
}

func runRootE(cmd *cobra.Command, args []string) error {
	switch {
	case hasDiscoverableConfig():
		return runValidateE(cmd, args)
	default:
		cmd.Usage() //nolint:errcheck
		return nil
	}
}

func hasDiscoverableConfig() bool {
	_, ok := lintconfig.FindFile()
	return ok
}

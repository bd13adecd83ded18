package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zbiljic/comlint/internal/config"
)

var showCmd = &cobra.Command{
	Use: "show",
	Aliases: []string{
		"config",
	},
	Short:       "Show the effective lint configuration",
	Long:        `Resolves the discovered (or given) lint configuration, flattening the extends chain, and prints the effective rule set.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runShowE,
}

var showFlags = showOptions{
	Format: TableFormat,
}

type showOptions struct {
	Format     FormatType
	ConfigPath string
}

func showAddFlags(cmd *cobra.Command) {
	addConfigFlag(cmd, &showFlags.ConfigPath)
	addFormatFlag(cmd, &showFlags.Format)
}

func init() {
	showAddFlags(showCmd)

	rootCmd.AddCommand(showCmd)
}

func runShowE(cmd *cobra.Command, _ []string) error {
	// tool settings provide the default format when the flag is not given
	if !cmd.Flags().Changed("format") {
		toolCfg, err := config.Load()
		if err != nil {
			return err
		}
		if toolCfg.Format != "" {
			f, ok := ParseFormatType(toolCfg.Format)
			if !ok {
				return fmt.Errorf("unknown output format: '%s'", toolCfg.Format)
			}
			showFlags.Format = f
		}
	}

	cfg, err := loadLintConfig(cmd.Context(), showFlags.ConfigPath)
	if err != nil {
		return err
	}

	out, err := renderConfig(cfg, showFlags.Format)
	if err != nil {
		return err
	}

	fmt.Print(out)

	return nil
}

package cmd

import (
	"fmt"

	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use: "validate",
	Aliases: []string{
		"check",
	},
	Short: "Validate the lint configuration",
	Long: `Validates the discovered (or given) lint configuration: rule names must
be recognized, severities and conditions must be within their enumerations,
and rule parameters must match the shape each rule expects. The extends
chain is resolved, so unknown or cyclic references are reported as well.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runValidateE,
}

var validateFlags = validateOptions{}

type validateOptions struct {
	ConfigPath string
}

func validateAddFlags(cmd *cobra.Command) {
	addConfigFlag(cmd, &validateFlags.ConfigPath)
}

func init() {
	validateAddFlags(validateCmd)

	rootCmd.AddCommand(validateCmd)
}

func runValidateE(cmd *cobra.Command, _ []string) error {
	source := describeConfigSource(validateFlags.ConfigPath)

	plain := plainOutput()

	cfg, err := loadLintConfig(cmd.Context(), validateFlags.ConfigPath)
	if err != nil {
		if !plain {
			fmt.Printf("%s %s\n", picocolors.Red("✖"), source)
		}
		return err
	}

	if plain {
		fmt.Printf("configuration valid: %s (%d rules)\n", source, len(cfg.Rules))
	} else {
		fmt.Printf("%s configuration valid: %s %s\n",
			picocolors.Green("✔"),
			source,
			picocolors.Gray(fmt.Sprintf("(%d rules)", len(cfg.Rules))),
		)
	}

	return nil
}

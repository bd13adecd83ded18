package cmd

import (
	"fmt"

	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/zbiljic/comlint/pkg/rule"
)

var rulesCmd = &cobra.Command{
	Use:         "rules",
	Short:       "List recognized lint rules",
	Long:        `Lists every rule name the configuration format recognizes, with its description and its setting in the effective configuration.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runRulesE,
}

var rulesFlags = rulesOptions{
	MinSeverity: rule.Off,
}

type rulesOptions struct {
	MinSeverity rule.Severity
	ConfigPath  string
}

func rulesAddFlags(cmd *cobra.Command) {
	addConfigFlag(cmd, &rulesFlags.ConfigPath)
	cmd.Flags().VarP(enumflag.New(&rulesFlags.MinSeverity, "severity", rule.SeverityIds, enumflag.EnumCaseInsensitive), "severity", "s", "Only list rules configured at or above this severity (off, warn, error)")
}

func init() {
	rulesAddFlags(rulesCmd)

	rootCmd.AddCommand(rulesCmd)
}

func runRulesE(cmd *cobra.Command, _ []string) error {
	cfg, err := loadLintConfig(cmd.Context(), rulesFlags.ConfigPath)
	if err != nil {
		return err
	}

	if rulesFlags.MinSeverity > rule.Off {
		// only rules the effective configuration enables
		for _, name := range sortedEnabledRules(cfg, rulesFlags.MinSeverity) {
			printRuleLine(name, cfg.Rules[name])
		}
		return nil
	}

	for _, name := range rule.Names() {
		r, configured := cfg.Rules[name]
		if !configured {
			r = rule.Disabled()
		}
		printRuleLine(name, r)
	}

	return nil
}

func printRuleLine(name string, r rule.Rule) {
	def, _ := rule.Lookup(name)

	setting := r.Severity.ToString()
	if r.Enabled() {
		setting = fmt.Sprintf("%s/%s", r.Severity.ToString(), r.Condition)
	}

	if plainOutput() {
		fmt.Printf("%-24s %-14s %s\n", name, setting, def.Description)
	} else {
		fmt.Printf("%-24s %-14s %s\n", name, setting, picocolors.Gray(def.Description))
	}
}

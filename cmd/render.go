package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/duke-git/lancet/v2/maputil"
	"github.com/duke-git/lancet/v2/slice"
	"gopkg.in/yaml.v3"

	"github.com/zbiljic/comlint/pkg/lintconfig"
	"github.com/zbiljic/comlint/pkg/rule"
)

// renderConfig renders the resolved configuration in the requested format.
func renderConfig(cfg *lintconfig.Config, format FormatType) (string, error) {
	switch format {
	case JSONFormat:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case YAMLFormat:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return renderTable(cfg), nil
	}
}

// renderTable renders the rules as an aligned table, sorted by rule name.
func renderTable(cfg *lintconfig.Config) string {
	names := maputil.Keys(cfg.Rules)
	sort.Strings(names)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-24s %-8s %-8s %s\n", "RULE", "LEVEL", "WHEN", "VALUE")

	for _, name := range names {
		r := cfg.Rules[name]
		fmt.Fprintf(&sb, "%-24s %-8s %-8s %s\n",
			name,
			r.Severity.ToString(),
			string(r.Condition),
			formatRuleValue(r),
		)
	}

	return sb.String()
}

// formatRuleValue renders a rule parameter for table output.
func formatRuleValue(r rule.Rule) string {
	if r.Value == nil {
		return "-"
	}

	if items, ok := r.StringsValue(); ok {
		if len(items) == 1 {
			return items[0]
		}
		return strings.Join(items, ", ")
	}

	if n, ok := r.IntValue(); ok {
		return fmt.Sprintf("%d", n)
	}

	return fmt.Sprintf("%v", r.Value)
}

// sortedEnabledRules returns the names of rules in the configuration at or
// above the given severity, sorted.
func sortedEnabledRules(cfg *lintconfig.Config, min rule.Severity) []string {
	names := maputil.Keys(cfg.Rules)
	names = slice.Filter(names, func(_ int, name string) bool {
		return cfg.Rules[name].Severity >= min
	})
	sort.Strings(names)
	return names
}

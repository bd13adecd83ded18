package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"github.com/zbiljic/comlint/internal/config"
	"github.com/zbiljic/comlint/pkg/lintconfig"
	"github.com/zbiljic/comlint/pkg/rule"
	"github.com/zbiljic/comlint/pkg/termio"
)

// initConfigFileName is the file the init command writes.
const initConfigFileName = ".comlintrc.json"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a lint configuration file",
	Long: `Creates a ` + initConfigFileName + ` in the current directory. Without --yes an
interactive wizard asks for the rule set to extend, the allowed commit
types, the subject casing and the subject length limit.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runInitE,
}

var initFlags = initOptions{}

type initOptions struct {
	Yes   bool
	Force bool
}

func initAddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&initFlags.Yes, "yes", "y", false, "Write the default configuration without prompting")
	cmd.Flags().BoolVar(&initFlags.Force, "force", false, "Overwrite an existing configuration file")
}

func init() {
	initAddFlags(initCmd)

	rootCmd.AddCommand(initCmd)
}

type initAnswers struct {
	Preset      string
	Types       []string
	SubjectCase string
	MaxLength   string
}

func runInitE(cmd *cobra.Command, _ []string) error {
	path := filepath.Join(getWd(), initConfigFileName)

	if _, err := os.Stat(path); err == nil && !initFlags.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite", initConfigFileName)
	}

	cfg := lintconfig.Default()

	if !initFlags.Yes {
		if isNotTerminal {
			return errors.New("not a terminal, use --yes for non-interactive init")
		}

		answers, err := initRunWizard(cmd)
		if err != nil {
			if prompts.IsCancel(err) {
				prompts.Outro("Init cancelled")
				return nil
			}
			return err
		}

		cfg, err = initBuildConfig(answers)
		if err != nil {
			return err
		}
	}

	if err := initWriteConfig(cfg, path); err != nil {
		return err
	}

	if !initFlags.Yes {
		prompts.Outro(fmt.Sprintf("%s Wrote %s", picocolors.Green("✔"), initConfigFileName))
	} else {
		fmt.Printf("Wrote %s\n", initConfigFileName)
	}

	return nil
}

func initRunWizard(cmd *cobra.Command) (*initAnswers, error) {
	termio.ClearStdinBuffer()

	prompts.Intro(picocolors.BgCyan(picocolors.Black(fmt.Sprintf(" %s ", AppName))))
	// in order to show custom error
	injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)

	answers := initAnswers{
		Preset:      "conventional",
		Types:       lintconfig.DefaultTypes,
		SubjectCase: "lower-case",
		MaxLength:   "50",
	}

	// tool settings may pick a different starting preset
	if toolCfg, err := config.Load(); err == nil && toolCfg.Preset != "" {
		answers.Preset = toolCfg.Preset
	}

	err := prompts.Workflow(&answers).
		Step("Preset", func() (any, error) {
			var options []*prompts.SelectOption[string]

			names := lintconfig.PresetNames()
			sort.Strings(names)
			for _, name := range names {
				options = append(options, &prompts.SelectOption[string]{
					Label: name,
					Value: name,
				})
			}

			return prompts.Select(prompts.SelectParams[string]{
				Message:      "Select a rule set to extend",
				InitialValue: answers.Preset,
				Options:      options,
			})
		}).
		Step("Types", func() (any, error) {
			var options []*prompts.MultiSelectOption[string]
			for _, tok := range initSelectableTypes() {
				options = append(options, &prompts.MultiSelectOption[string]{
					Label: tok,
					Value: tok,
				})
			}

			return prompts.MultiSelect(prompts.MultiSelectParams[string]{
				Message:      "Select the allowed commit types",
				InitialValue: answers.Types,
				Options:      options,
			})
		}).
		Step("SubjectCase", func() (any, error) {
			var options []*prompts.SelectOption[string]
			for _, name := range rule.CaseNames {
				options = append(options, &prompts.SelectOption[string]{
					Label: name,
					Value: name,
				})
			}

			return prompts.Select(prompts.SelectParams[string]{
				Message:      "Select the subject casing",
				InitialValue: answers.SubjectCase,
				Options:      options,
			})
		}).
		Step("MaxLength", func() (any, error) {
			return prompts.Text(prompts.TextParams{
				Message:      "Enter the maximum subject length",
				InitialValue: answers.MaxLength,
				Validate: func(value string) error {
					n, err := strconv.Atoi(strings.TrimSpace(value))
					if err != nil || n <= 0 {
						return errors.New("please enter a positive number")
					}
					return nil
				},
			})
		}).
		Run()
	if err != nil {
		return nil, err
	}

	return &answers, nil
}

// initSelectableTypes returns the commit type tokens offered by the
// wizard: the conventional enumeration, which the defaults narrow down.
func initSelectableTypes() []string {
	if preset, ok := lintconfig.Preset("conventional"); ok {
		if tokens, ok := preset.Rules["type-enum"].StringsValue(); ok {
			return tokens
		}
	}
	return lintconfig.DefaultTypes
}

func initBuildConfig(answers *initAnswers) (*lintconfig.Config, error) {
	if len(answers.Types) == 0 {
		return nil, errors.New("please select at least one commit type")
	}

	maxLength, err := strconv.Atoi(strings.TrimSpace(answers.MaxLength))
	if err != nil {
		return nil, fmt.Errorf("invalid subject length: %w", err)
	}

	cfg := &lintconfig.Config{
		Extends: []string{answers.Preset},
		Rules: map[string]rule.Rule{
			"type-enum":          rule.New(rule.Error, rule.Always, answers.Types),
			"subject-case":       rule.New(rule.Error, rule.Always, answers.SubjectCase),
			"subject-max-length": rule.New(rule.Error, rule.Always, maxLength),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func initWriteConfig(cfg *lintconfig.Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}

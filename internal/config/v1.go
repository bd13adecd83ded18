package config

import (
	"fmt"

	"github.com/duke-git/lancet/v2/slice"

	"github.com/zbiljic/comlint/pkg/lintconfig"
)

const configVersionV1 = "1"

// knownFormats are the output formats the show command understands.
var knownFormats = []string{"table", "json", "yaml"}

type configV1 struct {
	Version string `json:"version"` // required by vconfig-go
	// Format is the default output format for the show command.
	Format string `json:"format,omitempty"`
	// Color disables styled terminal output when false.
	Color bool `json:"color"`
	// Preset is the rule set offered first by the init wizard.
	Preset string `json:"preset,omitempty"`
}

// newConfigV1 creates a new v1 configuration
func newConfigV1() *configV1 {
	return &configV1{
		Version: configVersionV1,
		Format:  "table",
		Color:   true,
		Preset:  "conventional",
	}
}

func (c *configV1) validateV1() error {
	if c.Format != "" && !slice.Contain(knownFormats, c.Format) {
		return fmt.Errorf("unknown output format: '%s'", c.Format)
	}

	if c.Preset != "" {
		if _, ok := lintconfig.Preset(c.Preset); !ok {
			return fmt.Errorf("unknown preset: '%s'", c.Preset)
		}
	}

	return nil
}

package lintconfig

import (
	"github.com/zbiljic/comlint/pkg/rule"
)

// Config is the commit-message lint configuration object: an ordered list
// of rule sets to inherit from and local rule settings layered on top.
type Config struct {
	Extends []string             `json:"extends,omitempty" yaml:"extends,omitempty"`
	Rules   map[string]rule.Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// DefaultTypes is the commit-type enumeration the default configuration
// narrows the conventional set down to.
var DefaultTypes = []string{
	"feat",
	"fix",
	"docs",
	"style",
	"refactor",
	"test",
	"chore",
}

// Default returns the configuration used when no lint config file is
// found: the conventional rule set with a narrower type enumeration, a
// lower-case subject and a 50 character subject limit.
func Default() *Config {
	return &Config{
		Extends: []string{"conventional"},
		Rules: map[string]rule.Rule{
			"type-enum":          rule.New(rule.Error, rule.Always, DefaultTypes),
			"subject-case":       rule.New(rule.Error, rule.Always, "lower-case"),
			"subject-max-length": rule.New(rule.Error, rule.Always, 50),
		},
	}
}

// Validate checks the configuration against the rule registry: every rule
// name must be recognized and every parameter must match the shape the
// rule expects. Extends entries are checked during Resolve, not here.
func (c *Config) Validate() error {
	for name, r := range c.Rules {
		if !rule.Known(name) {
			return errUnknownRule(name)
		}
		if err := rule.ValidateParam(name, r); err != nil {
			return errInvalidRule(name, err)
		}
	}
	return nil
}

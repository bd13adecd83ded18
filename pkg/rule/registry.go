package rule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/duke-git/lancet/v2/maputil"
	"github.com/duke-git/lancet/v2/slice"
)

// ParamKind describes the shape of a rule's third tuple element.
type ParamKind int

const (
	// ParamNone means the rule takes no parameter.
	ParamNone ParamKind = iota
	// ParamInt means the rule takes a single non-negative integer.
	ParamInt
	// ParamString means the rule takes a single free-form string.
	ParamString
	// ParamCase means the rule takes a case name or a list of case names.
	ParamCase
	// ParamTokenList means the rule takes a list of short lowercase tokens.
	ParamTokenList
)

// Definition describes a rule name the configuration may reference.
type Definition struct {
	Name        string
	Description string
	Param       ParamKind
}

// CaseNames is the closed set of casing styles a case rule may name.
var CaseNames = []string{
	"lower-case",
	"upper-case",
	"camel-case",
	"kebab-case",
	"pascal-case",
	"sentence-case",
	"snake-case",
	"start-case",
}

// registry holds every rule name the configuration format recognizes.
// The set mirrors the conventional-commits ruleset:
// https://commitlint.js.org/reference/rules.html
var registry = map[string]Definition{
	"body-leading-blank": {
		Name:        "body-leading-blank",
		Description: "Body begins with a blank line",
		Param:       ParamNone,
	},
	"body-max-line-length": {
		Name:        "body-max-line-length",
		Description: "Body lines are limited to the given length",
		Param:       ParamInt,
	},
	"footer-leading-blank": {
		Name:        "footer-leading-blank",
		Description: "Footer begins with a blank line",
		Param:       ParamNone,
	},
	"footer-max-line-length": {
		Name:        "footer-max-line-length",
		Description: "Footer lines are limited to the given length",
		Param:       ParamInt,
	},
	"header-max-length": {
		Name:        "header-max-length",
		Description: "Header is limited to the given length",
		Param:       ParamInt,
	},
	"header-trim": {
		Name:        "header-trim",
		Description: "Header has no leading or trailing whitespace",
		Param:       ParamNone,
	},
	"scope-case": {
		Name:        "scope-case",
		Description: "Scope follows the given casing style",
		Param:       ParamCase,
	},
	"scope-empty": {
		Name:        "scope-empty",
		Description: "Scope is empty",
		Param:       ParamNone,
	},
	"subject-case": {
		Name:        "subject-case",
		Description: "Subject follows the given casing style",
		Param:       ParamCase,
	},
	"subject-empty": {
		Name:        "subject-empty",
		Description: "Subject is empty",
		Param:       ParamNone,
	},
	"subject-full-stop": {
		Name:        "subject-full-stop",
		Description: "Subject ends with the given character",
		Param:       ParamString,
	},
	"subject-max-length": {
		Name:        "subject-max-length",
		Description: "Subject is limited to the given length",
		Param:       ParamInt,
	},
	"type-case": {
		Name:        "type-case",
		Description: "Type follows the given casing style",
		Param:       ParamCase,
	},
	"type-empty": {
		Name:        "type-empty",
		Description: "Type is empty",
		Param:       ParamNone,
	},
	"type-enum": {
		Name:        "type-enum",
		Description: "Type is one of the enumerated tokens",
		Param:       ParamTokenList,
	},
}

// Known reports whether the rule name is recognized.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// Lookup returns the definition for a recognized rule name.
func Lookup(name string) (Definition, bool) {
	def, ok := registry[name]
	return def, ok
}

// Names returns all recognized rule names in sorted order.
func Names() []string {
	names := maputil.Keys(registry)
	sort.Strings(names)
	return names
}

// ValidateParam checks the rule's parameter against the shape the named
// rule expects. Disabled rules may omit the parameter entirely.
func ValidateParam(name string, r Rule) error {
	def, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown rule: %s", name)
	}

	if !r.Enabled() && r.Value == nil {
		return nil
	}

	switch def.Param {
	case ParamNone:
		if r.Value != nil {
			return fmt.Errorf("rule %s takes no parameter", name)
		}
	case ParamInt:
		n, ok := r.IntValue()
		if !ok {
			return fmt.Errorf("rule %s requires an integer parameter", name)
		}
		if n <= 0 {
			return fmt.Errorf("rule %s requires a positive length, got %d", name, n)
		}
	case ParamString:
		if _, ok := r.StringValue(); !ok {
			return fmt.Errorf("rule %s requires a string parameter", name)
		}
	case ParamCase:
		cases, ok := r.StringsValue()
		if !ok || len(cases) == 0 {
			return fmt.Errorf("rule %s requires a case name or list of case names", name)
		}
		for _, c := range cases {
			if !slice.Contain(CaseNames, c) {
				return fmt.Errorf("rule %s: unknown case %q", name, c)
			}
		}
	case ParamTokenList:
		tokens, ok := r.StringsValue()
		if !ok {
			return fmt.Errorf("rule %s requires a list of tokens", name)
		}
		if len(tokens) == 0 {
			return fmt.Errorf("rule %s requires at least one token", name)
		}
		for _, tok := range tokens {
			if tok == "" {
				return fmt.Errorf("rule %s: empty token", name)
			}
			if tok != strings.ToLower(tok) {
				return fmt.Errorf("rule %s: token %q must be lowercase", name, tok)
			}
		}
	}

	return nil
}

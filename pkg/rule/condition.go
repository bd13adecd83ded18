package rule

import (
	"fmt"
	"strings"
)

// Condition qualifies how a rule applies: "always" enforces the rule
// parameter, "never" inverts it.
type Condition string

const (
	Always Condition = "always"
	Never  Condition = "never"
)

// ParseCondition parses a string and returns the corresponding Condition.
func ParseCondition(s string) (Condition, error) {
	switch strings.ToLower(s) {
	case string(Always):
		return Always, nil
	case string(Never):
		return Never, nil
	}
	return Condition(""), fmt.Errorf("unknown condition: %s", s)
}

// Valid reports whether the condition is one of the known qualifiers.
// The empty condition is valid only for disabled rules.
func (c Condition) Valid() bool {
	return c == Always || c == Never
}

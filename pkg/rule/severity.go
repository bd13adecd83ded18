package rule

import (
	"fmt"
	"strings"
)

// Severity is the level attached to a rule violation by the consuming
// linter.
type Severity int

const (
	// Off disables the rule entirely.
	Off Severity = iota
	// Warning reports the violation without failing the run.
	Warning
	// Error treats the violation as a hard failure.
	Error
)

// SeverityIds maps Severity to their string representations.
var SeverityIds = map[Severity][]string{
	Off:     {"off"},
	Warning: {"warn", "warning"},
	Error:   {"error"},
}

// ParseSeverity parses a string and returns the corresponding Severity.
// It returns an error if the string doesn't match any known Severity.
func ParseSeverity(s string) (Severity, error) {
	for sev, ids := range SeverityIds {
		for _, id := range ids {
			if strings.EqualFold(id, s) {
				return sev, nil
			}
		}
	}
	return Severity(0), fmt.Errorf("unknown severity: %s", s)
}

// Valid reports whether the severity is one of the known levels.
func (s Severity) Valid() bool {
	_, ok := SeverityIds[s]
	return ok
}

// ToString converts the Severity value to a string representation.
func (s Severity) ToString() string {
	if val, ok := SeverityIds[s]; ok {
		return val[0]
	}
	return fmt.Sprintf("UnknownSeverity(%d)", s)
}

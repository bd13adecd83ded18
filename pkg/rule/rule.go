package rule

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Rule is a single lint rule setting. On the wire it is the commitlint
// tuple form:
//
//	[severity, condition, parameter]
//
// The condition and parameter elements are optional; a bare severity
// (either `[0]` or `0`) disables the rule.
type Rule struct {
	Severity  Severity
	Condition Condition
	Value     any
}

// New returns a rule with the given severity, condition and parameter.
func New(severity Severity, condition Condition, value any) Rule {
	return Rule{
		Severity:  severity,
		Condition: condition,
		Value:     value,
	}
}

// Disabled returns a rule that turns the named check off.
func Disabled() Rule {
	return Rule{Severity: Off}
}

// Enabled reports whether the rule participates in linting at all.
func (r Rule) Enabled() bool {
	return r.Severity > Off
}

// StringValue returns the rule parameter as a string.
func (r Rule) StringValue() (string, bool) {
	s, ok := r.Value.(string)
	return s, ok
}

// StringsValue returns the rule parameter as a list of strings. A single
// string parameter is returned as a one-element list.
func (r Rule) StringsValue() ([]string, bool) {
	switch v := r.Value.(type) {
	case string:
		return []string{v}, true
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// IntValue returns the rule parameter as an integer. JSON and YAML
// decoders hand numbers over as float64 or int, both are accepted.
func (r Rule) IntValue() (int, bool) {
	switch v := r.Value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	}
	return 0, false
}

// tuple renders the wire form, omitting trailing empty elements.
func (r Rule) tuple() []any {
	out := []any{int(r.Severity)}
	if r.Condition == "" && r.Value == nil {
		return out
	}
	out = append(out, string(r.Condition))
	if r.Value != nil {
		out = append(out, r.Value)
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (r Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.tuple())
}

// UnmarshalJSON implements json.Unmarshaler. It accepts the 1-, 2- and
// 3-element tuple forms as well as a bare severity number.
func (r *Rule) UnmarshalJSON(data []byte) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		// bare severity shorthand
		var sev int
		if numErr := json.Unmarshal(data, &sev); numErr != nil {
			return fmt.Errorf("rule must be a [severity, condition, param] tuple: %w", err)
		}
		return r.fromParts(sev, "", nil, 1)
	}

	if len(elems) == 0 || len(elems) > 3 {
		return fmt.Errorf("rule tuple must have 1 to 3 elements, got %d", len(elems))
	}

	var sev int
	if err := json.Unmarshal(elems[0], &sev); err != nil {
		return fmt.Errorf("rule severity must be a number: %w", err)
	}

	var cond string
	if len(elems) > 1 {
		if err := json.Unmarshal(elems[1], &cond); err != nil {
			return fmt.Errorf("rule condition must be a string: %w", err)
		}
	}

	var value any
	if len(elems) > 2 {
		if err := json.Unmarshal(elems[2], &value); err != nil {
			return err
		}
	}

	return r.fromParts(sev, cond, value, len(elems))
}

// MarshalYAML implements yaml.Marshaler.
func (r Rule) MarshalYAML() (any, error) {
	return r.tuple(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for the same forms the JSON
// codec accepts.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var sev int
		if err := node.Decode(&sev); err != nil {
			return fmt.Errorf("rule must be a [severity, condition, param] tuple: %w", err)
		}
		return r.fromParts(sev, "", nil, 1)
	}

	var elems []yaml.Node
	if err := node.Decode(&elems); err != nil {
		return fmt.Errorf("rule must be a [severity, condition, param] tuple: %w", err)
	}
	if len(elems) == 0 || len(elems) > 3 {
		return fmt.Errorf("rule tuple must have 1 to 3 elements, got %d", len(elems))
	}

	var sev int
	if err := elems[0].Decode(&sev); err != nil {
		return fmt.Errorf("rule severity must be a number: %w", err)
	}

	var cond string
	if len(elems) > 1 {
		if err := elems[1].Decode(&cond); err != nil {
			return fmt.Errorf("rule condition must be a string: %w", err)
		}
	}

	var value any
	if len(elems) > 2 {
		if err := elems[2].Decode(&value); err != nil {
			return err
		}
	}

	return r.fromParts(sev, cond, value, len(elems))
}

func (r *Rule) fromParts(sev int, cond string, value any, elems int) error {
	severity := Severity(sev)
	if !severity.Valid() {
		return fmt.Errorf("invalid rule severity: %d", sev)
	}

	var condition Condition
	if elems > 1 {
		parsed, err := ParseCondition(cond)
		if err != nil {
			return err
		}
		condition = parsed
	} else if severity != Off {
		return fmt.Errorf("rule with severity %q requires a condition", severity.ToString())
	}

	r.Severity = severity
	r.Condition = condition
	r.Value = value
	return nil
}

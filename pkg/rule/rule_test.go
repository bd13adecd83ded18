package rule

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRuleUnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected Rule
		wantErr  bool
	}{
		{
			input:    `[2, "always", "lower-case"]`,
			expected: Rule{Severity: Error, Condition: Always, Value: "lower-case"},
		},
		{
			input:    `[2, "always", 50]`,
			expected: Rule{Severity: Error, Condition: Always, Value: float64(50)},
		},
		{
			input: `[2, "always", ["feat", "fix"]]`,
			expected: Rule{
				Severity:  Error,
				Condition: Always,
				Value:     []any{"feat", "fix"},
			},
		},
		{
			input:    `[1, "never"]`,
			expected: Rule{Severity: Warning, Condition: Never},
		},
		{
			input:    `[0]`,
			expected: Rule{Severity: Off},
		},
		{
			input:    `0`,
			expected: Rule{Severity: Off},
		},
		{
			input:   `[3, "always"]`,
			wantErr: true,
		},
		{
			input:   `[2, "sometimes"]`,
			wantErr: true,
		},
		{
			input:   `[2]`,
			wantErr: true, // enabled rule without a condition
		},
		{
			input:   `["always", 2]`,
			wantErr: true,
		},
		{
			input:   `[]`,
			wantErr: true,
		},
		{
			input:   `[2, "always", 50, "extra"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var r Rule
			err := json.Unmarshal([]byte(tt.input), &r)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", r)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(r, tt.expected) {
				t.Errorf("got %+v, want %+v", r, tt.expected)
			}
		})
	}
}

func TestRuleMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		expected string
	}{
		{
			name:     "full tuple",
			rule:     New(Error, Always, "lower-case"),
			expected: `[2,"always","lower-case"]`,
		},
		{
			name:     "no parameter",
			rule:     New(Warning, Always, nil),
			expected: `[1,"always"]`,
		},
		{
			name:     "disabled",
			rule:     Disabled(),
			expected: `[0]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.rule)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("got %s, want %s", data, tt.expected)
			}
		})
	}
}

func TestRuleJSONRoundTrip(t *testing.T) {
	original := New(Error, Always, []any{"feat", "fix", "docs"})

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Rule
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("got %+v, want %+v", decoded, original)
	}
}

func TestRuleUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Rule
		wantErr  bool
	}{
		{
			name:     "flow tuple",
			input:    `[2, always, lower-case]`,
			expected: Rule{Severity: Error, Condition: Always, Value: "lower-case"},
		},
		{
			name:     "integer parameter",
			input:    `[2, always, 50]`,
			expected: Rule{Severity: Error, Condition: Always, Value: 50},
		},
		{
			name:     "bare severity",
			input:    `0`,
			expected: Rule{Severity: Off},
		},
		{
			name:    "bad severity",
			input:   `[9, always]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Rule
			err := yaml.Unmarshal([]byte(tt.input), &r)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", r)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(r, tt.expected) {
				t.Errorf("got %+v, want %+v", r, tt.expected)
			}
		})
	}
}

func TestRuleValueAccessors(t *testing.T) {
	r := New(Error, Always, []any{"feat", "fix"})
	if tokens, ok := r.StringsValue(); !ok || !reflect.DeepEqual(tokens, []string{"feat", "fix"}) {
		t.Errorf("StringsValue() = %v, %v", tokens, ok)
	}

	r = New(Error, Always, "lower-case")
	if s, ok := r.StringValue(); !ok || s != "lower-case" {
		t.Errorf("StringValue() = %q, %v", s, ok)
	}
	if tokens, ok := r.StringsValue(); !ok || !reflect.DeepEqual(tokens, []string{"lower-case"}) {
		t.Errorf("StringsValue() single = %v, %v", tokens, ok)
	}

	r = New(Error, Always, float64(50))
	if n, ok := r.IntValue(); !ok || n != 50 {
		t.Errorf("IntValue() float = %d, %v", n, ok)
	}

	r = New(Error, Always, 72)
	if n, ok := r.IntValue(); !ok || n != 72 {
		t.Errorf("IntValue() int = %d, %v", n, ok)
	}

	r = New(Error, Always, 1.5)
	if _, ok := r.IntValue(); ok {
		t.Error("IntValue() accepted a fractional number")
	}
}

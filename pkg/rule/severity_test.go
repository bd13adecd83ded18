package rule

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
		wantErr  bool
	}{
		{input: "off", expected: Off},
		{input: "warn", expected: Warning},
		{input: "warning", expected: Warning},
		{input: "error", expected: Error},
		{input: "ERROR", expected: Error},
		{input: "fatal", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSeverityValid(t *testing.T) {
	for _, sev := range []Severity{Off, Warning, Error} {
		if !sev.Valid() {
			t.Errorf("%v should be valid", sev)
		}
	}
	if Severity(3).Valid() {
		t.Error("severity 3 should not be valid")
	}
	if Severity(-1).Valid() {
		t.Error("severity -1 should not be valid")
	}
}

func TestSeverityToString(t *testing.T) {
	if got := Error.ToString(); got != "error" {
		t.Errorf("got %q, want %q", got, "error")
	}
	if got := Warning.ToString(); got != "warn" {
		t.Errorf("got %q, want %q", got, "warn")
	}
	if got := Severity(7).ToString(); got != "UnknownSeverity(7)" {
		t.Errorf("got %q", got)
	}
}

func TestParseCondition(t *testing.T) {
	if c, err := ParseCondition("always"); err != nil || c != Always {
		t.Errorf("got %v, %v", c, err)
	}
	if c, err := ParseCondition("NEVER"); err != nil || c != Never {
		t.Errorf("got %v, %v", c, err)
	}
	if _, err := ParseCondition("sometimes"); err == nil {
		t.Error("expected error for unknown condition")
	}
}

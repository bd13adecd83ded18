package lintconfig

import (
	"context"
	"reflect"
	"sort"
	"testing"

	"github.com/zbiljic/comlint/pkg/rule"
)

func TestDefaultResolved(t *testing.T) {
	cfg, err := Resolve(context.Background(), Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	typeEnum, ok := cfg.Rules["type-enum"]
	if !ok {
		t.Fatal("type-enum missing from resolved config")
	}
	types, ok := typeEnum.StringsValue()
	if !ok {
		t.Fatalf("type-enum parameter is not a token list: %v", typeEnum.Value)
	}

	expected := []string{"chore", "docs", "feat", "fix", "refactor", "style", "test"}
	sorted := append([]string(nil), types...)
	sort.Strings(sorted)
	if !reflect.DeepEqual(sorted, expected) {
		t.Errorf("type-enum = %v, want %v", sorted, expected)
	}
	if typeEnum.Severity != rule.Error || typeEnum.Condition != rule.Always {
		t.Errorf("type-enum setting = %v/%v", typeEnum.Severity, typeEnum.Condition)
	}

	subjectCase := cfg.Rules["subject-case"]
	if s, _ := subjectCase.StringValue(); s != "lower-case" {
		t.Errorf("subject-case = %v, want lower-case", subjectCase.Value)
	}
	if subjectCase.Severity != rule.Error || subjectCase.Condition != rule.Always {
		t.Errorf("subject-case setting = %v/%v", subjectCase.Severity, subjectCase.Condition)
	}

	maxLength := cfg.Rules["subject-max-length"]
	if n, _ := maxLength.IntValue(); n != 50 {
		t.Errorf("subject-max-length = %v, want 50", maxLength.Value)
	}
	if maxLength.Severity != rule.Error || maxLength.Condition != rule.Always {
		t.Errorf("subject-max-length setting = %v/%v", maxLength.Severity, maxLength.Condition)
	}

	// inherited from the conventional preset, not overridden locally
	headerMax := cfg.Rules["header-max-length"]
	if n, _ := headerMax.IntValue(); n != 100 {
		t.Errorf("header-max-length = %v, want 100", headerMax.Value)
	}

	if len(cfg.Extends) != 0 {
		t.Errorf("resolved config still has extends: %v", cfg.Extends)
	}
}

func TestResolveIdempotent(t *testing.T) {
	ctx := context.Background()

	first, err := Resolve(ctx, Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Resolve(ctx, Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated resolution produced structurally different configs")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Rules: map[string]rule.Rule{
			"subject-max-length": rule.New(rule.Error, rule.Always, 50),
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg = &Config{
		Rules: map[string]rule.Rule{
			"no-such-rule": rule.New(rule.Error, rule.Always, nil),
		},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown rule")
	}

	cfg = &Config{
		Rules: map[string]rule.Rule{
			"type-enum": rule.New(rule.Error, rule.Always, []string{"FEAT"}),
		},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for uppercase commit type token")
	}
}

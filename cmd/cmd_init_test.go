package cmd

import (
	"reflect"
	"testing"

	"github.com/duke-git/lancet/v2/slice"

	"github.com/zbiljic/comlint/pkg/lintconfig"
	"github.com/zbiljic/comlint/pkg/rule"
)

func TestInitSelectableTypes(t *testing.T) {
	tokens := initSelectableTypes()
	if len(tokens) == 0 {
		t.Fatal("no selectable commit types")
	}

	// the wizard offers the full conventional enumeration, so every
	// default selection must be available
	for _, tok := range lintconfig.DefaultTypes {
		if !slice.Contain(tokens, tok) {
			t.Errorf("default type %q is not selectable", tok)
		}
	}
}

func TestInitBuildConfig(t *testing.T) {
	answers := &initAnswers{
		Preset:      "conventional",
		Types:       []string{"feat", "fix", "docs", "style", "refactor", "test", "chore"},
		SubjectCase: "lower-case",
		MaxLength:   "50",
	}

	cfg, err := initBuildConfig(answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(cfg.Extends, []string{"conventional"}) {
		t.Errorf("extends = %v", cfg.Extends)
	}

	types, _ := cfg.Rules["type-enum"].StringsValue()
	if len(types) != 7 {
		t.Errorf("type-enum = %v", types)
	}
	if s, _ := cfg.Rules["subject-case"].StringValue(); s != "lower-case" {
		t.Errorf("subject-case = %v", cfg.Rules["subject-case"].Value)
	}
	if n, _ := cfg.Rules["subject-max-length"].IntValue(); n != 50 {
		t.Errorf("subject-max-length = %v", cfg.Rules["subject-max-length"].Value)
	}
	if cfg.Rules["subject-max-length"].Severity != rule.Error {
		t.Errorf("severity = %v", cfg.Rules["subject-max-length"].Severity)
	}
}

func TestInitBuildConfigRejectsBadAnswers(t *testing.T) {
	answers := &initAnswers{
		Preset:      "conventional",
		Types:       nil,
		SubjectCase: "lower-case",
		MaxLength:   "50",
	}
	if _, err := initBuildConfig(answers); err == nil {
		t.Error("expected error for empty type selection")
	}

	answers = &initAnswers{
		Preset:      "conventional",
		Types:       []string{"Feat"},
		SubjectCase: "lower-case",
		MaxLength:   "50",
	}
	if _, err := initBuildConfig(answers); err == nil {
		t.Error("expected error for uppercase commit type")
	}

	answers = &initAnswers{
		Preset:      "conventional",
		Types:       []string{"feat"},
		SubjectCase: "lower-case",
		MaxLength:   "many",
	}
	if _, err := initBuildConfig(answers); err == nil {
		t.Error("expected error for non numeric length")
	}
}

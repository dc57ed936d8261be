package lexer

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig should validate, got %v", err)
	}
}

func TestValidateRejectsNonPositiveFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPatternLength = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected ConfigError for MaxPatternLength = 0")
	}

	cfg = DefaultConfig()
	cfg.MaxRules = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected ConfigError for MaxRules = 0")
	}
}

func TestNewWithConfigRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRules = -1
	if _, err := NewWithConfig(cfg); err == nil {
		t.Fatal("expected NewWithConfig to reject an invalid Config")
	}
}

func TestAddPatternRejectsTableOverMaxRules(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRules = 1
	lx, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	if err := lx.AddPattern("a", "A"); err != nil {
		t.Fatalf("first AddPattern should succeed: %v", err)
	}
	if err := lx.AddPattern("b", "B"); err == nil {
		t.Fatal("expected AddPattern to reject a rule table already at MaxRules")
	}
}

func TestEnableLiteralPrefilterFalseDisablesSharedAutomaton(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableLiteralPrefilter = false
	lx, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	if err := lx.AddPattern("foo", "FOO"); err != nil {
		t.Fatal(err)
	}
	if err := lx.AddPattern("bar", "BAR"); err != nil {
		t.Fatal(err)
	}
	if lx.ac != nil {
		t.Fatal("expected ac to stay nil when EnableLiteralPrefilter is false")
	}

	tokens, err := lx.Yylex("foobar")
	if err != nil {
		t.Fatalf("Yylex: %v", err)
	}
	want := []Token{{Label: "FOO", Text: "foo"}, {Label: "BAR", Text: "bar"}}
	if len(tokens) != len(want) || tokens[0] != want[0] || tokens[1] != want[1] {
		t.Fatalf("got %v, want %v", tokens, want)
	}
}

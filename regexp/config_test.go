package regexp

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
	cfg.MaxRecursionDepth = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected ConfigError for MaxRecursionDepth = 0")
	}
}

func TestCompileWithConfigRejectsOverlongPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPatternLength = 3
	if _, err := CompileWithConfig("abcd", cfg); err == nil {
		t.Fatal("expected a pattern longer than MaxPatternLength to be rejected")
	}
	if _, err := CompileWithConfig("abc", cfg); err != nil {
		t.Fatalf("pattern at exactly MaxPatternLength should compile, got %v", err)
	}
}

func TestCompileWithConfigRejectsDeepNesting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRecursionDepth = 2
	if _, err := CompileWithConfig("(((a)))", cfg); err == nil {
		t.Fatal("expected groups nested past MaxRecursionDepth to be rejected")
	}
	if _, err := CompileWithConfig("(a)", cfg); err != nil {
		t.Fatalf("a single group should compile under MaxRecursionDepth=2, got %v", err)
	}
}

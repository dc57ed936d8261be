package regexp

// Config controls limits the compiler enforces on a pattern, mirroring the
// teacher engine's meta.Config/DefaultConfig knobs (see meta/config.go) —
// future-proofing against pathological input rather than changing compiled
// semantics.
//
// Example:
//
//	cfg := regexp.DefaultConfig()
//	cfg.MaxPatternLength = 256
//	a, err := regexp.CompileWithConfig(pattern, cfg)
type Config struct {
	// MaxPatternLength caps the number of runes Compile will accept in a
	// pattern, rejecting anything longer before parsing starts.
	// Default: 4096
	MaxPatternLength int

	// MaxRecursionDepth caps how deeply nested groups ("(((...)))") may be
	// before Compile refuses the pattern, guarding the recursive-descent
	// parser's call stack against unbounded input.
	// Default: 256
	MaxRecursionDepth int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxPatternLength:  4096,
		MaxRecursionDepth: 256,
	}
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "regexp: invalid config: " + e.Field + ": " + e.Message
}

// Validate reports whether c's fields are usable, or a *ConfigError naming
// the offending field.
func (c Config) Validate() error {
	if c.MaxPatternLength < 1 {
		return &ConfigError{Field: "MaxPatternLength", Message: "must be at least 1"}
	}
	if c.MaxRecursionDepth < 1 {
		return &ConfigError{Field: "MaxRecursionDepth", Message: "must be at least 1"}
	}
	return nil
}

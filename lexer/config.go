package lexer

// Config controls limits and knobs for a Lexer, mirroring the teacher
// engine's meta.Config/DefaultConfig pattern (see meta/config.go) —
// future-proofing knobs rather than changing tokenizing semantics.
//
// Example:
//
//	cfg := lexer.DefaultConfig()
//	cfg.MaxRules = 64
//	lx, err := lexer.NewWithConfig(cfg)
type Config struct {
	// MaxPatternLength caps each rule pattern's length, forwarded to the
	// regexp compiler as regexp.Config.MaxPatternLength.
	// Default: 4096
	MaxPatternLength int

	// MaxRules caps how many rules a single rule table may register.
	// Default: 4096
	MaxRules int

	// EnableLiteralPrefilter controls whether two or more literal-only
	// rules are folded into a shared Aho-Corasick automaton (see
	// rebuildPrefilter). When false, every rule always gets its own
	// Simulator.
	// Default: true
	EnableLiteralPrefilter bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxPatternLength:       4096,
		MaxRules:               4096,
		EnableLiteralPrefilter: true,
	}
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "lexer: invalid config: " + e.Field + ": " + e.Message
}

// Validate reports whether c's fields are usable, or a *ConfigError naming
// the offending field.
func (c Config) Validate() error {
	if c.MaxPatternLength < 1 {
		return &ConfigError{Field: "MaxPatternLength", Message: "must be at least 1"}
	}
	if c.MaxRules < 1 {
		return &ConfigError{Field: "MaxRules", Message: "must be at least 1"}
	}
	return nil
}

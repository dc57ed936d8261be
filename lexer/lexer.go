// Package lexer implements the longest-match, first-rule-wins tokenizer of
// spec.md §4.8: a LexSim runs one nondeterministic simulation per rule in
// lockstep and a Lexer loads an ordered rule table from a
// "pattern<TAB>label" description and repeatedly calls Yylex to tokenize an
// input string.
//
// The stepping algorithm is grounded directly in
// original_source/src/lex.c's lex_yylex: advance every rule simulation one
// codepoint, record the first rule (in table order) that is Accepting or
// Accepted at this codepoint, and stop as soon as a codepoint produces no
// newly-accepting rule.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/automa/automaton"
	"github.com/coregx/automa/regexp"
	"github.com/coregx/automa/simulate"
)

// Rule is one (pattern automaton, token label) pair in a rule table. Order
// is significant: it is the tie-break when two rules accept the same length.
//
// Literal holds the rule's fully-resolved literal text when the pattern
// denotes exactly one fixed string (regexp.LiteralText); IsLiteral marks
// rules whose Simulator can be skipped in favor of the Lexer's shared
// Aho-Corasick prefilter.
type Rule struct {
	Automaton *automaton.Automaton
	Label     string
	Literal   string
	IsLiteral bool
}

// ErrRuleMissingTab is returned when a rule table line has no tab separating
// its pattern from its label.
var ErrRuleMissingTab = errors.New("lexer: rule table line missing tab separating pattern from label")

// RuleError reports a malformed line in a rule table description: one
// missing its "pattern<TAB>label" separator.
type RuleError struct {
	Line int
	Text string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("lexer: rule table line %d: missing tab separating pattern from label: %q", e.Line, e.Text)
}

func (e *RuleError) Unwrap() error {
	return ErrRuleMissingTab
}

// LexSim runs one simulate.Simulator per non-literal rule over the same
// input, advancing them in lockstep, and tracks the best (rule index, end
// index) seen so far per spec.md §4.8. Literal rules (Rule.IsLiteral) have
// no Simulator when the Lexer's prefilter is built (otherwise they are
// simulated like any other rule): their candidate match is resolved once, up front,
// from the Lexer's shared Aho-Corasick prefilter, then folded into the same
// best-match record at the step where it would have become accepting.
type LexSim struct {
	rules []Rule
	sims  []*simulate.Simulator // nil entry for a literal rule's index
	input []rune
	pos   int

	lit *literalHit

	bestRule int
	bestEnd  int // -1 means no rule has ever accepted
	done     bool
}

// literalHit is the single anchored Aho-Corasick match (if any) found at the
// very start of a LexSim's input.
type literalHit struct {
	ruleIndex int
	length    int // codepoints
}

// BeginLex starts a Simulator for every rule the prefilter doesn't cover
// (ac handles a literal rule only when it was actually folded into the
// shared automaton), and resolves ac (if non-nil) into at most one anchored
// literal candidate.
func BeginLex(rules []Rule, ac *ahocorasick.Automaton, input []rune) *LexSim {
	sims := make([]*simulate.Simulator, len(rules))
	for i, r := range rules {
		if r.IsLiteral && ac != nil {
			continue
		}
		sims[i] = simulate.Begin(r.Automaton, input)
	}
	return &LexSim{
		rules:    rules,
		sims:     sims,
		input:    input,
		bestRule: -1,
		bestEnd:  -1,
		lit:      resolveLiteralHit(rules, ac, input),
	}
}

// resolveLiteralHit runs the Aho-Corasick prefilter once over input as a
// cheap "does any literal rule match here" filter, then independently finds
// the longest literal rule whose text prefixes input. The longest-prefix
// scan (not the prefilter's own match choice) decides which rule wins when
// two literal rules share a prefix (e.g. "a" and "ab"), since Find's Match
// only exposes Start/End for a single reported match and gives no guarantee
// about which of several candidates sharing a start position it reports.
func resolveLiteralHit(rules []Rule, ac *ahocorasick.Automaton, input []rune) *literalHit {
	if ac == nil {
		return nil
	}
	haystack := []byte(string(input))
	m := ac.Find(haystack, 0)
	if m == nil || m.Start != 0 {
		return nil
	}

	best := -1
	bestLen := 0
	for i, r := range rules {
		if !r.IsLiteral {
			continue
		}
		if strings.HasPrefix(string(input), r.Literal) && len(r.Literal) > bestLen {
			best = i
			bestLen = len(r.Literal)
		}
	}
	if best < 0 {
		return nil
	}
	return &literalHit{ruleIndex: best, length: utf8.RuneCountInString(rules[best].Literal)}
}

// Finished reports whether lexing has stopped: either the input is
// exhausted, or the last Step produced no newly-accepting rule.
func (l *LexSim) Finished() bool {
	return l.done
}

// Step advances every rule's simulation by the next codepoint and updates
// the best match. It returns Finished() after the step. Calling Step after
// Finished is a programmer error; callers must check Finished first.
func (l *LexSim) Step() bool {
	if l.pos >= len(l.input) {
		l.done = true
		return true
	}

	anyAccepting := false
	for i := range l.rules {
		sim := l.sims[i]
		if sim == nil {
			// A literal rule: its only possible acceptance is the
			// precomputed prefilter hit, at the step reaching its length.
			if l.lit != nil && l.lit.ruleIndex == i && l.pos == l.lit.length-1 {
				anyAccepting = true
				if l.pos > l.bestEnd {
					l.bestEnd = l.pos
					l.bestRule = i
				}
			}
			continue
		}
		if sim.Status() == simulate.Rejected {
			continue
		}
		sim.Step()
		switch sim.Status() {
		case simulate.Accepting, simulate.Accepted:
			anyAccepting = true
			// Strict '>' only: the first rule to reach this end index keeps
			// the record, so a later rule accepting at the same length
			// never displaces it.
			if l.pos > l.bestEnd {
				l.bestEnd = l.pos
				l.bestRule = i
			}
		}
	}
	l.pos++
	if !anyAccepting {
		l.done = true
	}
	return l.done
}

// Result returns the winning rule's label and the matched length. Length is
// -1 if no rule ever accepted (a lexical error at this position).
func (l *LexSim) Result() (label string, length int) {
	if l.bestRule < 0 {
		return "", -1
	}
	return l.rules[l.bestRule].Label, l.bestEnd + 1
}

// Lexer holds an ordered rule table compiled from pattern strings, plus a
// shared Aho-Corasick automaton over any rules whose pattern is a single
// fixed literal (see regexp.LiteralText and rebuildPrefilter).
type Lexer struct {
	Rules []Rule
	ac    *ahocorasick.Automaton
	cfg   Config
}

// New returns an empty Lexer configured with DefaultConfig.
func New() *Lexer {
	return &Lexer{cfg: DefaultConfig()}
}

// NewWithConfig returns an empty Lexer governed by cfg, or a *ConfigError if
// cfg is invalid.
func NewWithConfig(cfg Config) (*Lexer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Lexer{cfg: cfg}, nil
}

// AddPattern compiles pattern via the regexp package and appends
// (automaton, label) to the rule table in call order, marking the rule as
// literal when the pattern is a fixed string, then rebuilds the literal
// prefilter. Returns a
// *ConfigError if the table is already at cfg.MaxRules.
func (lx *Lexer) AddPattern(pattern, label string) error {
	if len(lx.Rules) >= lx.maxRules() {
		return &ConfigError{Field: "MaxRules", Message: "rule table is full"}
	}
	a, err := regexp.CompileWithConfig(pattern, regexp.Config{
		MaxPatternLength:  lx.effectiveConfig().MaxPatternLength,
		MaxRecursionDepth: regexp.DefaultConfig().MaxRecursionDepth,
	})
	if err != nil {
		return err
	}
	r := Rule{Automaton: a, Label: label}
	if lit, ok := regexp.LiteralText(pattern); ok {
		r.Literal = lit
		r.IsLiteral = true
	}
	lx.Rules = append(lx.Rules, r)
	lx.rebuildPrefilter()
	return nil
}

// maxRules reports the effective rule-table cap.
func (lx *Lexer) maxRules() int {
	return lx.effectiveConfig().MaxRules
}

// effectiveConfig returns lx.cfg, substituting DefaultConfig for a Lexer
// built directly as &Lexer{} rather than through New/NewWithConfig.
func (lx *Lexer) effectiveConfig() Config {
	if lx.cfg == (Config{}) {
		return DefaultConfig()
	}
	return lx.cfg
}

// rebuildPrefilter rebuilds the shared Aho-Corasick automaton over every
// literal rule's text. With fewer than two literal rules, or with
// cfg.EnableLiteralPrefilter false, there is nothing for a multi-pattern
// automaton to buy over a direct simulator, so ac stays nil and LexSim falls
// back to simulating those rules individually.
func (lx *Lexer) rebuildPrefilter() {
	if !lx.effectiveConfig().EnableLiteralPrefilter {
		lx.ac = nil
		return
	}
	builder := ahocorasick.NewBuilder()
	n := 0
	for _, r := range lx.Rules {
		if r.IsLiteral {
			builder.AddPattern([]byte(r.Literal))
			n++
		}
	}
	if n < 2 {
		lx.ac = nil
		return
	}
	ac, err := builder.Build()
	if err != nil {
		lx.ac = nil
		return
	}
	lx.ac = ac
}

// Load parses a rule table description: one "pattern<TAB>label" rule per
// line, with empty lines skipped and lines beginning with '#' ignored as
// comments. Any other line with no tab is a RuleError.
func (lx *Lexer) Load(description string) error {
	lines := strings.Split(description, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			return &RuleError{Line: i + 1, Text: line}
		}
		pattern, label := line[:tab], line[tab+1:]
		if err := lx.AddPattern(pattern, label); err != nil {
			return err
		}
	}
	return nil
}

// Token is one lexed token: its rule label and the matched text.
type Token struct {
	Label string
	Text  string
}

// Yylex tokenizes input in full, repeatedly running a LexSim from the
// current position until no rule ever accepts (a lexical error) or the
// input is exhausted. It returns the tokens produced before any error,
// along with that error (nil on full success).
func (lx *Lexer) Yylex(input string) ([]Token, error) {
	runes := []rune(input)
	var tokens []Token
	pos := 0
	for pos < len(runes) {
		sim := BeginLex(lx.Rules, lx.ac, runes[pos:])
		for !sim.Finished() {
			sim.Step()
		}
		label, length := sim.Result()
		if length < 0 {
			return tokens, fmt.Errorf("lexer: no rule matches at codepoint offset %d: %q", pos, string(runes[pos:]))
		}
		tokens = append(tokens, Token{Label: label, Text: string(runes[pos : pos+length])})
		pos += length
	}
	return tokens, nil
}

// Package regexp implements the recursive-descent compiler from a regex
// string (the grammar of spec.md §4.9/§6) to an automaton.Automaton, built
// entirely from automaton.SingleChar and the concat/union/kleene
// combinators — the same Thompson-construction idiom the teacher's
// internal/compiler/thompson.go uses, rebuilt over this repo's
// codepoint-indexed Automaton instead of a regexp/syntax AST.
//
//	regex     := alt
//	alt       := concat ('|' concat)*
//	concat    := atom+
//	atom      := primary modifier?
//	primary   := '(' regex ')' | '[' charclass ']' | '\' escape | '.' | literal
//	modifier  := '*' | '+' | '?'
package regexp

import (
	"fmt"

	"github.com/coregx/automa/automaton"
)

// ParseError reports a malformed pattern: unmatched parentheses, an
// unterminated character class, or a modifier with no preceding atom. Pos
// is the rune offset into the pattern where the failure was detected.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("regexp: parse error at position %d: %s", e.Pos, e.Msg)
}

// Compile parses pattern under DefaultConfig's limits and returns the
// automaton it denotes. Malformed input always returns a ParseError rather
// than a best-effort automaton — spec.md's open question (a) is resolved in
// favor of strict parsing.
func Compile(pattern string) (*automaton.Automaton, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig is Compile with caller-supplied limits: cfg.MaxPatternLength
// rejects overlong patterns before parsing starts, and cfg.MaxRecursionDepth
// rejects patterns whose nested groups would recurse the parser past that
// depth.
func CompileWithConfig(pattern string, cfg Config) (*automaton.Automaton, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rs := []rune(pattern)
	if len(rs) > cfg.MaxPatternLength {
		return nil, &ParseError{Pos: cfg.MaxPatternLength, Msg: "pattern exceeds MaxPatternLength"}
	}
	p := &parser{rs: rs, maxDepth: cfg.MaxRecursionDepth}
	a, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.rs[p.pos])
	}
	return a, nil
}

type parser struct {
	rs       []rune
	pos      int
	depth    int
	maxDepth int // 0 means unbounded, used by LiteralText's throwaway parser
}

func (p *parser) eof() bool {
	return p.pos >= len(p.rs)
}

func (p *parser) peek() (rune, bool) {
	if p.eof() {
		return 0, false
	}
	return p.rs[p.pos], true
}

func (p *parser) advance() rune {
	c := p.rs[p.pos]
	p.pos++
	return c
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// parseAlt := concat ('|' concat)*
func (p *parser) parseAlt() (*automaton.Automaton, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok || c != '|' {
			return left, nil
		}
		p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		automaton.Union(left, right)
	}
}

// parseConcat := atom+ ; an empty concatenation (immediately followed by
// '|', ')', or end of pattern) denotes the empty string.
func (p *parser) parseConcat() (*automaton.Automaton, error) {
	var result *automaton.Automaton
	for {
		c, ok := p.peek()
		if !ok || c == '|' || c == ')' {
			break
		}
		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		if result == nil {
			result = atom
		} else {
			automaton.Concat(result, atom)
		}
	}
	if result == nil {
		result = automaton.EmptyAccepting()
	}
	return result, nil
}

// parseAtom := primary modifier?
func (p *parser) parseAtom() (*automaton.Automaton, error) {
	a, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	c, ok := p.peek()
	if !ok {
		return a, nil
	}
	switch c {
	case '*':
		p.advance()
		automaton.Kleene(a)
	case '+':
		p.advance()
		rest := a.Clone()
		automaton.Kleene(rest)
		automaton.Concat(a, rest)
	case '?':
		p.advance()
		automaton.Union(a, automaton.EmptyAccepting())
	}
	return a, nil
}

// parsePrimary := '(' regex ')' | '[' charclass ']' | '\' escape | '.' | literal
func (p *parser) parsePrimary() (*automaton.Automaton, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of pattern")
	}

	switch c {
	case '*', '+', '?':
		return nil, p.errorf("modifier %q with no preceding atom", c)
	case '(':
		p.advance()
		if p.maxDepth > 0 {
			p.depth++
			if p.depth > p.maxDepth {
				return nil, p.errorf("nested groups exceed MaxRecursionDepth")
			}
		}
		inner, err := p.parseAlt()
		if p.maxDepth > 0 {
			p.depth--
		}
		if err != nil {
			return nil, err
		}
		if cc, ok := p.peek(); !ok || cc != ')' {
			return nil, p.errorf("unmatched '('")
		}
		p.advance()
		return inner, nil
	case ')':
		return nil, p.errorf("unmatched ')'")
	case '[':
		p.advance()
		return p.parseCharClass()
	case '\\':
		p.advance()
		return p.parseEscape()
	case '.':
		p.advance()
		return anyCodepoint(), nil
	default:
		p.advance()
		return automaton.SingleChar(c), nil
	}
}

// anyCodepoint returns the conventional "." encoding: a two-state
// automaton with a Negative transition over the single range
// [Epsilon, Epsilon]. Since no real input codepoint ever equals Epsilon,
// this accepts every real codepoint and nothing else — spec.md's open
// question (b), resolved as "any single codepoint."
func anyCodepoint() *automaton.Automaton {
	a := automaton.New()
	s0 := a.AddState(false)
	s1 := a.AddState(true)
	_ = a.SetStart(s0)
	_ = a.AddSingle(s0, s1, automaton.Epsilon, automaton.Epsilon, automaton.Negative)
	return a
}

// parseCharClass parses the contents of '[' ... ']', '[' already consumed.
func (p *parser) parseCharClass() (*automaton.Automaton, error) {
	polarity := automaton.Positive
	if c, ok := p.peek(); ok && c == '^' {
		polarity = automaton.Negative
		p.advance()
	}

	var ranges []automaton.CharRange
	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated character class")
		}
		if c == ']' {
			break
		}
		lo, err := p.decodeClassChar()
		if err != nil {
			return nil, err
		}

		if nc, ok := p.peek(); ok && nc == '-' {
			// Look ahead past the '-' to see whether this is a range or a
			// trailing literal '-' immediately before the closing ']'.
			save := p.pos
			p.advance() // consume '-'
			if after, ok := p.peek(); ok && after == ']' {
				// Trailing '-': both lo and the dash itself are literals.
				ranges = append(ranges, automaton.CharRange{Lo: lo, Hi: lo})
				ranges = append(ranges, automaton.CharRange{Lo: '-', Hi: '-'})
				continue
			}
			hi, err := p.decodeClassChar()
			if err != nil {
				return nil, err
			}
			if hi < lo {
				p.pos = save
				return nil, p.errorf("character class range out of order")
			}
			ranges = append(ranges, automaton.CharRange{Lo: lo, Hi: hi})
			continue
		}
		ranges = append(ranges, automaton.CharRange{Lo: lo, Hi: lo})
	}
	p.advance() // ']'

	if len(ranges) == 0 {
		return nil, p.errorf("empty character class")
	}
	return classAutomaton(ranges, polarity)
}

// decodeClassChar reads one literal rune or backslash escape for use inside
// a character class.
func (p *parser) decodeClassChar() (rune, error) {
	c, ok := p.peek()
	if !ok {
		return 0, p.errorf("unterminated character class")
	}
	if c != '\\' {
		p.advance()
		return c, nil
	}
	p.advance()
	return p.decodeEscapeChar()
}

// parseEscape handles '\' already consumed: class shortcuts (\s \S \w \W
// \d \D) become whole class automata; \e becomes the epsilon-move
// primitive; everything else decodes to a single literal codepoint.
func (p *parser) parseEscape() (*automaton.Automaton, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("unterminated escape")
	}
	switch c {
	case 's':
		p.advance()
		return classAutomaton(whitespaceRanges, automaton.Positive)
	case 'S':
		p.advance()
		return classAutomaton(whitespaceRanges, automaton.Negative)
	case 'w':
		p.advance()
		return classAutomaton(wordRanges, automaton.Positive)
	case 'W':
		p.advance()
		return classAutomaton(wordRanges, automaton.Negative)
	case 'd':
		p.advance()
		return classAutomaton(digitRanges, automaton.Positive)
	case 'D':
		p.advance()
		return classAutomaton(digitRanges, automaton.Negative)
	}
	r, err := p.decodeEscapeChar()
	if err != nil {
		return nil, err
	}
	return automaton.SingleChar(r), nil
}

// decodeEscapeChar decodes a single escaped codepoint: \a \b \e \f \n \r \t
// \v \\ \. \* \+ \? \| \( \) \[ \] \-, \xHH, \uHHHH. \e decodes to Epsilon
// (used only to hand-build epsilon moves, never produced by a plain
// literal). Any other \X decodes to X literally.
func (p *parser) decodeEscapeChar() (rune, error) {
	c, ok := p.peek()
	if !ok {
		return 0, p.errorf("unterminated escape")
	}
	switch c {
	case 'a':
		p.advance()
		return '\a', nil
	case 'b':
		p.advance()
		return '\b', nil
	case 'e':
		p.advance()
		return automaton.Epsilon, nil
	case 'f':
		p.advance()
		return '\f', nil
	case 'n':
		p.advance()
		return '\n', nil
	case 'r':
		p.advance()
		return '\r', nil
	case 't':
		p.advance()
		return '\t', nil
	case 'v':
		p.advance()
		return '\v', nil
	case 'x':
		p.advance()
		return p.decodeHex(2)
	case 'u':
		p.advance()
		return p.decodeHex(4)
	default:
		p.advance()
		return c, nil
	}
}

func (p *parser) decodeHex(digits int) (rune, error) {
	if p.pos+digits > len(p.rs) {
		return 0, p.errorf("truncated hex escape")
	}
	var v rune
	for i := 0; i < digits; i++ {
		d := p.rs[p.pos+i]
		var nibble rune
		switch {
		case d >= '0' && d <= '9':
			nibble = d - '0'
		case d >= 'a' && d <= 'f':
			nibble = d - 'a' + 10
		case d >= 'A' && d <= 'F':
			nibble = d - 'A' + 10
		default:
			return 0, p.errorf("invalid hex digit %q", d)
		}
		v = v*16 + nibble
	}
	p.pos += digits
	return v, nil
}

func classAutomaton(ranges []automaton.CharRange, polarity automaton.Polarity) (*automaton.Automaton, error) {
	a := automaton.New()
	s0 := a.AddState(false)
	s1 := a.AddState(true)
	_ = a.SetStart(s0)
	t, err := automaton.NewTransition(polarity, ranges, s1)
	if err != nil {
		return nil, err
	}
	_ = a.AddTransition(s0, t)
	return a, nil
}

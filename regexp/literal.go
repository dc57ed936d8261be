package regexp

import "github.com/coregx/automa/automaton"

// LiteralText reports whether pattern denotes exactly one fixed string (no
// alternation, repetition, grouping, character classes, dot, or class
// shortcuts) and, if so, returns that string with its escapes resolved.
//
// lexer.Lexer uses this at rule-load time to find rules whose automaton can
// be skipped in favor of a shared Aho-Corasick prefilter (see that
// package's DESIGN.md entry).
func LiteralText(pattern string) (string, bool) {
	p := &parser{rs: []rune(pattern)}
	var out []rune
	for !p.eof() {
		c, _ := p.peek()
		switch c {
		case '.', '*', '+', '?', '|', '(', ')', '[', ']':
			return "", false
		case '\\':
			p.advance()
			nc, ok := p.peek()
			if !ok {
				return "", false
			}
			switch nc {
			case 's', 'S', 'w', 'W', 'd', 'D':
				return "", false
			}
			r, err := p.decodeEscapeChar()
			if err != nil || r == automaton.Epsilon {
				return "", false
			}
			out = append(out, r)
		default:
			p.advance()
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return "", false
	}
	return string(out), true
}

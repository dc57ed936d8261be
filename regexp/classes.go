package regexp

import "github.com/coregx/automa/automaton"

// whitespaceRanges backs \s / \S: space, form feed, newline, carriage
// return, tab, vertical tab.
var whitespaceRanges = []automaton.CharRange{
	{Lo: ' ', Hi: ' '},
	{Lo: '\f', Hi: '\f'},
	{Lo: '\n', Hi: '\n'},
	{Lo: '\r', Hi: '\r'},
	{Lo: '\t', Hi: '\t'},
	{Lo: '\v', Hi: '\v'},
}

// wordRanges backs \w / \W: ASCII letters, digits, and underscore.
var wordRanges = []automaton.CharRange{
	{Lo: 'a', Hi: 'z'},
	{Lo: 'A', Hi: 'Z'},
	{Lo: '0', Hi: '9'},
	{Lo: '_', Hi: '_'},
}

// digitRanges backs \d / \D: ASCII digits.
var digitRanges = []automaton.CharRange{
	{Lo: '0', Hi: '9'},
}

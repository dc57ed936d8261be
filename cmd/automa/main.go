// Command automa is the CLI driver for the automaton/regexp/lexer
// toolkit: compiling and testing a regex against strings, scanning a file
// for matches, printing a compiled pattern's graph, and running the rule-
// table lexer — the same four verbs as original_source/src/main.c's
// regex/search/dot/lex modes, rebuilt over flag instead of libstephen's
// argument parser.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/coregx/automa/lexer"
	"github.com/coregx/automa/regexp"
	"github.com/coregx/automa/search"
	"github.com/coregx/automa/simulate"
)

func main() {
	regexFlag := flag.String("regex", "", "compile a pattern and test lines from stdin against it")
	searchFlag := flag.String("search", "", "scan FILE for matches of -regex")
	graphFlag := flag.Bool("graph", false, "print -regex's compiled automaton as a dot graph instead of testing it")
	lexFlag := flag.String("lex", "", "tokenize stdin using the rule table in FILE")
	greedyFlag := flag.Bool("greedy", false, "stop -search at the first match")
	overlapFlag := flag.Bool("overlap", false, "allow -search hits to overlap")
	maxPatternLenFlag := flag.Int("max-pattern-length", regexp.DefaultConfig().MaxPatternLength, "reject -regex/-lex patterns longer than this many runes")
	maxRulesFlag := flag.Int("max-rules", lexer.DefaultConfig().MaxRules, "reject a -lex rule table with more than this many rules")
	flag.Parse()

	rcfg := regexp.DefaultConfig()
	rcfg.MaxPatternLength = *maxPatternLenFlag
	lcfg := lexer.DefaultConfig()
	lcfg.MaxPatternLength = *maxPatternLenFlag
	lcfg.MaxRules = *maxRulesFlag

	switch {
	case *lexFlag != "":
		if err := runLex(*lexFlag, lcfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case *graphFlag:
		if *regexFlag == "" {
			fmt.Fprintln(os.Stderr, "automa: -graph requires -regex")
			os.Exit(1)
		}
		if err := runGraph(*regexFlag, rcfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case *searchFlag != "":
		if *regexFlag == "" {
			fmt.Fprintln(os.Stderr, "automa: -search requires -regex")
			os.Exit(1)
		}
		if err := runSearch(*regexFlag, *searchFlag, *greedyFlag, *overlapFlag, rcfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case *regexFlag != "":
		if err := runRegex(*regexFlag, rcfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(1)
	}
}

// runRegex compiles pattern, then reads lines from stdin and reports
// whether each fully matches — the -e/--regex mode of original_source.
func runRegex(pattern string, cfg regexp.Config) error {
	a, err := regexp.CompileWithConfig(pattern, cfg)
	if err != nil {
		return fmt.Errorf("automa: %w", err)
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		fmt.Printf("%v: %q\n", simulate.Simulate(a, line), line)
	}
	return scanner.Err()
}

// runGraph compiles pattern and writes its dot-format graph to stdout — the
// -d/--dot mode of original_source.
func runGraph(pattern string, cfg regexp.Config) error {
	a, err := regexp.CompileWithConfig(pattern, cfg)
	if err != nil {
		return fmt.Errorf("automa: %w", err)
	}
	_, err = fmt.Print(a.WriteGraph())
	return err
}

// runSearch compiles pattern and scans filename for matches — the
// -s/--search mode of original_source.
func runSearch(pattern, filename string, greedy, overlap bool, cfg regexp.Config) error {
	a, err := regexp.CompileWithConfig(pattern, cfg)
	if err != nil {
		return fmt.Errorf("automa: %w", err)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("automa: %w", err)
	}
	for _, hit := range search.Search(a, string(data), greedy, overlap) {
		fmt.Printf("%d:%d\n", hit.Start, hit.Length)
	}
	return nil
}

// runLex loads the rule table at tablePath, then tokenizes stdin — the
// -l/--lex mode of original_source.
func runLex(tablePath string, cfg lexer.Config) error {
	table, err := os.ReadFile(tablePath)
	if err != nil {
		return fmt.Errorf("automa: %w", err)
	}
	lx, err := lexer.NewWithConfig(cfg)
	if err != nil {
		return fmt.Errorf("automa: %w", err)
	}
	if err := lx.Load(string(table)); err != nil {
		return fmt.Errorf("automa: %w", err)
	}
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("automa: reading stdin: %w", err)
	}
	tokens, err := lx.Yylex(string(input))
	for _, tok := range tokens {
		fmt.Printf("%s(%s)\n", tok.Label, tok.Text)
	}
	if err != nil {
		return fmt.Errorf("automa: %w", err)
	}
	return nil
}

package natrix

import "fmt"

// ParseResult is a successfully parsed program: the normalized source
// it came from, the arena its AST nodes live in, and the top-level
// statement sequence, in source order.
//
// Grounded on the teacher's top-level GrammarFromBytes/GrammarFromFile
// pair (api.go): a single orchestration entry point wiring source
// loading to the parser, generalized here from "grammar text in,
// transformed AST out" to "program text in, diagnostics-or-statements
// out" since natrix has no post-parse transformation passes to chain.
type ParseResult struct {
	Source *Source
	Arena  *Arena
	Stmts  []Stmt
}

// ParseString parses text (given the display name it should carry in
// diagnostics) using spec.md's default tuning.
func ParseString(name, text string) (*ParseResult, error) {
	return ParseStringTuned(name, text, NewTuningConfig())
}

// ParseStringTuned is ParseString with an explicit TuningConfig.
func ParseStringTuned(name, text string, cfg *TuningConfig) (*ParseResult, error) {
	src := LoadString(name, text)
	return parse(src, cfg)
}

// ParseFile loads and parses the program at path using spec.md's
// default tuning. A file that can't be read reports the same
// ParsingError shape as a syntax error, with a single diagnostic
// naming the path — the CLI boundary distinguishes "bad file" from
// "bad syntax" by checking src.Empty() itself rather than relying on
// this function's error type.
func ParseFile(path string) (*ParseResult, error) {
	return ParseFileTuned(path, NewTuningConfig())
}

// ParseFileTuned is ParseFile with an explicit TuningConfig.
func ParseFileTuned(path string, cfg *TuningConfig) (*ParseResult, error) {
	src := LoadFile(path)
	if src.Empty() {
		return nil, &ParsingError{Diagnostics: []Diagnostic{{
			Severity: SeverityError,
			Message:  fmt.Sprintf("could not read %q", path),
		}}}
	}
	return parse(src, cfg)
}

func parse(src *Source, cfg *TuningConfig) (*ParseResult, error) {
	arena := NewArenaSized(cfg.ArenaChunkSize)
	var diags []Diagnostic
	p := NewParserTuned(src, arena, CollectingHandler(&diags), cfg.IndentStackCap)
	stmts := p.Parse()
	if len(diags) > 0 {
		return nil, &ParsingError{Diagnostics: diags}
	}
	return &ParseResult{Source: src, Arena: arena, Stmts: stmts}, nil
}

package natrix

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// DumpTokens runs the lexer over src to completion and renders one
// line per token, for the -tokens-only CLI flag. It stops at the
// first ERROR or EOF token, honoring the lexer's single-token error
// recovery contract.
func DumpTokens(src *Source) string {
	lex := NewLexer(src)
	var b strings.Builder
	for {
		t := lex.Next()
		fmt.Fprintf(&b, "%-14s %-20q %s\n", t.Kind, t.Text(src), t.Span())
		if t.Kind == TokEOF || t.Kind == TokError {
			break
		}
	}
	return b.String()
}

// DumpAST renders stmts with go-spew, for the -ast-only CLI flag.
//
// Grounded on the teacher's own stretchr/testify-via-go-spew chain
// (go-spew is already a transitive testify dependency in the
// teacher's go.mod — DESIGN.md records promoting it to a direct,
// deliberately-used debug-dump tool here rather than leaving it purely
// incidental).
func DumpAST(stmts []Stmt) string {
	return spew.Sdump(stmts)
}

package natrix

// TokenKind enumerates every lexical token natrix produces, including
// the structural INDENT/DEDENT/NEWLINE tokens invented by the
// indentation state machine (spec.md §4.3).
type TokenKind int

const (
	TokEOF TokenKind = iota
	TokError

	TokNewline
	TokIndent
	TokDedent

	TokIntLiteral
	TokStringLiteral
	TokIdent

	// keywords
	TokKwIf
	TokKwElif
	TokKwElse
	TokKwWhile
	TokKwPrint
	TokKwPass

	// operators and punctuation
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokLParen
	TokRParen
	TokLBracket
	TokRBracket
	TokComma
	TokColon
	TokEquals

	TokEqEq
	TokNotEq
	TokGt
	TokGtEq
	TokLt
	TokLtEq
)

var tokenNames = map[TokenKind]string{
	TokEOF:           "EOF",
	TokError:         "ERROR",
	TokNewline:       "NEWLINE",
	TokIndent:        "INDENT",
	TokDedent:        "DEDENT",
	TokIntLiteral:    "INT_LITERAL",
	TokStringLiteral: "STRING_LITERAL",
	TokIdent:         "IDENT",
	TokKwIf:          "if",
	TokKwElif:        "elif",
	TokKwElse:        "else",
	TokKwWhile:       "while",
	TokKwPrint:       "print",
	TokKwPass:        "pass",
	TokPlus:          "+",
	TokMinus:         "-",
	TokStar:          "*",
	TokSlash:         "/",
	TokLParen:        "(",
	TokRParen:        ")",
	TokLBracket:      "[",
	TokRBracket:      "]",
	TokComma:         ",",
	TokColon:         ":",
	TokEquals:        "=",
	TokEqEq:          "==",
	TokNotEq:         "!=",
	TokGt:            ">",
	TokGtEq:          ">=",
	TokLt:            "<",
	TokLtEq:          "<=",
}

func (k TokenKind) String() string {
	if s, ok := tokenNames[k]; ok {
		return s
	}
	return "?"
}

var keywords = map[string]TokenKind{
	"if":    TokKwIf,
	"elif":  TokKwElif,
	"else":  TokKwElse,
	"while": TokKwWhile,
	"print": TokKwPrint,
	"pass":  TokKwPass,
}

// Token is a {kind, start, end} half-open slice into the source
// buffer. Empty tokens (EOF, DEDENT) have Start == End.
type Token struct {
	Kind  TokenKind
	Start int
	End   int
}

// Text returns the token's lexeme, sliced from src.
func (t Token) Text(src *Source) string {
	return src.Text[t.Start:t.End]
}

func (t Token) Span() Span {
	return Span{Start: t.Start, End: t.End}
}

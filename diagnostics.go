package natrix

import (
	"fmt"
	"io"
	"strings"
)

// Severity distinguishes a hard parse error from an advisory
// diagnostic. natrix's own parser only ever emits ERROR (spec.md §4.4
// stops at the first one), but the handler contract supports WARNING
// for reuse by tooling (e.g. a future linter pass).
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one reported problem: a severity, the source span it
// concerns, and a formatted message.
//
// Grounded on the teacher's Diagnostic/DiagnosticError vocabulary
// (query_errors.go), generalized from "one query's result" to "one
// parse run's collected errors" — natrix has no incremental query
// engine (see DESIGN.md for why that machinery wasn't carried over).
type Diagnostic struct {
	Severity Severity
	Span     Span
	Message  string
}

// Handler receives diagnostics as they are reported. The default
// handler (see NewWriterHandler) implements spec.md §4.5's stderr
// format; tests substitute a Handler that just records the slice.
type Handler func(src *Source, d Diagnostic)

// CollectingHandler returns a Handler that appends every diagnostic to
// *out, for tests that want to assert on message text or spans
// without formatting.
func CollectingHandler(out *[]Diagnostic) Handler {
	return func(_ *Source, d Diagnostic) {
		*out = append(*out, d)
	}
}

// NewWriterHandler returns the default handler: it prints
// "filename:line:col: kind: message", the offending source line, and
// a caret strip under the span, to w.
func NewWriterHandler(w io.Writer) Handler {
	return func(src *Source, d Diagnostic) {
		loc := Locate(src, d.Span.Start)
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", src.Name, loc.Line, loc.Column, d.Severity, d.Message)

		line := src.LineText(loc.Line)
		fmt.Fprintln(w, line)

		width := d.Span.End - d.Span.Start
		if width < 1 {
			width = 1
		}
		fmt.Fprintln(w, strings.Repeat(" ", loc.Column-1)+strings.Repeat("^", width))
	}
}

func report(h Handler, src *Source, severity Severity, span Span, format string, args ...any) {
	if h == nil {
		return
	}
	h(src, Diagnostic{Severity: severity, Span: span, Message: fmt.Sprintf(format, args...)})
}

package natrix

import (
	"fmt"
	"strings"
)

// RuntimeFault is the panic payload every evaluation-time error in
// spec.md §7 uses: a fixed, pre-formatted message. Faults unwind the
// evaluator's own recursion; Evaluator.Run recovers the RuntimeFault
// and returns it as its error, which the CLI prints to stderr before
// exiting with status 1.
//
// Mirrors the teacher's split between a structured error value
// (ParsingError, below) and an internal control-flow signal: here the
// runtime's analogue of backtrackingError is a panic rather than a
// returned error, since there is no enclosing Choice operator to catch
// it partway.
type RuntimeFault struct {
	Message string
}

func (f *RuntimeFault) Error() string { return f.Message }

// fault panics a RuntimeFault built from format and args.
func fault(format string, args ...any) {
	panic(&RuntimeFault{Message: fmt.Sprintf(format, args...)})
}

// ParsingError wraps every diagnostic a failed Parse reported. Parse
// only ever accumulates one (spec.md §4.4 aborts at the first), but
// the slice shape matches CollectingHandler's and leaves room for a
// caller that merges diagnostics across several files.
type ParsingError struct {
	Diagnostics []Diagnostic
}

func (e *ParsingError) Error() string {
	var b strings.Builder
	for i, d := range e.Diagnostics {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", d.Span, d.Message)
	}
	return b.String()
}

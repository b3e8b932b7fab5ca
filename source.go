package natrix

import (
	"os"
	"sort"
	"strings"
)

// Source is an immutable, normalized program text together with a
// lazily-built line index. Every `\r\n` and lone `\r` has been
// replaced by `\n`, and the buffer is guaranteed to end with `\n`.
//
// Grounded on the teacher's LineIndex (pos.go): binary search over a
// line-start table, generalized here to byte offsets (natrix is
// ASCII-oblivious, spec.md §1 Non-goals) and 1-based line numbers.
type Source struct {
	Name string
	Text string

	lineStarts []int // lazily built by ensureIndex
}

// LoadString normalizes an in-memory string into a Source.
func LoadString(name, text string) *Source {
	return &Source{Name: name, Text: normalize(text)}
}

// LoadFile reads path and normalizes its contents. On any read error
// it returns the sentinel empty Source (Empty() == true) rather than
// an error, per spec.md §4.2 — the CLI boundary is responsible for
// checking Empty() and reporting failure.
func LoadFile(path string) *Source {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Source{}
	}
	return &Source{Name: path, Text: normalize(string(data))}
}

// Empty reports whether this is the sentinel "could not load" source.
func (s *Source) Empty() bool {
	return s.Name == "" && s.Text == ""
}

func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 1)
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			b.WriteByte('\n')
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		default:
			b.WriteByte(text[i])
		}
	}
	out := b.String()
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out += "\n"
	}
	return out
}

func (s *Source) ensureIndex() {
	if s.lineStarts != nil {
		return
	}
	starts := make([]int, 1, 64)
	starts[0] = 0
	for i := 0; i < len(s.Text); i++ {
		if s.Text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	s.lineStarts = starts
}

// LineCount returns the number of lines in the normalized buffer: the
// number of '\n' characters, plus the trailing (possibly empty) line
// past the final one.
func (s *Source) LineCount() int {
	s.ensureIndex()
	return len(s.lineStarts)
}

// LineNumber returns the 1-based line containing byte offset pos.
func (s *Source) LineNumber(pos int) int {
	s.ensureIndex()
	// first lineStart > pos, then step back one
	i := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	})
	return i
}

// LineStart returns the byte offset where line k (1-based) begins.
func (s *Source) LineStart(k int) int {
	s.ensureIndex()
	return s.lineStarts[k-1]
}

// LineEnd returns the byte offset of the '\n' terminating line k, or
// len(Text) if k is the last (sentinel trailing) line.
func (s *Source) LineEnd(k int) int {
	s.ensureIndex()
	if k >= len(s.lineStarts) {
		return len(s.Text)
	}
	return s.lineStarts[k] - 1
}

// LineText returns the raw text of line k, without its terminator.
func (s *Source) LineText(k int) string {
	start, end := s.LineStart(k), s.LineEnd(k)
	if start > len(s.Text) {
		return ""
	}
	if end > len(s.Text) {
		end = len(s.Text)
	}
	return s.Text[start:end]
}

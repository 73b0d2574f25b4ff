package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TextResource is the full decoded content of a file, read once.
type TextResource struct {
	Path     string
	Encoding string
	Content  string
}

// Line is one line-break delimited segment of a TextResource.
type Line struct {
	Number  int // 1-based position in the resource
	Raw     string
	Trimmed string
}

// Significant reports whether the line has any non-whitespace content.
func (l Line) Significant() bool {
	return l.Trimmed != ""
}

// Lines splits the resource content with SplitLines.
func (r TextResource) Lines() []Line {
	return SplitLines(r.Content)
}

// SplitLines partitions text on line boundaries. "\r\n" counts as a single
// break and a trailing break does not yield an extra empty line, so an empty
// text has no lines at all.
func SplitLines(text string) []Line {
	var lines []Line
	start, n := 0, 1

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}

		lines = append(lines, newLine(n, text[start:i]))
		n++

		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}

	if start < len(text) {
		lines = append(lines, newLine(n, text[start:]))
	}
	return lines
}

// Significant returns the significant lines, preserving order.
func Significant(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Significant() {
			out = append(out, l)
		}
	}
	return out
}

func newLine(n int, raw string) Line {
	return Line{Number: n, Raw: raw, Trimmed: strings.TrimFunc(raw, isTrimmable)}
}

// isTrimmable is unicode.IsSpace plus the ASCII information separators 0x1c-0x1f.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

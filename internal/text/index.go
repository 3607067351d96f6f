package text

import (
	"sort"
	"unicode/utf8"
)

// line is one entry of the line table. start and length are byte counts;
// chars is the number of runes in the line, terminator excluded.
type line struct {
	start  int
	length int
	chars  int
}

// LineIndex is the line table of a text snapshot. It is immutable; a new one
// is built whenever the text changes.
type LineIndex struct {
	text  string
	lines []line
}

// NewLineIndex scans text once and records the start and length of every line.
// A "\r" directly before "\n" is part of the terminator. The last line is
// always present, so an empty text has a single empty line.
func NewLineIndex(text string) *LineIndex {
	idx := &LineIndex{text: text}

	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		end := i
		if end > start && text[end-1] == '\r' {
			end--
		}
		idx.lines = append(idx.lines, idx.makeLine(start, end))
		start = i + 1
	}
	idx.lines = append(idx.lines, idx.makeLine(start, len(text)))

	return idx
}

func (idx *LineIndex) makeLine(start, end int) line {
	return line{
		start:  start,
		length: end - start,
		chars:  utf8.RuneCountInString(idx.text[start:end]),
	}
}

// LineCount returns the number of indexed lines.
func (idx *LineIndex) LineCount() int {
	return len(idx.lines)
}

// LineLength returns the length of a line in characters.
func (idx *LineIndex) LineLength(n int) (int, bool) {
	if n < 0 || n >= len(idx.lines) {
		return 0, false
	}
	return idx.lines[n].chars, true
}

// OffsetOf converts a position to a byte offset. It fails only when the line
// is not in the table. A character past the end of its line falls back to the
// line length, so it never reaches the terminator or the lines after it.
func (idx *LineIndex) OffsetOf(pos Position) (int, bool) {
	if pos.Line < 0 || pos.Line >= len(idx.lines) || pos.Character < 0 {
		return 0, false
	}

	l := idx.lines[pos.Line]
	if pos.Character >= l.chars {
		return l.start + l.length, true
	}

	n := 0
	for i := range idx.text[l.start : l.start+l.length] {
		if n == pos.Character {
			return l.start + i, true
		}
		n++
	}

	return l.start + l.length, true
}

// PositionOf converts a byte offset to a position: the line is the first one
// whose [start, start+length] span reaches the offset. Offsets that fall on a
// "\r\n" terminator map to the end of their line. It fails for negative
// offsets and offsets past the end of the text.
func (idx *LineIndex) PositionOf(offset int) (Position, bool) {
	if offset < 0 {
		return Position{}, false
	}

	n := sort.Search(len(idx.lines), func(i int) bool {
		return idx.lines[i].start+idx.lines[i].length >= offset
	})
	if n == len(idx.lines) {
		return Position{}, false
	}

	l := idx.lines[n]
	if offset < l.start {
		prev := idx.lines[n-1]
		return Position{Line: n - 1, Character: prev.chars}, true
	}

	return Position{
		Line:      n,
		Character: utf8.RuneCountInString(idx.text[l.start:offset]),
	}, true
}

// LastPosition is the fallback for offsets that do not resolve: the last
// character of the final line, or character 0 when that line is empty.
func (idx *LineIndex) LastPosition() Position {
	n := len(idx.lines) - 1
	char := idx.lines[n].chars - 1
	if char < 0 {
		char = 0
	}
	return Position{Line: n, Character: char}
}

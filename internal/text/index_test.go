package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineIndexLines(t *testing.T) {
	idx := NewLineIndex("var a = 3;\nvar b = 4;\n\nif (a) { print(a); }")

	require.Equal(t, 4, idx.LineCount())

	expected := []int{10, 10, 0, 20}
	for i, want := range expected {
		got, ok := idx.LineLength(i)
		assert.True(t, ok)
		assert.Equal(t, want, got, "length of line %d", i)
	}

	_, ok := idx.LineLength(4)
	assert.False(t, ok)
}

func TestLineIndexEmptyText(t *testing.T) {
	idx := NewLineIndex("")

	assert.Equal(t, 1, idx.LineCount())

	offset, ok := idx.OffsetOf(Position{Line: 0, Character: 0})
	assert.True(t, ok)
	assert.Equal(t, 0, offset)

	pos, ok := idx.PositionOf(0)
	assert.True(t, ok)
	assert.Equal(t, Position{}, pos)

	assert.Equal(t, Position{}, idx.LastPosition())
}

func TestLineIndexCarriageReturn(t *testing.T) {
	idx := NewLineIndex("ab\r\ncd")

	length, _ := idx.LineLength(0)
	assert.Equal(t, 2, length, "\\r belongs to the terminator")

	offset, ok := idx.OffsetOf(Position{Line: 1, Character: 0})
	assert.True(t, ok)
	assert.Equal(t, 4, offset)

	// Both terminator bytes map to the end of the first line.
	for _, off := range []int{2, 3} {
		pos, ok := idx.PositionOf(off)
		assert.True(t, ok)
		assert.Equal(t, Position{Line: 0, Character: 2}, pos)
	}
}

func TestOffsetOfOutOfRange(t *testing.T) {
	idx := NewLineIndex("one\ntwo")

	_, ok := idx.OffsetOf(Position{Line: 2, Character: 0})
	assert.False(t, ok, "line past the table")

	_, ok = idx.OffsetOf(Position{Line: -1, Character: 0})
	assert.False(t, ok)

	// Past the end of a line stops before its terminator.
	offset, ok := idx.OffsetOf(Position{Line: 0, Character: 5})
	assert.True(t, ok)
	assert.Equal(t, 3, offset)

	offset, ok = idx.OffsetOf(Position{Line: 1, Character: 40})
	assert.True(t, ok)
	assert.Equal(t, 7, offset)

	crlf := NewLineIndex("ab\r\ncd")
	offset, ok = crlf.OffsetOf(Position{Line: 0, Character: 99})
	assert.True(t, ok)
	assert.Equal(t, 2, offset)
}

func TestPositionOfOutOfRange(t *testing.T) {
	idx := NewLineIndex("one\ntwo")

	_, ok := idx.PositionOf(8)
	assert.False(t, ok)

	_, ok = idx.PositionOf(-1)
	assert.False(t, ok)

	pos, ok := idx.PositionOf(7)
	assert.True(t, ok, "end of text is addressable")
	assert.Equal(t, Position{Line: 1, Character: 3}, pos)

	assert.Equal(t, Position{Line: 1, Character: 2}, idx.LastPosition())
}

func TestPositionRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"\n",
		"var a = 3;",
		"var a = 3;\nvar b = 4;\nif (a) { print(a); }",
		"line one\r\nline two\r\n",
		"// héllo wörld\nvar x = 1;\n",
		"\n\n\nx",
	}

	for _, src := range texts {
		idx := NewLineIndex(src)
		for l := 0; l < idx.LineCount(); l++ {
			length, _ := idx.LineLength(l)
			for c := 0; c <= length; c++ {
				p := Position{Line: l, Character: c}
				offset, ok := idx.OffsetOf(p)
				require.True(t, ok, "%q: offset of %v", src, p)

				back, ok := idx.PositionOf(offset)
				require.True(t, ok, "%q: position of %d", src, offset)
				assert.Equal(t, p, back, "%q: round trip of %v", src, p)
			}
		}
	}
}

func TestOffsetOfMultibyte(t *testing.T) {
	idx := NewLineIndex("// é x")

	offset, ok := idx.OffsetOf(Position{Line: 0, Character: 4})
	assert.True(t, ok)
	assert.Equal(t, 5, offset, "é takes two bytes")

	pos, ok := idx.PositionOf(6)
	assert.True(t, ok)
	assert.Equal(t, Position{Line: 0, Character: 5}, pos)
}

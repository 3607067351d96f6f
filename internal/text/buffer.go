package text

import "fmt"

// RangeError reports an edit whose range does not resolve against the current
// line table. The edit is dropped and the buffer keeps its previous state.
type RangeError struct {
	Range  Range
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("edit range %s: %s", e.Range, e.Reason)
}

// Buffer owns the text of one open document together with its line table.
type Buffer struct {
	text  string
	index *LineIndex
}

// NewBuffer builds the buffer and its line table from an initial snapshot.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text, index: NewLineIndex(text)}
}

func (b *Buffer) Text() string {
	return b.text
}

func (b *Buffer) Len() int {
	return len(b.text)
}

func (b *Buffer) Index() *LineIndex {
	return b.index
}

func (b *Buffer) OffsetOf(pos Position) (int, bool) {
	return b.index.OffsetOf(pos)
}

func (b *Buffer) PositionOf(offset int) (Position, bool) {
	return b.index.PositionOf(offset)
}

// LastPosition is where PositionAt lands when an offset does not resolve.
func (b *Buffer) LastPosition() Position {
	return b.index.LastPosition()
}

// PositionAt is PositionOf with the last-character fallback applied.
func (b *Buffer) PositionAt(offset int) Position {
	if pos, ok := b.index.PositionOf(offset); ok {
		return pos
	}
	return b.index.LastPosition()
}

// RangeOf converts a [start, end) byte span to a position range.
func (b *Buffer) RangeOf(start, end int) Range {
	return Range{Start: b.PositionAt(start), End: b.PositionAt(end)}
}

// Slice returns the text covered by r.
func (b *Buffer) Slice(r Range) (string, bool) {
	start, ok := b.index.OffsetOf(r.Start)
	if !ok {
		return "", false
	}
	end, ok := b.index.OffsetOf(r.End)
	if !ok || end < start {
		return "", false
	}
	return b.text[start:end], true
}

// ApplyFullEdit replaces the text and the line table wholesale.
func (b *Buffer) ApplyFullEdit(text string) {
	b.text = text
	b.index = NewLineIndex(text)
}

// ApplyRangeEdit replaces the characters in [r.Start, r.End) with text and
// rebuilds the line table. If either end of the range does not resolve the
// buffer is left untouched and a *RangeError is returned.
func (b *Buffer) ApplyRangeEdit(r Range, text string) error {
	start, ok := b.index.OffsetOf(r.Start)
	if !ok {
		return &RangeError{Range: r, Reason: fmt.Sprintf("start line %d is outside the document", r.Start.Line)}
	}
	end, ok := b.index.OffsetOf(r.End)
	if !ok {
		return &RangeError{Range: r, Reason: fmt.Sprintf("end line %d is outside the document", r.End.Line)}
	}
	if end < start {
		return &RangeError{Range: r, Reason: "end is before start"}
	}

	b.ApplyFullEdit(b.text[:start] + text + b.text[end:])
	return nil
}

// Apply dispatches a change to the matching edit form.
func (b *Buffer) Apply(c Change) error {
	if c.Range == nil {
		b.ApplyFullEdit(c.Text)
		return nil
	}
	return b.ApplyRangeEdit(*c.Range, c.Text)
}

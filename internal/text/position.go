// Package text holds an editable document buffer and the line table that maps
// byte offsets to (line, character) positions and back.
package text

import "fmt"

// Position is a zero-based (line, character) pair. Character counts source
// characters (runes) from the start of the line.
type Position struct {
	Line      int
	Character int
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

// String renders the position one-based, the way editors display it.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Character+1)
}

// Range is a half-open [Start, End) span of positions.
type Range struct {
	Start Position
	End   Position
}

// IsEmpty reports whether the range covers no characters.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether pos falls inside the half-open range.
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.Start) && pos.Before(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Change is a single edit notification. A nil Range replaces the whole text.
type Change struct {
	Range *Range
	Text  string
}

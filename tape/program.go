package tape

import (
	"maps"
	"slices"
	"strings"
)

// Program is a translated operation sequence with its resolved loop targets.
// The jump table maps every '[' position to its matching ']' and every ']'
// back to its '['. A Program is immutable once Translate returns it.
type Program struct {
	ops       []Op
	jumps     map[int]int
	positions []Position
}

// Len returns the number of operations.
func (p *Program) Len() int {
	return len(p.ops)
}

// Op returns the operation at index i.
func (p *Program) Op(i int) Op {
	return p.ops[i]
}

// Ops returns a copy of the operation sequence.
func (p *Program) Ops() []Op {
	return slices.Clone(p.ops)
}

// Jump returns the matching bracket position for the bracket at index i.
func (p *Program) Jump(i int) (int, bool) {
	j, ok := p.jumps[i]
	return j, ok
}

// Jumps returns a copy of the jump table.
func (p *Program) Jumps() map[int]int {
	out := make(map[int]int, len(p.jumps))
	maps.Copy(out, p.jumps)
	return out
}

// Loops returns the number of matched bracket pairs.
func (p *Program) Loops() int {
	return len(p.jumps) / 2
}

// Pos returns the source position operation i was translated from. Programs
// built without source positions report the zero Position.
func (p *Program) Pos(i int) Position {
	if i < 0 || i >= len(p.positions) {
		return Position{}
	}
	return p.positions[i]
}

// String renders the program as canonical source: the command characters
// only, with all commentary removed.
func (p *Program) String() string {
	var b strings.Builder
	b.Grow(len(p.ops))
	for _, op := range p.ops {
		b.WriteByte(op.Symbol())
	}
	return b.String()
}

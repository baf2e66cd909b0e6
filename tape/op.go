package tape

// Op identifies one translated command. The zero value is not a valid Op.
type Op uint8

const (
	OpForward Op = iota + 1
	OpBackward
	OpIncrement
	OpDecrement
	OpOutput
	OpInput
	OpLoopOpen
	OpLoopClose
)

var opSymbols = map[rune]Op{
	'>': OpForward,
	'<': OpBackward,
	'+': OpIncrement,
	'-': OpDecrement,
	'.': OpOutput,
	',': OpInput,
	'[': OpLoopOpen,
	']': OpLoopClose,
}

// OpForRune returns the Op a source character translates to, reporting
// false for characters that are treated as commentary.
func OpForRune(r rune) (Op, bool) {
	op, ok := opSymbols[r]
	return op, ok
}

// Symbol returns the source character for the op, or 0 for an invalid op.
func (o Op) Symbol() byte {
	switch o {
	case OpForward:
		return '>'
	case OpBackward:
		return '<'
	case OpIncrement:
		return '+'
	case OpDecrement:
		return '-'
	case OpOutput:
		return '.'
	case OpInput:
		return ','
	case OpLoopOpen:
		return '['
	case OpLoopClose:
		return ']'
	default:
		return 0
	}
}

func (o Op) String() string {
	switch o {
	case OpForward:
		return "forward"
	case OpBackward:
		return "backward"
	case OpIncrement:
		return "increment"
	case OpDecrement:
		return "decrement"
	case OpOutput:
		return "output"
	case OpInput:
		return "input"
	case OpLoopOpen:
		return "loop-open"
	case OpLoopClose:
		return "loop-close"
	default:
		return "invalid"
	}
}

// Describe returns a one-line human description of what the op does.
func (o Op) Describe() string {
	switch o {
	case OpForward:
		return "move the cursor one cell right"
	case OpBackward:
		return "move the cursor one cell left"
	case OpIncrement:
		return "increment the current cell"
	case OpDecrement:
		return "decrement the current cell"
	case OpOutput:
		return "write the current cell"
	case OpInput:
		return "read one byte into the current cell"
	case OpLoopOpen:
		return "skip past the matching ] if the current cell is zero"
	case OpLoopClose:
		return "jump back past the matching [ if the current cell is nonzero"
	default:
		return "invalid operation"
	}
}

// IsBracket reports whether the op is a loop marker.
func (o Op) IsBracket() bool {
	return o == OpLoopOpen || o == OpLoopClose
}

// Ops returns every valid op in declaration order.
func Ops() []Op {
	return []Op{OpForward, OpBackward, OpIncrement, OpDecrement, OpOutput, OpInput, OpLoopOpen, OpLoopClose}
}

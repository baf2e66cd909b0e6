package tape

// Translate converts program source into a Program. Characters outside the
// command set are discarded. Translation fails with a *BracketError when the
// loop markers do not balance, in which case no Program is returned.
func Translate(source string) (*Program, error) {
	l := newLexer(source)

	var (
		ops       []Op
		positions []Position
	)
	for {
		op, pos, ok := l.next()
		if !ok {
			break
		}
		ops = append(ops, op)
		positions = append(positions, pos)
	}

	jumps, err := resolveJumps(ops, positions, source)
	if err != nil {
		return nil, err
	}
	return &Program{ops: ops, jumps: jumps, positions: positions}, nil
}

func resolveJumps(ops []Op, positions []Position, source string) (map[int]int, error) {
	jumps := make(map[int]int)
	var open []int
	for i, op := range ops {
		switch op {
		case OpLoopOpen:
			open = append(open, i)
		case OpLoopClose:
			if len(open) == 0 {
				return nil, &BracketError{
					Kind:      UnmatchedClose,
					Index:     i,
					Pos:       positions[i],
					Unmatched: 1,
					source:    source,
				}
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			jumps[start] = i
			jumps[i] = start
		}
	}
	if len(open) > 0 {
		first := open[0]
		return nil, &BracketError{
			Kind:      UnmatchedOpen,
			Index:     first,
			Pos:       positions[first],
			Unmatched: len(open),
			source:    source,
		}
	}
	return jumps, nil
}

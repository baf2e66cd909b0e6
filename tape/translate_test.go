package tape

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTranslateDropsCommentary(t *testing.T) {
	program, err := Translate("add one +\nthen print it . done")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	want := []Op{OpIncrement, OpOutput}
	if got := program.Ops(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected ops: %v", got)
	}
	if got := program.String(); got != "+." {
		t.Fatalf("unexpected canonical source: %q", got)
	}
}

func TestTranslateMapsEveryCommand(t *testing.T) {
	program, err := Translate("><+-.,[]")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	want := []Op{OpForward, OpBackward, OpIncrement, OpDecrement, OpOutput, OpInput, OpLoopOpen, OpLoopClose}
	if got := program.Ops(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected ops: %v", got)
	}
	if !reflect.DeepEqual(Ops(), want) {
		t.Fatalf("Ops() out of declaration order: %v", Ops())
	}
}

func TestTranslateEmptySource(t *testing.T) {
	program, err := Translate("no commands here")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if program.Len() != 0 || program.Loops() != 0 {
		t.Fatalf("expected empty program, got %d ops and %d loops", program.Len(), program.Loops())
	}
}

func TestTranslateIsDeterministic(t *testing.T) {
	source := "++[>+<-]>[-]. comment [[]] ,"
	first, err := Translate(source)
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	second, err := Translate(source)
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("translations differ:\n%#v\n%#v", first, second)
	}
}

func TestTranslateJumpTableIsSymmetric(t *testing.T) {
	program, err := Translate("[[]+[-]]>[<]")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	jumps := program.Jumps()
	if len(jumps) != 2*program.Loops() || program.Loops() != 4 {
		t.Fatalf("unexpected jump table size %d for %d loops", len(jumps), program.Loops())
	}
	for i, j := range jumps {
		back, ok := jumps[j]
		if !ok || back != i {
			t.Fatalf("jump %d -> %d has no inverse (got %d, %t)", i, j, back, ok)
		}
		open, close := i, j
		if open > close {
			open, close = close, open
		}
		if program.Op(open) != OpLoopOpen || program.Op(close) != OpLoopClose {
			t.Fatalf("jump %d <-> %d does not pair an open with a close", open, close)
		}
	}

	want := map[int]int{0: 7, 7: 0, 1: 2, 2: 1, 4: 6, 6: 4, 9: 11, 11: 9}
	if !reflect.DeepEqual(jumps, want) {
		t.Fatalf("unexpected jump table: %v", jumps)
	}
}

func TestTranslateNestedBracketsSucceed(t *testing.T) {
	program, err := Translate("[[]]")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if j, ok := program.Jump(0); !ok || j != 3 {
		t.Fatalf("expected outer loop 0 -> 3, got %d (%t)", j, ok)
	}
	if j, ok := program.Jump(2); !ok || j != 1 {
		t.Fatalf("expected inner loop 2 -> 1, got %d (%t)", j, ok)
	}
	if _, ok := program.Jump(4); ok {
		t.Fatalf("expected no jump for out of range position")
	}
}

func TestTranslateUnmatchedClose(t *testing.T) {
	for _, source := range []string{"]", "+]", "[]]"} {
		program, err := Translate(source)
		if err == nil {
			t.Fatalf("expected bracket mismatch for %q", source)
		}
		if program != nil {
			t.Fatalf("expected no program for %q", source)
		}
		if !errors.Is(err, ErrBracketMismatch) {
			t.Fatalf("expected ErrBracketMismatch for %q, got %v", source, err)
		}
		var bracketErr *BracketError
		if !errors.As(err, &bracketErr) {
			t.Fatalf("expected *BracketError, got %T", err)
		}
		if bracketErr.Kind != UnmatchedClose {
			t.Fatalf("expected unmatched close for %q, got %v", source, bracketErr.Kind)
		}
		if bracketErr.Index != len(source)-1 {
			t.Fatalf("expected error at %d for %q, got %d", len(source)-1, source, bracketErr.Index)
		}
	}
}

func TestTranslateUnmatchedOpen(t *testing.T) {
	cases := map[string]int{
		"[":    1,
		"[[]":  1,
		"[[[]": 2,
	}
	for source, unmatched := range cases {
		_, err := Translate(source)
		if !errors.Is(err, ErrBracketMismatch) {
			t.Fatalf("expected ErrBracketMismatch for %q, got %v", source, err)
		}
		var bracketErr *BracketError
		if !errors.As(err, &bracketErr) {
			t.Fatalf("expected *BracketError, got %T", err)
		}
		if bracketErr.Kind != UnmatchedOpen {
			t.Fatalf("expected unmatched open for %q, got %v", source, bracketErr.Kind)
		}
		if bracketErr.Index != 0 {
			t.Fatalf("expected outermost open at 0 for %q, got %d", source, bracketErr.Index)
		}
		if bracketErr.Unmatched != unmatched {
			t.Fatalf("expected %d unmatched for %q, got %d", unmatched, source, bracketErr.Unmatched)
		}
	}
}

func TestTranslateTracksSourcePositions(t *testing.T) {
	program, err := Translate("a+\n  é-\n\n.")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	want := []Position{{Line: 1, Column: 2}, {Line: 2, Column: 4}, {Line: 4, Column: 1}}
	for i, pos := range want {
		if got := program.Pos(i); got != pos {
			t.Fatalf("op %d: expected position %v, got %v", i, pos, got)
		}
	}
	if got := program.Pos(10); got != (Position{}) {
		t.Fatalf("expected zero position out of range, got %v", got)
	}
}

func TestBracketErrorRendersCodeFrame(t *testing.T) {
	_, err := Translate("++\n+]-")
	if err == nil {
		t.Fatalf("expected bracket mismatch")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "bracket mismatch at 2:2: unmatched ']'") {
		t.Fatalf("unexpected error header: %q", msg)
	}
	if !strings.Contains(msg, "  --> line 2, column 2\n 2 | +]-\n   |  ^") {
		t.Fatalf("missing code frame: %q", msg)
	}
}

func TestBracketErrorCountsUnclosedOpens(t *testing.T) {
	_, err := Translate("[[")
	if err == nil {
		t.Fatalf("expected bracket mismatch")
	}
	if !strings.Contains(err.Error(), "unmatched '[' (2 unclosed)") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProgramAccessorsReturnCopies(t *testing.T) {
	program, err := Translate("[+]")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	ops := program.Ops()
	ops[1] = OpDecrement
	jumps := program.Jumps()
	jumps[0] = 99
	if program.Op(1) != OpIncrement {
		t.Fatalf("ops slice aliases program storage")
	}
	if j, _ := program.Jump(0); j != 2 {
		t.Fatalf("jump map aliases program storage")
	}
}

func TestOpForRuneRejectsCommentary(t *testing.T) {
	for _, r := range "abc 09\n\t#!" {
		if op, ok := OpForRune(r); ok {
			t.Fatalf("expected %q to be commentary, got %v", r, op)
		}
	}
	var zero Op
	if zero.Symbol() != 0 || zero.String() != "invalid" {
		t.Fatalf("zero op should be invalid")
	}
}

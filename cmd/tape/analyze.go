package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mgomes/tape/tape"
)

type lintWarning struct {
	Pos     tape.Position
	Message string
}

func analyzeCommand(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("tape analyze: program path required")
	}

	programPath, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve program path: %w", err)
	}
	input, err := os.ReadFile(programPath)
	if err != nil {
		return fmt.Errorf("read program: %w", err)
	}

	program, err := tape.Translate(string(input))
	if err != nil {
		return fmt.Errorf("analysis compile failed: %w", err)
	}

	warnings := analyzeProgramWarnings(program)
	if len(warnings) == 0 {
		fmt.Println("No issues found")
		return nil
	}

	for _, warning := range warnings {
		fmt.Printf("%s:%d:%d: %s\n", programPath, warning.Pos.Line, warning.Pos.Column, warning.Message)
	}

	return fmt.Errorf("analysis found %d issue(s)", len(warnings))
}

func analyzeProgramWarnings(program *tape.Program) []lintWarning {
	warnings := make([]lintWarning, 0)
	add := func(i int, msg string) {
		warnings = append(warnings, lintWarning{Pos: program.Pos(i), Message: msg})
	}

	for i := 0; i < program.Len(); i++ {
		op := program.Op(i)
		if op == tape.OpLoopOpen && loopStartsOnZero(program, i) {
			add(i, "loop can never be entered")
		}
		if i+1 >= program.Len() {
			continue
		}
		next := program.Op(i + 1)
		switch {
		case op == tape.OpLoopOpen && next == tape.OpLoopClose:
			add(i, "empty loop never terminates once entered")
		case cancels(op, next):
			add(i, fmt.Sprintf("cancelling pair %q", string([]byte{op.Symbol(), next.Symbol()})))
		}
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		if warnings[i].Pos.Line != warnings[j].Pos.Line {
			return warnings[i].Pos.Line < warnings[j].Pos.Line
		}
		return warnings[i].Pos.Column < warnings[j].Pos.Column
	})

	return warnings
}

// loopStartsOnZero reports whether the current cell is provably zero when the
// '[' at i is reached: at program start, or directly after another loop exits.
func loopStartsOnZero(program *tape.Program, i int) bool {
	return i == 0 || program.Op(i-1) == tape.OpLoopClose
}

func cancels(a, b tape.Op) bool {
	switch a {
	case tape.OpIncrement:
		return b == tape.OpDecrement
	case tape.OpDecrement:
		return b == tape.OpIncrement
	case tape.OpForward:
		return b == tape.OpBackward
	case tape.OpBackward:
		return b == tape.OpForward
	default:
		return false
	}
}

package conformance

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/mgomes/tape/tape"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// SummaryStats counts results by outcome
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// Runner executes conformance tests
type Runner struct{}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	err := r.check(test.Test)
	return TestResult{
		Test:   test,
		Passed: err == nil,
		Error:  err,
	}
}

// RunAll executes every test in order
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, 0, len(tests))
	for _, test := range tests {
		results = append(results, r.Run(test))
	}
	return results
}

func (r *Runner) check(test TestCase) error {
	expect := test.Expect

	program, err := tape.Translate(test.Program)
	if err != nil {
		if expect.Error == "bracket" && errors.Is(err, tape.ErrBracketMismatch) {
			return nil
		}
		return fmt.Errorf("translate: %w", err)
	}
	if expect.Error == "bracket" {
		return fmt.Errorf("expected bracket mismatch, program translated to %d ops", program.Len())
	}

	out := &limitedSink{limit: -1}
	if test.OutputLimit != nil {
		out.limit = *test.OutputLimit
	}
	m := tape.NewMachine(strings.NewReader(test.Input), out)
	runErr := m.Run(program)

	switch expect.Error {
	case "":
		if runErr != nil {
			return fmt.Errorf("run: %w", runErr)
		}
	case "output":
		if !errors.Is(runErr, tape.ErrOutput) {
			return fmt.Errorf("expected output failure, got %v", runErr)
		}
	default:
		return fmt.Errorf("unknown error class: %s", expect.Error)
	}

	if expect.Output != nil && out.buf.String() != *expect.Output {
		return fmt.Errorf("expected output %q, got %q", *expect.Output, out.buf.String())
	}
	if expect.OutputBytes != nil {
		want := make([]byte, len(expect.OutputBytes))
		for i, v := range expect.OutputBytes {
			want[i] = byte(v)
		}
		if !bytes.Equal(out.buf.Bytes(), want) {
			return fmt.Errorf("expected output bytes %v, got %v", want, out.buf.Bytes())
		}
	}
	for idx, want := range expect.Cells {
		if got := m.Cell(idx); int(got) != want {
			return fmt.Errorf("expected cell %d = %d, got %d", idx, want, got)
		}
	}
	if expect.Cursor != nil && m.Cursor() != *expect.Cursor {
		return fmt.Errorf("expected cursor %d, got %d", *expect.Cursor, m.Cursor())
	}
	return nil
}

var errSinkFull = errors.New("sink full")

// limitedSink records output and fails once limit bytes have been accepted.
// A negative limit never fails.
type limitedSink struct {
	buf   bytes.Buffer
	limit int
}

func (s *limitedSink) WriteByte(c byte) error {
	if s.limit >= 0 && s.buf.Len() >= s.limit {
		return errSinkFull
	}
	return s.buf.WriteByte(c)
}

// ComputeStats calculates summary statistics from results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

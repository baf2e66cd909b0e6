package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateNonQuitCommandDoesNotReturnCmd(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func TestUpdateEnterRunsProgramAndRecordsHistory(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("+++.")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if len(rm.history) != 1 || len(rm.cmdHistory) != 1 {
		t.Fatalf("expected one history entry, got %d/%d", len(rm.history), len(rm.cmdHistory))
	}
	entry := rm.history[0]
	if entry.isErr || entry.output != `"\x03"` {
		t.Fatalf("unexpected history entry: %#v", entry)
	}
	if rm.snapshot == nil || rm.snapshot.cursor != 0 || rm.snapshot.cells[tapeRadius] != 3 {
		t.Fatalf("unexpected tape snapshot: %#v", rm.snapshot)
	}
}

func TestEvaluateReportsBracketMismatch(t *testing.T) {
	m := newREPLModel()

	_, output, isErr := m.evaluate("+]")
	if !isErr {
		t.Fatalf("expected an error for unmatched close")
	}
	if !strings.Contains(output, "unmatched ']'") {
		t.Fatalf("unexpected error output: %q", output)
	}
}

func TestEvaluateConsumesPendingInput(t *testing.T) {
	m := newREPLModel()
	m, _ = m.handleCommand(`:input "hi\n"`)
	if string(m.pendingInput) != "hi\n" {
		t.Fatalf("unexpected pending input: %q", m.pendingInput)
	}

	m, output, isErr := m.evaluate(",.")
	if isErr || output != `"h"` {
		t.Fatalf("unexpected output %q (%t)", output, isErr)
	}
	if string(m.pendingInput) != "i\n" {
		t.Fatalf("expected consumed byte to be dropped, got %q", m.pendingInput)
	}

	m, output, _ = m.evaluate(",,,,.")
	if output != `"\n"` {
		t.Fatalf("expected eof to keep last byte, got %q", output)
	}
	if len(m.pendingInput) != 0 {
		t.Fatalf("expected pending input to be drained, got %q", m.pendingInput)
	}
}

func TestEvaluateWithoutOutputReportsSteps(t *testing.T) {
	m := newREPLModel()
	_, output, isErr := m.evaluate("++[-]")
	if isErr || output != "(no output, 7 steps)" {
		t.Fatalf("unexpected output %q (%t)", output, isErr)
	}
}

func TestHandleCommandRejectsBadQuotedInput(t *testing.T) {
	m := newREPLModel()
	m, _ = m.handleCommand(`:input "unterminated`)
	if len(m.history) != 1 || !m.history[0].isErr {
		t.Fatalf("expected error history entry, got %#v", m.history)
	}
}

func TestAutocompleteCompletesCommands(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":ta")
	m = m.handleAutocomplete()
	if m.textInput.Value() != ":tape" {
		t.Fatalf("expected :tape completion, got %q", m.textInput.Value())
	}

	m.textInput.SetValue(":")
	m = m.handleAutocomplete()
	if len(m.history) != 1 || !strings.Contains(m.history[0].output, ":input") {
		t.Fatalf("expected completion list, got %#v", m.history)
	}
}

func TestViewRendersTapePanel(t *testing.T) {
	m := newREPLModel()
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	rm := model.(replModel)
	rm, _, _ = rm.evaluate(">++")

	view := rm.View()
	if !strings.Contains(view, "Tape (cursor 1") {
		t.Fatalf("expected tape panel in view, got %q", view)
	}
}

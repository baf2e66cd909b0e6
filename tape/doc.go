// Package tape implements an interpreter for the eight-command
// bracket language over a fixed byte tape:
//   - `>` and `<` move the cursor one cell right or left, wrapping at the
//     ends of the 30,000-cell tape.
//   - `+` and `-` increment or decrement the current cell modulo 256.
//   - `.` writes the current cell and `,` reads one byte into it.
//   - `[` skips past its matching `]` when the current cell is zero, and
//     `]` jumps back past its matching `[` when the cell is nonzero.
//
// Every other character is ignored, so programs may carry inline comments.
// Translate validates bracket structure and resolves loop targets up front;
// a Machine then walks the resulting Program with an explicit program counter.
// A read that fails or hits end of input leaves the current cell unchanged.
package tape

// Package vtengine implements a VT-style terminal emulator core: a
// byte-stream-driven state machine that consumes ECMA-48/ANSI/xterm output
// and maintains an in-memory grid of attributed cells.
//
// The engine has no opinion about rendering, ptys, or event loops. A host
// feeds it bytes via Run and implements the Host interface to receive
// bell/title/resize notifications and write-back replies (DA, etc.):
//
//	host := myHost{}
//	em := vtengine.New(24, 80, host)
//	em.Run([]byte("\x1b[31mHello\x1b[0m\n"))
//	cell := em.Screen().Row(0).Cells[0]
//
// # Architecture
//
//   - [Cell] and [Row]: the attributed-character grid unit and a line of
//     cells with dirty/wrapped flags.
//   - [Screen]: the row-pointer grid, scroll region, and row-rotation
//     scrolling.
//   - The cursor, saved-cursor, and mode-flag state live on [Emulator]
//     directly (see cursor.go, modes.go).
//   - The ground/ESC/CSI/OSC byte classifier (parser.go), paired with a
//     stateful UTF-8 decoder (utf8.go) that falls back to Latin-1 on
//     malformed input.
//   - The operation dispatcher (ops_*.go) maps CSI/ESC/OSC finals to
//     mutations of the Screen and cursor state.
//
// Alternate-screen buffers, DCS/APC/PM sequences, charset shifting, and
// sixel/graphics are out of scope; see DESIGN.md for the full list of
// decisions inherited from the specification this engine implements.
package vtengine

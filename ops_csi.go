package vtengine

import "fmt"

// dispatchCSI executes a complete CSI sequence, keyed by its final byte,
// per spec §4.F. Parameters are read through e.arg (the GETARG
// convention: unset and explicit-zero are indistinguishable).
func (e *Emulator) dispatchCSI(final byte) {
	switch final {
	case 'A':
		e.clearWrapnext()
		e.cuu(e.arg(0, 1))
	case 'B':
		e.clearWrapnext()
		e.cud(e.arg(0, 1))
	case 'C':
		e.clearWrapnext()
		e.cuf(e.arg(0, 1))
	case 'D':
		e.clearWrapnext()
		e.cub(e.arg(0, 1))
	case 'E':
		e.clearWrapnext()
		e.cnl(e.arg(0, 1))
	case 'F':
		e.clearWrapnext()
		e.cpl(e.arg(0, 1))
	case 'G', '`':
		e.clearWrapnext()
		e.cha(e.arg(0, 1) - 1)
	case 'H', 'f':
		e.clearWrapnext()
		e.setCursorPosition(e.arg(0, 1)-1, e.arg(1, 1)-1)
	case 'd':
		e.clearWrapnext()
		e.vpa(e.arg(0, 1) - 1)
	case 'J':
		e.eraseDisplay(e.arg(0, 0))
	case 'K':
		e.eraseLine(e.arg(0, 0))
	case 'L':
		e.insertLines(e.arg(0, 1))
	case 'M':
		e.deleteLines(e.arg(0, 1))
	case 'P':
		e.deleteChars(e.arg(0, 1))
	case '@':
		e.insertChars(e.arg(0, 1))
	case 'X':
		e.eraseChars(e.arg(0, 1))
	case 'S':
		e.scrollUpOp(e.arg(0, 1))
	case 'T':
		e.scrollDownOp(e.arg(0, 1))
	case 'm':
		e.dispatchSGR()
	case 'h':
		e.dispatchModeSet(true)
	case 'l':
		e.dispatchModeSet(false)
	case 'r':
		e.decstbm()
	case 's':
		if e.ps.priv == 0 {
			e.saveCursor()
		}
	case 'u':
		if e.ps.priv == 0 {
			e.restoreCursor()
		}
	case 'n':
		e.dsr()
	case 'c':
		e.da()
	case 'g':
		e.tbc(e.arg(0, 0))
	default:
		// unrecognized final byte: ignore
	}
}

// eraseDisplay implements ED: Ps 0 erases cursor-to-end, 1 erases
// start-to-cursor (inclusive), 2 (and 3, no scrollback here) erases the
// whole screen.
func (e *Emulator) eraseDisplay(ps int) {
	fill := Cell{Char: ' ', Attr: e.cursorAttr}
	rows, cols := e.screen.Rows(), e.screen.Cols()
	switch ps {
	case 0:
		e.screen.FillRow(e.cRow, e.cCol, cols-e.cCol, fill)
		if e.cRow+1 <= rows-1 {
			e.screen.clearRows(e.cRow+1, rows-1, fill)
		}
	case 1:
		e.screen.FillRow(e.cRow, 0, e.cCol+1, fill)
		if e.cRow-1 >= 0 {
			e.screen.clearRows(0, e.cRow-1, fill)
		}
	case 2, 3:
		e.screen.clearRows(0, rows-1, fill)
	}
}

// eraseLine implements EL: Ps 0 erases cursor-to-end-of-line, 1 erases
// start-of-line-to-cursor (inclusive), 2 erases the whole line.
func (e *Emulator) eraseLine(ps int) {
	fill := Cell{Char: ' ', Attr: e.cursorAttr}
	cols := e.screen.Cols()
	switch ps {
	case 0:
		e.screen.FillRow(e.cRow, e.cCol, cols-e.cCol, fill)
	case 1:
		e.screen.FillRow(e.cRow, 0, e.cCol+1, fill)
	case 2:
		e.screen.FillRow(e.cRow, 0, cols, fill)
	}
}

// insertLines/deleteLines implement IL/DL: scroll the sub-region from
// the cursor row to the bottom margin, only when the cursor is inside
// the scroll region.
func (e *Emulator) insertLines(n int) {
	if e.cRow < e.tScroll || e.cRow > e.bScroll {
		return
	}
	fill := Cell{Char: ' ', Attr: e.cursorAttr}
	e.screen.scrollUp(e.cRow, e.bScroll, n, fill)
}

func (e *Emulator) deleteLines(n int) {
	if e.cRow < e.tScroll || e.cRow > e.bScroll {
		return
	}
	fill := Cell{Char: ' ', Attr: e.cursorAttr}
	e.screen.scrollDown(e.cRow, e.bScroll, n, fill)
}

// deleteChars/insertChars implement DCH/ICH: shift the row content past
// the cursor left or right, filling the vacated cells.
func (e *Emulator) deleteChars(n int) {
	row := e.screen.Row(e.cRow)
	cols := e.screen.Cols()
	if e.cCol >= cols {
		return
	}
	if n > cols-e.cCol {
		n = cols - e.cCol
	}
	copy(row.Cells[e.cCol:cols-n], row.Cells[e.cCol+n:cols])
	fill := Cell{Char: ' ', Attr: e.cursorAttr}
	for i := cols - n; i < cols; i++ {
		row.Cells[i] = fill
	}
	row.Dirty = true
}

func (e *Emulator) insertChars(n int) {
	row := e.screen.Row(e.cRow)
	cols := e.screen.Cols()
	if e.cCol >= cols {
		return
	}
	if n > cols-e.cCol {
		n = cols - e.cCol
	}
	copy(row.Cells[e.cCol+n:cols], row.Cells[e.cCol:cols-n])
	fill := Cell{Char: ' ', Attr: e.cursorAttr}
	for i := e.cCol; i < e.cCol+n; i++ {
		row.Cells[i] = fill
	}
	row.Dirty = true
}

// eraseChars implements ECH: erase n cells at the cursor without
// shifting the rest of the row.
func (e *Emulator) eraseChars(n int) {
	cols := e.screen.Cols()
	if n > cols-e.cCol {
		n = cols - e.cCol
	}
	if n <= 0 {
		return
	}
	fill := Cell{Char: ' ', Attr: e.cursorAttr}
	e.screen.FillRow(e.cRow, e.cCol, n, fill)
}

// scrollUpOp/scrollDownOp implement SU/SD: scroll the whole margin
// region without moving the cursor.
func (e *Emulator) scrollUpOp(n int) {
	fill := Cell{Char: ' ', Attr: e.cursorAttr}
	e.screen.scrollDown(e.tScroll, e.bScroll, n, fill)
}

func (e *Emulator) scrollDownOp(n int) {
	fill := Cell{Char: ' ', Attr: e.cursorAttr}
	e.screen.scrollUp(e.tScroll, e.bScroll, n, fill)
}

// decstbm implements DECSTBM: set the scroll region, defaulting to the
// full screen, and home the cursor per DEC behavior. A degenerate
// region (top >= bottom) resets to the full screen.
func (e *Emulator) decstbm() {
	rows := e.screen.Rows()
	top := e.arg(0, 1) - 1
	bottom := e.arg(1, rows) - 1
	if top < 0 {
		top = 0
	}
	if bottom > rows-1 {
		bottom = rows - 1
	}
	if top >= bottom {
		top, bottom = 0, rows-1
	}
	e.tScroll, e.bScroll = top, bottom
	e.homeCursor()
}

// dsr implements DSR: Ps 5 is a plain status-ok reply, Ps 6 reports the
// cursor position (1-based, origin-mode aware).
func (e *Emulator) dsr() {
	switch e.arg(0, 0) {
	case 5:
		e.host.WriteBack([]byte("\x1b[0n"))
	case 6:
		row, col := e.cRow, e.cCol
		if e.modes.has(ModeDECOM) {
			row -= e.tScroll
		}
		e.host.WriteBack([]byte(fmt.Sprintf("\x1b[%d;%dR", row+1, col+1)))
	}
}

// da implements DA: reply with the fixed identification string, matching
// the "write-back" op spec §4.G expects the host to forward to the child.
func (e *Emulator) da() {
	if e.arg(0, 0) != 0 {
		return
	}
	e.host.WriteBack([]byte("\x1b[?1;2c"))
}

// tbc implements TBC: Ps 0 clears the tab stop at the cursor, Ps 3 or 5
// clears all tab stops on the line.
func (e *Emulator) tbc(ps int) {
	switch ps {
	case 0:
		e.tabs.clearAt(e.cCol)
	case 3, 5:
		e.tabs.clearAll()
	}
}

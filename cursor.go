package vtengine

// clearWrapnext clears the pending-wrap latch. Every op that moves the
// cursor explicitly clears it (spec §4.C); SGR and mode changes that
// don't move the cursor leave it untouched.
func (e *Emulator) clearWrapnext() {
	e.wrapnext = false
}

// outputChar is the character-output algorithm from spec §4.C. It is
// used as the emit callback for the UTF-8 decoder, so it receives one
// fully-decoded (or Latin-1 fallback) rune at a time.
func (e *Emulator) outputChar(ch rune) {
	cols := e.screen.Cols()

	if e.wrapnext {
		if e.modes.has(ModeDECAWM) {
			e.screen.Row(e.cRow).Wrapped = true
			e.termIndex(1)
			e.cCol = 0
		}
		e.wrapnext = false
	}

	if e.modes.has(ModeIRM) {
		row := e.screen.Row(e.cRow)
		if e.cCol < cols-1 {
			copy(row.Cells[e.cCol+1:cols], row.Cells[e.cCol:cols-1])
			row.Dirty = true
		}
	}

	row := e.screen.Row(e.cRow)
	row.Cells[e.cCol] = Cell{Char: ch, Attr: e.cursorAttr}
	row.Dirty = true
	e.cCol++

	if e.cCol == cols {
		e.cCol = cols - 1
		e.wrapnext = true
	}
}

// termIndex implements spec §4.B's vertical scroll-region index
// primitive, used by IND/RI/NEL and CNL/CPL. A positive count moves the
// cursor down, scrolling the scroll region up when it would cross
// bScroll; negative is the symmetric upward case. Cursor positions
// outside the scroll region clamp against the full screen instead of
// triggering a scroll.
func (e *Emulator) termIndex(count int) {
	if count == 0 {
		return
	}
	fill := Cell{Char: ' ', Attr: e.cursorAttr}
	maxRow := e.screen.Rows() - 1

	if count > 0 {
		target := e.cRow + count
		if e.cRow <= e.bScroll && target > e.bScroll {
			e.screen.scrollDown(e.tScroll, e.bScroll, target-e.bScroll, fill)
			e.cRow = e.bScroll
			return
		}
		if target > maxRow {
			target = maxRow
		}
		e.cRow = target
		return
	}

	n := -count
	target := e.cRow - n
	if e.cRow >= e.tScroll && target < e.tScroll {
		e.screen.scrollUp(e.tScroll, e.bScroll, e.tScroll-target, fill)
		e.cRow = e.tScroll
		return
	}
	if target < 0 {
		target = 0
	}
	e.cRow = target
}

// cuu/cud/cub/cuf implement CUU/CUD/CUB/CUF (spec §4.F): vertical motion
// clamps to the scroll region when the cursor started inside it,
// otherwise to the full screen; horizontal motion clamps to the row.
//
// spec §9 flags the source's do_CUU/do_CUD as likely using wCols-1 as
// the row bound by mistake; this implementation uses wRows-1, the
// xterm-correct bound (see DESIGN.md).
func (e *Emulator) cuu(n int) {
	lo, hi := e.verticalBounds()
	target := e.cRow - n
	if target < lo {
		target = lo
	}
	if target > hi {
		target = hi
	}
	e.cRow = target
}

func (e *Emulator) cud(n int) {
	lo, hi := e.verticalBounds()
	target := e.cRow + n
	if target < lo {
		target = lo
	}
	if target > hi {
		target = hi
	}
	e.cRow = target
}

func (e *Emulator) verticalBounds() (lo, hi int) {
	if e.cRow >= e.tScroll && e.cRow <= e.bScroll {
		return e.tScroll, e.bScroll
	}
	return 0, e.screen.Rows() - 1
}

func (e *Emulator) cub(n int) {
	target := e.cCol - n
	if target < 0 {
		target = 0
	}
	e.cCol = target
}

func (e *Emulator) cuf(n int) {
	target := e.cCol + n
	if target > e.screen.Cols()-1 {
		target = e.screen.Cols() - 1
	}
	e.cCol = target
}

// cnl/cpl implement CNL/CPL: termIndex by ±n, then home the column.
func (e *Emulator) cnl(n int) {
	e.termIndex(n)
	e.cCol = 0
}

func (e *Emulator) cpl(n int) {
	e.termIndex(-n)
	e.cCol = 0
}

// setCursorPosition implements CUP/HVP: sets both axes from 0-based
// coordinates, honoring origin mode's rebase-and-restrict to the scroll
// region (spec §4.C/§4.F).
func (e *Emulator) setCursorPosition(row, col int) {
	if e.modes.has(ModeDECOM) {
		row += e.tScroll
		if row < e.tScroll {
			row = e.tScroll
		}
		if row > e.bScroll {
			row = e.bScroll
		}
	} else {
		if row < 0 {
			row = 0
		}
		if row > e.screen.Rows()-1 {
			row = e.screen.Rows() - 1
		}
	}
	if col < 0 {
		col = 0
	}
	if col > e.screen.Cols()-1 {
		col = e.screen.Cols() - 1
	}
	e.cRow, e.cCol = row, col
}

// cha implements CHA: absolute column, 1-based input already converted
// to 0-based by the caller.
func (e *Emulator) cha(col int) {
	if col < 0 {
		col = 0
	}
	if col > e.screen.Cols()-1 {
		col = e.screen.Cols() - 1
	}
	e.cCol = col
}

// vpa implements VPA: absolute row, 1-based input already converted to
// 0-based, with origin-mode rebase (spec §4.F).
func (e *Emulator) vpa(row int) {
	if e.modes.has(ModeDECOM) {
		row += e.tScroll
		if row < e.tScroll {
			row = e.tScroll
		}
		if row > e.bScroll {
			row = e.bScroll
		}
	} else {
		if row < 0 {
			row = 0
		}
		if row > e.screen.Rows()-1 {
			row = e.screen.Rows() - 1
		}
	}
	e.cRow = row
}

// saveCursor/restoreCursor implement DECSC/DECRC (also SCP/RCP):
// save/restore cRow, cCol, cursorAttr. restoreCursor clamps to the
// current dimensions (spec §4.F), so a resize between save and restore
// can't leave the cursor out of bounds.
func (e *Emulator) saveCursor() {
	e.saveRow, e.saveCol, e.saveAttr = e.cRow, e.cCol, e.cursorAttr
}

func (e *Emulator) restoreCursor() {
	row, col := e.saveRow, e.saveCol
	if row > e.screen.Rows()-1 {
		row = e.screen.Rows() - 1
	}
	if col > e.screen.Cols()-1 {
		col = e.screen.Cols() - 1
	}
	e.cRow, e.cCol, e.cursorAttr = row, col, e.saveAttr
	e.wrapnext = false
}

// homeCursor places the cursor at the scroll-region-aware origin and
// clears wrapnext, used by DECSTBM and by setting/resetting DECOM.
func (e *Emulator) homeCursor() {
	e.clearWrapnext()
	e.setCursorPosition(0, 0)
}

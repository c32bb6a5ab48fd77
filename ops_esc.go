package vtengine

// dispatchEscape executes a two-character (or bare) escape sequence,
// keyed by its accumulated intermediate byte and final byte, per spec
// §4.F's ESC table.
func (e *Emulator) dispatchEscape(intermed uint32, final byte) {
	switch {
	case intermed == 0 && final == '7': // DECSC
		e.saveCursor()
	case intermed == 0 && final == '8': // DECRC
		e.restoreCursor()
	case intermed == 0 && final == 'D': // IND
		e.clearWrapnext()
		e.termIndex(1)
	case intermed == 0 && final == 'E': // NEL
		e.clearWrapnext()
		e.termIndex(1)
		e.cCol = 0
	case intermed == 0 && final == 'H': // HTS
		e.tabs.setAt(e.cCol)
	case intermed == 0 && final == 'M': // RI
		e.clearWrapnext()
		e.termIndex(-1)
	case intermed == 0 && final == 'c': // RIS
		e.reset()
	case intermed == uint32('#') && final == '8': // DECALN
		e.decaln()
	default:
		// unrecognized escape sequence: ignore
	}
}

// decaln implements DECALN (ESC # 8): fill the screen with 'E' at the
// default attribute, used by terminals to test alignment.
func (e *Emulator) decaln() {
	fill := Cell{Char: 'E'}
	for i := 0; i < e.screen.Rows(); i++ {
		e.screen.FillRow(i, 0, e.screen.Cols(), fill)
	}
	e.clearWrapnext()
}

// reset implements RIS (ESC c): reinitialize to the power-on state at
// the current geometry, per spec §4.F.
func (e *Emulator) reset() {
	rows, cols := e.screen.Rows(), e.screen.Cols()
	e.screen = newScreen(rows, cols)
	e.tScroll, e.bScroll = 0, rows-1
	e.cRow, e.cCol = 0, 0
	e.cursorAttr = Attr{}
	e.wrapnext = false
	e.saveRow, e.saveCol, e.saveAttr = 0, 0, Attr{}
	e.modes = ModeDECAWM | ModeDECTCEM
	e.tabs = newTabStops(cols)
	e.ps = parserState{}
}

package vtengine

import "testing"

func TestMalformedCSIEntersIgnoreState(t *testing.T) {
	e := newTestEmulator()
	// An intermediate byte followed by a digit is malformed; the whole
	// sequence (through its final byte) should be swallowed, and ground
	// processing should resume cleanly afterward.
	e.Run([]byte("\x1b[1 2mA"))

	row, col := e.CursorPosition()
	if row != 0 || col != 1 {
		t.Fatalf("expected ground processing to resume, got cursor (%d,%d)", row, col)
	}
	if got := e.Screen().Row(0).Cells[0].Char; got != 'A' {
		t.Errorf("got %q, want 'A'", got)
	}
}

func TestPrivateMarkerOnlyLegalFirst(t *testing.T) {
	e := newTestEmulator()
	// "1?h" is not a legal position for '?' — the sequence should be
	// ignored rather than crash or corrupt state.
	e.Run([]byte("\x1b[1?hA"))

	if got := e.Screen().Row(0).Cells[0].Char; got != 'A' {
		t.Errorf("got %q, want 'A' (sequence ignored, ground resumed)", got)
	}
}

func TestMouseModesAreMutuallyExclusive(t *testing.T) {
	e := newTestEmulator()
	e.Run([]byte("\x1b[?1000h\x1b[?1002h"))

	if e.ModeSet(ModeMouse1000) {
		t.Error("expected mode 1000 cleared when mode 1002 was set")
	}
	if !e.ModeSet(ModeMouse1002) {
		t.Error("expected mode 1002 set")
	}
}

func TestC1ControlEquivalents(t *testing.T) {
	viaESC := newTestEmulator()
	viaESC.Run([]byte("\x1bD"))

	viaC1 := newTestEmulator()
	viaC1.Run([]byte{0x84})

	rowESC, colESC := viaESC.CursorPosition()
	rowC1, colC1 := viaC1.CursorPosition()
	if rowESC != rowC1 || colESC != colC1 {
		t.Errorf("ESC D gave (%d,%d), C1 IND gave (%d,%d)", rowESC, colESC, rowC1, colC1)
	}
}

func TestHorizontalTabAdvancesToNextStop(t *testing.T) {
	e := newTestEmulator()
	e.Run([]byte("\t"))
	if _, col := e.CursorPosition(); col != 8 {
		t.Errorf("got col %d, want 8", col)
	}

	e.Run([]byte("\t"))
	if _, col := e.CursorPosition(); col != 16 {
		t.Errorf("got col %d, want 16", col)
	}
}

func TestTabClearAndSet(t *testing.T) {
	e := newTestEmulator()
	e.Run([]byte("\x1b[3g")) // TBC: clear all
	e.Run([]byte("\t"))
	if _, col := e.CursorPosition(); col != 79 {
		t.Errorf("expected no tab stops left, landed at last column; got %d", col)
	}

	e.Run([]byte("\x1b[1;11H\x1bH\r\t")) // HTS at column 10, then tab from 0
	if _, col := e.CursorPosition(); col != 10 {
		t.Errorf("expected the newly set tab stop at column 10, got %d", col)
	}
}

func TestBackspaceAndCarriageReturn(t *testing.T) {
	e := newTestEmulator()
	e.Run([]byte("abc\rX"))
	if got := e.Screen().Row(0).Cells[0].Char; got != 'X' {
		t.Errorf("CR should return to column 0, got %q at col 0", got)
	}

	e.Run([]byte("\b\b"))
	if _, col := e.CursorPosition(); col != 0 {
		t.Errorf("backspace should clamp at column 0, got %d", col)
	}
}

func TestEraseLineFromCursor(t *testing.T) {
	e := newTestEmulator()
	e.Run([]byte("\x1b[2J")) // clear entire screen first
	e.Run([]byte("AAAA"))
	e.Run([]byte("\x1b[1;3H")) // move to (0,2)
	e.Run([]byte("\x1b[0K"))   // erase to end of line

	row := e.Screen().Row(0)
	if row.Cells[0].Char != 'A' || row.Cells[1].Char != 'A' {
		t.Error("expected first two cells untouched")
	}
	if row.Cells[2].Char != ' ' || row.Cells[3].Char != ' ' {
		t.Error("expected cells from cursor onward erased")
	}
}

func TestInsertAndDeleteCharacters(t *testing.T) {
	e := newTestEmulator()
	e.Run([]byte("ABCDE\x1b[1;2H\x1b[2P")) // delete 2 chars at column 1 (0-based)

	row := e.Screen().Row(0)
	if row.Cells[0].Char != 'A' || row.Cells[1].Char != 'D' || row.Cells[2].Char != 'E' {
		t.Errorf("after DCH: got %c%c%c, want ADE", row.Cells[0].Char, row.Cells[1].Char, row.Cells[2].Char)
	}

	e.Run([]byte("\x1b[2@")) // insert 2 blanks at column 1
	if row.Cells[0].Char != 'A' || row.Cells[1].Char != ' ' || row.Cells[2].Char != ' ' ||
		row.Cells[3].Char != 'D' || row.Cells[4].Char != 'E' {
		t.Errorf("after ICH: got %c%c%c%c%c, want A  DE", row.Cells[0].Char, row.Cells[1].Char,
			row.Cells[2].Char, row.Cells[3].Char, row.Cells[4].Char)
	}
}

func TestInsertLinesWithinScrollRegion(t *testing.T) {
	e := newTestEmulator()
	for i := 0; i < 5; i++ {
		e.Run([]byte{byte('0' + i)})
		e.Run([]byte("\r\n"))
	}
	e.Run([]byte("\x1b[3;1H\x1b[L")) // insert 1 line at row index 2

	if got := e.Screen().Row(2).Cells[0].Char; got != ' ' {
		t.Errorf("expected inserted blank line, got %q", got)
	}
	if got := e.Screen().Row(3).Cells[0].Char; got != '2' {
		t.Errorf("expected old row 2 pushed down to row 3, got %q", got)
	}
}

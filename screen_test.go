package vtengine

import "testing"

func fillRowsWithDigits(s *Screen) {
	for i := 0; i < s.Rows(); i++ {
		s.FillRow(i, 0, 1, Cell{Char: rune('0' + i)})
	}
}

func TestScreenScrollDownMovesContentUp(t *testing.T) {
	s := newScreen(5, 10)
	fillRowsWithDigits(s)

	s.scrollDown(0, 4, 1, EmptyCell())

	if s.Row(0).Cells[0].Char != '1' {
		t.Errorf("row 0: expected '1', got %q", s.Row(0).Cells[0].Char)
	}
	if s.Row(3).Cells[0].Char != '4' {
		t.Errorf("row 3: expected '4', got %q", s.Row(3).Cells[0].Char)
	}
	if s.Row(4).Cells[0].Char != ' ' {
		t.Errorf("row 4: expected cleared, got %q", s.Row(4).Cells[0].Char)
	}
}

func TestScreenScrollUpMovesContentDown(t *testing.T) {
	s := newScreen(5, 10)
	fillRowsWithDigits(s)

	s.scrollUp(0, 4, 2, EmptyCell())

	if s.Row(2).Cells[0].Char != '0' {
		t.Errorf("row 2: expected '0', got %q", s.Row(2).Cells[0].Char)
	}
	if s.Row(4).Cells[0].Char != '2' {
		t.Errorf("row 4: expected '2', got %q", s.Row(4).Cells[0].Char)
	}
	if s.Row(0).Cells[0].Char != ' ' || s.Row(1).Cells[0].Char != ' ' {
		t.Error("expected top two rows cleared")
	}
}

func TestScreenScrollWithinSubRegion(t *testing.T) {
	s := newScreen(6, 10)
	fillRowsWithDigits(s)

	s.scrollDown(1, 4, 1, EmptyCell())

	if s.Row(0).Cells[0].Char != '0' {
		t.Error("row 0 is outside the region and must be untouched")
	}
	if s.Row(1).Cells[0].Char != '2' {
		t.Errorf("row 1: expected '2', got %q", s.Row(1).Cells[0].Char)
	}
	if s.Row(5).Cells[0].Char != '5' {
		t.Error("row 5 is outside the region and must be untouched")
	}
}

func TestScreenScrollPreservesRowIdentity(t *testing.T) {
	s := newScreen(4, 10)
	original := make([]*Row, len(s.rows))
	copy(original, s.rows)

	s.scrollDown(0, 3, 1, EmptyCell())

	seen := make(map[*Row]bool)
	for _, r := range s.rows {
		seen[r] = true
	}
	for _, r := range original {
		if !seen[r] {
			t.Fatal("scroll must permute existing row pointers, not allocate new rows")
		}
	}
}

func TestScreenScrollFullRegionOverflow(t *testing.T) {
	s := newScreen(3, 10)
	fillRowsWithDigits(s)

	s.scrollDown(0, 2, 10, EmptyCell())

	for i := 0; i < 3; i++ {
		if s.Row(i).Cells[0].Char != ' ' {
			t.Errorf("row %d: expected cleared after overflow scroll, got %q", i, s.Row(i).Cells[0].Char)
		}
	}
}

func TestScreenResizePreservesOverlap(t *testing.T) {
	s := newScreen(3, 5)
	s.FillRow(0, 0, 5, Cell{Char: 'A'})
	s.FillRow(1, 0, 5, Cell{Char: 'B'})

	s.resize(2, 3, EmptyCell())

	if s.Rows() != 2 || s.Cols() != 3 {
		t.Fatalf("expected 2x3, got %dx%d", s.Rows(), s.Cols())
	}
	for i := 0; i < 3; i++ {
		if s.Row(0).Cells[i].Char != 'A' {
			t.Errorf("row 0 col %d: expected 'A', got %q", i, s.Row(0).Cells[i].Char)
		}
	}
}

func TestScreenResizeGrowPadsWithFill(t *testing.T) {
	s := newScreen(2, 2)
	fill := Cell{Char: '.'}
	s.resize(2, 4, fill)

	if s.Row(0).Cells[2].Char != '.' || s.Row(0).Cells[3].Char != '.' {
		t.Error("expected new columns padded with fill")
	}
}

package vtengine

// Screen is the row-pointer grid described in spec §3/§4.B: an ordered
// sequence of row handles that is rotated by pointer shuffling during
// scrolling. Individual row storage is never copied on the scrolling
// fast path — only cleared rows have their cell contents overwritten.
type Screen struct {
	rows  []*Row
	wRows int
	wCols int
}

// newScreen allocates wRows*wCols cells in one block (conceptually — Go
// gives us per-row slices, but all rows are created together at
// construction and only reallocated on Resize, matching spec §3's
// "allocated en bloc at init" lifecycle) and returns the row handles as
// an initial identity permutation.
func newScreen(wRows, wCols int) *Screen {
	s := &Screen{
		rows:  make([]*Row, wRows),
		wRows: wRows,
		wCols: wCols,
	}
	for i := range s.rows {
		s.rows[i] = newRow(wCols)
	}
	return s
}

// Row returns the row handle at the given physical row index.
func (s *Screen) Row(i int) *Row {
	return s.rows[i]
}

// Rows returns the number of rows.
func (s *Screen) Rows() int { return s.wRows }

// Cols returns the number of columns.
func (s *Screen) Cols() int { return s.wCols }

// FillRow overwrites [start, start+count) of the given row with c.
func (s *Screen) FillRow(row, start, count int, c Cell) {
	s.rows[row].Fill(start, count, c)
}

// clearRows resets rows [top, bottom] (inclusive) to blank cells painted
// with fill, without touching the row-handle permutation.
func (s *Screen) clearRows(top, bottom int, fill Cell) {
	for i := top; i <= bottom; i++ {
		s.rows[i].reset(s.wCols, fill)
	}
}

// scrollDown moves the rows [top+n, bottom] up to [top, bottom-n] and
// clears the new bottom n rows, per spec §4.B. Row storage is rotated,
// not copied, on the fast path (n < the region size); otherwise the whole
// region is cleared in place.
func (s *Screen) scrollDown(top, bottom, n int, fill Cell) {
	if n <= 0 || top > bottom {
		return
	}
	regionLen := bottom - top + 1
	if n >= regionLen {
		s.clearRows(top, bottom, fill)
		return
	}

	region := s.rows[top : bottom+1]
	rotateLeft(region, n)
	s.clearRows(bottom-n+1, bottom, fill)
}

// scrollUp is the symmetric downward rotation: moves [top, bottom-n]
// down to [top+n, bottom] and clears the new top n rows.
func (s *Screen) scrollUp(top, bottom, n int, fill Cell) {
	if n <= 0 || top > bottom {
		return
	}
	regionLen := bottom - top + 1
	if n >= regionLen {
		s.clearRows(top, bottom, fill)
		return
	}

	region := s.rows[top : bottom+1]
	rotateRight(region, n)
	s.clearRows(top, top+n-1, fill)
}

// rotateLeft rotates the slice left by n in place: [a b c d e] by 2 ->
// [c d e a b]. Only pointers move, never the pointed-to Row storage.
func rotateLeft(rows []*Row, n int) {
	n %= len(rows)
	if n == 0 {
		return
	}
	reverseRows(rows[:n])
	reverseRows(rows[n:])
	reverseRows(rows)
}

// rotateRight rotates the slice right by n in place.
func rotateRight(rows []*Row, n int) {
	n %= len(rows)
	if n == 0 {
		return
	}
	rotateLeft(rows, len(rows)-n)
}

func reverseRows(rows []*Row) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}

// resize reallocates row storage to the new dimensions, preserving the
// overlapping top-left region of content (spec §9: handleResize must
// preserve content within the overlap, truncate or extend rows). Column
// growth pads with fill; column shrink truncates.
func (s *Screen) resize(newRows, newCols int, fill Cell) {
	old := s.rows
	oldRows, oldCols := s.wRows, s.wCols

	next := make([]*Row, newRows)
	for i := 0; i < newRows; i++ {
		r := newRow(newCols)
		for j := range r.Cells {
			r.Cells[j] = fill
		}
		if i < oldRows {
			n := oldCols
			if newCols < n {
				n = newCols
			}
			copy(r.Cells[:n], old[i].Cells[:n])
			r.Wrapped = old[i].Wrapped && n == newCols
		}
		r.Dirty = true
		next[i] = r
	}

	s.rows = next
	s.wRows = newRows
	s.wCols = newCols
}

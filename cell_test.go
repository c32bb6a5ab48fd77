package vtengine

import "testing"

func TestEmptyCell(t *testing.T) {
	c := EmptyCell()
	if c.Char != ' ' {
		t.Errorf("expected space, got %q", c.Char)
	}
	if c.Attr != (Attr{}) {
		t.Errorf("expected zero attribute, got %+v", c.Attr)
	}
}

func TestPackUnpackCellRoundTrip(t *testing.T) {
	c := Cell{
		Char: 'X',
		Attr: Attr{
			FG:            standardColor(3),
			BG:            standardColor(21),
			Bold:          true,
			Underline:     true,
			Strikethrough: true,
		},
	}

	got := UnpackCell(c.PackedCell())
	if got != c {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, c)
	}
}

func TestPackUnpackTrueColorLossy(t *testing.T) {
	c := Cell{Char: 'X', Attr: Attr{FG: trueColor(10, 20, 30)}}
	got := UnpackCell(c.PackedCell())

	if !got.Attr.FG.TrueColor {
		t.Error("expected TrueColor flag to survive packing")
	}
	if got.Attr.FG.Value != (RGBA{}) {
		t.Errorf("packed form should not carry the RGB value, got %+v", got.Attr.FG.Value)
	}
}

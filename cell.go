package vtengine

// Attr holds the per-cell visual attributes: the foreground/background
// color references and the boolean style bits. It is the struct
// equivalent of the attribute word described in spec §3 — callers see
// named fields, not a bit layout.
type Attr struct {
	FG ColorRef
	BG ColorRef

	Bold          bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Strikethrough bool
}

// Cell is a single attributed character cell.
type Cell struct {
	Char rune
	Attr Attr
}

// EmptyCell returns the sentinel EMPTY_FIELD cell: a space glyph with the
// zero attribute word.
func EmptyCell() Cell {
	return Cell{Char: ' '}
}

// PackedCell returns the 64-bit packed form described in spec §3: the
// low 32 bits are the rune, the high 32 bits are the attribute word. It
// is a serialized form only; the grid itself (including Row.Fill) stores
// and copies Cell structs. A true-color RGB value does not
// fit in the 32-bit attribute word: PackedCell records that the color is
// true-color but not its RGB value, so round-tripping a true-color cell
// through Pack/Unpack loses the exact color.
func (c Cell) PackedCell() uint64 {
	return uint64(uint32(c.Char)) | uint64(c.Attr.pack())<<32
}

// UnpackCell reconstructs a Cell from its packed form.
func UnpackCell(word uint64) Cell {
	return Cell{
		Char: rune(uint32(word)),
		Attr: unpackAttr(uint32(word >> 32)),
	}
}

const (
	attrBitCustomFG    = 1 << 16
	attrBitCustomBG    = 1 << 17
	attrBitBold        = 1 << 18
	attrBitItalic      = 1 << 19
	attrBitUnderline   = 1 << 20
	attrBitBlink       = 1 << 21
	attrBitReverse     = 1 << 22
	attrBitStrike      = 1 << 23
	attrBitTrueColorFG = 1 << 24
	attrBitTrueColorBG = 1 << 25
)

func (a Attr) pack() uint32 {
	var w uint32
	w |= uint32(a.FG.Index)
	w |= uint32(a.BG.Index) << 8
	if a.FG.Custom {
		w |= attrBitCustomFG
	}
	if a.BG.Custom {
		w |= attrBitCustomBG
	}
	if a.FG.TrueColor {
		w |= attrBitTrueColorFG
	}
	if a.BG.TrueColor {
		w |= attrBitTrueColorBG
	}
	if a.Bold {
		w |= attrBitBold
	}
	if a.Italic {
		w |= attrBitItalic
	}
	if a.Underline {
		w |= attrBitUnderline
	}
	if a.Blink {
		w |= attrBitBlink
	}
	if a.Reverse {
		w |= attrBitReverse
	}
	if a.Strikethrough {
		w |= attrBitStrike
	}
	return w
}

func unpackAttr(w uint32) Attr {
	return Attr{
		FG: ColorRef{
			Index:     uint8(w),
			Custom:    w&attrBitCustomFG != 0,
			TrueColor: w&attrBitTrueColorFG != 0,
		},
		BG: ColorRef{
			Index:     uint8(w >> 8),
			Custom:    w&attrBitCustomBG != 0,
			TrueColor: w&attrBitTrueColorBG != 0,
		},
		Bold:          w&attrBitBold != 0,
		Italic:        w&attrBitItalic != 0,
		Underline:     w&attrBitUnderline != 0,
		Blink:         w&attrBitBlink != 0,
		Reverse:       w&attrBitReverse != 0,
		Strikethrough: w&attrBitStrike != 0,
	}
}

package vtengine

// dispatchSGR applies an SGR (Select Graphic Rendition) parameter list
// to e.cursorAttr, per spec §4.F. "CSI m" with no parameters at all is
// ECMA-48's shorthand for "CSI 0 m" (handled by rawParams). The extended
// 38/48 color forms accept both the semicolon-chain and colon-subparam
// encodings, since the CSI router (parser.go) flattens both separators
// into the same parameter list.
func (e *Emulator) dispatchSGR() {
	params := e.rawParams()
	i := 0
	for i < len(params) {
		p := params[i]
		switch {
		case p == 0:
			e.cursorAttr = Attr{}
		case p == 1:
			e.cursorAttr.Bold = true
		case p == 3:
			e.cursorAttr.Italic = true
		case p == 4:
			e.cursorAttr.Underline = true
		case p == 5, p == 6:
			e.cursorAttr.Blink = true
		case p == 7:
			e.cursorAttr.Reverse = true
		case p == 9:
			e.cursorAttr.Strikethrough = true
		case p == 22:
			e.cursorAttr.Bold = false
		case p == 23:
			e.cursorAttr.Italic = false
		case p == 24:
			e.cursorAttr.Underline = false
		case p == 25:
			e.cursorAttr.Blink = false
		case p == 27:
			e.cursorAttr.Reverse = false
		case p == 29:
			e.cursorAttr.Strikethrough = false
		case p >= 30 && p <= 37:
			e.cursorAttr.FG = standardColor(p - 30)
		case p == 38:
			color, consumed := parseExtendedColor(params[i+1:])
			e.cursorAttr.FG = color
			i += consumed
		case p == 39:
			e.cursorAttr.FG = ColorRef{}
		case p >= 40 && p <= 47:
			e.cursorAttr.BG = standardColor(p - 40)
		case p == 48:
			color, consumed := parseExtendedColor(params[i+1:])
			e.cursorAttr.BG = color
			i += consumed
		case p == 49:
			e.cursorAttr.BG = ColorRef{}
		case p >= 90 && p <= 97:
			e.cursorAttr.FG = standardColor(8 + p - 90)
		case p >= 100 && p <= 107:
			e.cursorAttr.BG = standardColor(8 + p - 100)
		}
		i++
	}
}

// parseExtendedColor parses the sub-parameters following a 38 or 48
// selector: "5;n" for an indexed color, "2;r;g;b" for a direct color.
// It returns the resolved color and how many extra elements (beyond the
// 38/48 itself) were consumed, so the caller can skip over them.
func parseExtendedColor(rest []int) (ColorRef, int) {
	if len(rest) == 0 {
		return ColorRef{}, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) >= 2 {
			return standardColor(rest[1]), 2
		}
		return ColorRef{}, 1
	case 2:
		if len(rest) >= 4 {
			return trueColor(rest[1], rest[2], rest[3]), 4
		}
		return ColorRef{}, 1
	default:
		return ColorRef{}, 1
	}
}

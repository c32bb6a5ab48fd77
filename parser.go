package vtengine

// processByte is the single byte-routing entry point described in spec
// §4.E. OSC's own terminator detection takes priority over everything
// else (so BEL inside an OSC string terminates the string rather than
// ringing the bell); C0 controls are otherwise intercepted globally
// across every other state; a narrow set of C1 controls (0x80-0x9F) are
// recognized as their ESC equivalents, but only in ground state with no
// UTF-8 sequence in progress (mid-sequence, 0x80-0x9F are continuation
// bytes), per spec §6's external-interface list.
func (e *Emulator) processByte(b byte) {
	if e.ps.mode == modeOSC {
		e.handleOSC(b)
		return
	}

	if b < 0x20 {
		e.handleControl(b)
		return
	}

	if b == 0x7F { // DEL, no-op
		return
	}

	if e.ps.mode == modeGround && !e.ps.utf8.pending() && b >= 0x80 && b <= 0x9F {
		switch b {
		case 0x84: // IND
			e.clearWrapnext()
			e.termIndex(1)
			return
		case 0x85: // NEL
			e.clearWrapnext()
			e.termIndex(1)
			e.cCol = 0
			return
		case 0x88: // HTS
			e.tabs.setAt(e.cCol)
			return
		case 0x8D: // RI
			e.clearWrapnext()
			e.termIndex(-1)
			return
		case 0x9B: // CSI
			e.enterCSI()
			return
		case 0x9D: // OSC
			e.enterOSC()
			return
		}
		// Unrecognized C1 byte: fall through and let the UTF-8 decoder
		// treat it as an invalid lead byte (Latin-1 fallback).
	}

	switch e.ps.mode {
	case modeGround:
		e.ps.utf8.feed(b, e.outputChar)
	case modeEscape:
		e.handleEscape(b)
	default: // modeCSI, modeCSIInt, modeCSIParam, modeCSIIgnore
		e.handleCSI(b)
	}
}

// handleControl executes the C0 control codes, per spec §4.F's bullet
// list. Controls not named there (CAN, SUB, and the rest) are no-ops;
// notably this means they do not abort an escape/CSI sequence already
// in progress, since they're dispatched without touching e.ps.mode.
func (e *Emulator) handleControl(b byte) {
	switch b {
	case 0x07: // BEL
		e.host.Bell()
	case 0x08: // BS
		e.clearWrapnext()
		e.cub(1)
	case 0x09: // HT
		e.clearWrapnext()
		e.cCol = e.tabs.next(e.cCol)
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		e.clearWrapnext()
		e.termIndex(1)
		if e.modes.has(ModeLNM) {
			e.cCol = 0
		}
	case 0x0D: // CR
		e.clearWrapnext()
		e.cCol = 0
	case 0x1B: // ESC
		e.ps.mode = modeEscape
		e.ps.intermed = 0
		e.ps.priv = 0
		e.ps.paramPtr = 0
		e.ps.paramVal = 0
	case 0x0E, 0x0F: // SO/SI, charset shift — out of scope
	default:
	}
}

// handleEscape consumes bytes following ESC. Bytes 0x20-0x2F accumulate
// as an intermediate; any other byte is the final selector and is
// dispatched by (intermed, final) per spec §4.F, then the parser
// returns to ground (or enters CSI/OSC for '[' / ']').
func (e *Emulator) handleEscape(b byte) {
	if b >= 0x20 && b <= 0x2F {
		e.ps.intermed = e.ps.intermed<<8 | uint32(b)
		return
	}

	intermed := e.ps.intermed
	e.ps.intermed = 0

	switch {
	case intermed == 0 && b == '[':
		e.enterCSI()
		return
	case intermed == 0 && b == ']':
		e.enterOSC()
		return
	default:
		e.dispatchEscape(intermed, b)
		e.ps.mode = modeGround
	}
}

// handleCSI drives the CSI parameter accumulator across modeCSI,
// modeCSIInt, modeCSIParam and modeCSIIgnore. Colon and semicolon are
// both treated as parameter separators — ops_sgr.go's extended
// 38/48-color handling accepts either form without the router needing
// to distinguish them.
func (e *Emulator) handleCSI(b byte) {
	if e.ps.mode == modeCSIIgnore {
		if b >= 0x40 && b <= 0x7E {
			e.ps.mode = modeGround
		}
		return
	}

	switch {
	case b >= '0' && b <= '9':
		if e.ps.mode == modeCSIInt {
			e.ps.mode = modeCSIIgnore
			return
		}
		e.ps.mode = modeCSIParam
		e.ps.paramVal = e.ps.paramVal*10 + int(b-'0')
		if e.ps.paramVal > 16383 {
			e.ps.paramVal = 16383
		}

	case b == ';' || b == ':':
		if e.ps.mode == modeCSIInt {
			e.ps.mode = modeCSIIgnore
			return
		}
		e.pushParam()
		e.ps.mode = modeCSIParam

	case b == '<' || b == '=' || b == '>' || b == '?':
		if e.ps.mode == modeCSI {
			e.ps.priv = b
			e.ps.mode = modeCSIParam
			return
		}
		e.ps.mode = modeCSIIgnore

	case b >= 0x20 && b <= 0x2F:
		e.ps.intermed = e.ps.intermed<<8 | uint32(b)
		e.ps.mode = modeCSIInt

	case b >= 0x40 && b <= 0x7E:
		e.pushParam()
		e.dispatchCSI(b)
		e.ps.mode = modeGround

	default:
		e.ps.mode = modeCSIIgnore
	}
}

// handleOSC accumulates the OSC payload, recognizing BEL, the two-byte
// ESC \ (ST), and the C1 ST (0x9C) as terminators. An ESC not followed
// by a backslash aborts the OSC silently and reprocesses that byte from
// ground, rather than treating it as part of the payload.
func (e *Emulator) handleOSC(b byte) {
	if e.ps.oscEscSeen {
		if b == '\\' {
			e.finishOSC()
			return
		}
		e.ps.oscEscSeen = false
		e.ps.mode = modeGround
		e.processByte(b)
		return
	}

	switch b {
	case 0x07:
		e.finishOSC()
	case 0x1B:
		e.ps.oscEscSeen = true
	case 0x9C:
		e.finishOSC()
	default:
		if len(e.ps.oscBuf) < maxOSCBuf {
			e.ps.oscBuf = append(e.ps.oscBuf, b)
		}
	}
}

func (e *Emulator) finishOSC() {
	e.dispatchOSC()
	e.ps.mode = modeGround
	e.ps.oscEscSeen = false
}

func (e *Emulator) enterCSI() {
	e.ps.mode = modeCSI
	e.ps.priv = 0
	e.ps.intermed = 0
	e.ps.paramPtr = 0
	e.ps.paramVal = 0
}

func (e *Emulator) enterOSC() {
	e.ps.mode = modeOSC
	e.ps.oscBuf = e.ps.oscBuf[:0]
	e.ps.oscEscSeen = false
}

func (e *Emulator) pushParam() {
	if e.ps.paramPtr < maxParams {
		e.ps.params[e.ps.paramPtr] = e.ps.paramVal
		e.ps.paramPtr++
	}
	e.ps.paramVal = 0
}

// arg implements the GETARG(i, default) accessor from spec §3: an unset
// parameter and an explicit zero are indistinguishable, and both fall
// back to default, matching ECMA-48.
func (e *Emulator) arg(i, def int) int {
	if i < e.ps.paramPtr && e.ps.params[i] != 0 {
		return e.ps.params[i]
	}
	return def
}

// rawParams returns the CSI parameter list as given, with the ECMA-48
// convention that a bare final byte (no digits at all) means a single
// implicit zero parameter — used by SGR, where 0 is meaningful.
func (e *Emulator) rawParams() []int {
	if e.ps.paramPtr == 0 {
		return []int{0}
	}
	return e.ps.params[:e.ps.paramPtr]
}

package vtengine

// dispatchModeSet implements SM/RM: every parameter in the sequence is
// applied independently, routed to the ANSI or DEC-private table by
// whether a private marker preceded the parameters (spec §6).
func (e *Emulator) dispatchModeSet(set bool) {
	for _, p := range e.ps.params[:e.ps.paramPtr] {
		if e.ps.priv == '?' {
			e.setPrivateMode(p, set)
		} else {
			e.setANSIMode(p, set)
		}
	}
}

func (e *Emulator) setANSIMode(p int, set bool) {
	switch p {
	case 4: // IRM
		e.applyMode(ModeIRM, set)
	case 20: // LNM
		e.applyMode(ModeLNM, set)
	}
}

func (e *Emulator) setPrivateMode(p int, set bool) {
	switch p {
	case 1: // DECCKM
		e.applyMode(ModeDECCKM, set)
	case 3: // DECCOLM, gated by mode 40
		if e.modes.has(ModeAllowDECCOLM) {
			e.applyMode(ModeDECCOLM, set)
			cols := 80
			if set {
				cols = 132
			}
			e.host.Resize(e.screen.Rows(), cols)
		}
	case 5: // DECSCNM
		e.applyMode(ModeDECSCNM, set)
	case 6: // DECOM
		e.applyMode(ModeDECOM, set)
		e.homeCursor()
	case 7: // DECAWM
		e.applyMode(ModeDECAWM, set)
	case 9: // X10 mouse
		e.applyMode(ModeX10Mouse, set)
	case 25: // DECTCEM
		e.applyMode(ModeDECTCEM, set)
	case 40: // allow DECCOLM
		e.applyMode(ModeAllowDECCOLM, set)
	case 45: // reverse wraparound
		e.applyMode(ModeReverseWrap, set)
	case 1000:
		e.applyMode(ModeMouse1000, set)
	case 1001:
		e.applyMode(ModeMouse1001, set)
	case 1002:
		e.applyMode(ModeMouse1002, set)
	case 1003:
		e.applyMode(ModeMouse1003, set)
	}
}

func (e *Emulator) applyMode(bit ModeFlags, set bool) {
	if set {
		e.modes.set(bit)
	} else {
		e.modes.reset(bit)
	}
}

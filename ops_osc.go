package vtengine

// dispatchOSC parses the accumulated OSC payload as "Ps;Pt" and executes
// the numeric op Ps, per spec §4.F. Only the title/icon-name ops (0, 1,
// 2) are implemented; other OSC codes (clipboard, hyperlinks, color
// queries) are outside spec scope and are silently ignored.
func (e *Emulator) dispatchOSC() {
	buf := e.ps.oscBuf
	semi := -1
	for i, b := range buf {
		if b == ';' {
			semi = i
			break
		}
	}
	if semi < 0 {
		return
	}

	op := 0
	for _, b := range buf[:semi] {
		if b < '0' || b > '9' {
			return
		}
		op = op*10 + int(b-'0')
	}

	switch op {
	case 0, 1, 2:
		payload := buf[semi+1:]
		title := make([]byte, len(payload))
		copy(title, payload)
		e.host.SetTitle(title)
	}
}

package vtengine

// Host is the small capability set the core invokes out to, per spec
// §4.G/§9 ("implement as a trait/interface parameter to the core, not a
// global registry"). A host implementation owns everything the core
// deliberately excludes: rendering, the pty, and the run loop.
type Host interface {
	// Bell is called on BEL (0x07).
	Bell()

	// WriteBack sends bytes back up to the pty — replies to DA, cursor
	// position reports, and similar write-back sequences.
	WriteBack(p []byte)

	// SetTitle is called on OSC 0/1/2 with the UTF-8 title/icon string.
	SetTitle(title []byte)

	// Resize requests a geometry change from the host. The host is
	// expected to call Emulator.Resize back with the accepted
	// dimensions (see spec §4.G).
	Resize(rows, cols int)
}

// NopHost is a Host that does nothing, useful for tests and for embedding
// to override only the callbacks a particular host cares about.
type NopHost struct{}

func (NopHost) Bell()                {}
func (NopHost) WriteBack(p []byte)   {}
func (NopHost) SetTitle(title []byte) {}
func (NopHost) Resize(rows, cols int) {}

package vtengine

// maxParams bounds the CSI parameter list (spec §3's params[0..MAX_PARAMS]).
// xterm itself caps at 16; this engine is slightly more permissive to
// tolerate chatty extended-SGR sequences without dropping the final op.
const maxParams = 32

// maxOSCBuf bounds the OSC string accumulator (spec §4.E: "bounded
// buffer — excess bytes are dropped").
const maxOSCBuf = 4096

// parserState is the escape-sequence/UTF-8 parsing state from spec §3:
// state, intermed, priv, params/paramPtr/paramVal, the OSC accumulator,
// and the UTF-8 decoder. It lives embedded in Emulator rather than as a
// separate exported type since Run is the single entry point into one
// cohesive per-session state machine (spec §5).
type parserState struct {
	mode byteMode

	intermed uint32
	priv     byte

	params   [maxParams]int
	paramPtr int
	paramVal int

	oscBuf     []byte
	oscEscSeen bool

	utf8 utf8Decoder
}

type byteMode int

const (
	modeGround byteMode = iota
	modeEscape
	modeCSI
	modeCSIInt
	modeCSIParam
	modeCSIIgnore
	modeOSC
)

// Emulator is the terminal session: screen, cursor, modes, saved cursor,
// parser state, and palette, per spec §3. It is owned exclusively by its
// session; Run must not be called concurrently or re-entrantly (spec §5).
type Emulator struct {
	screen *Screen

	tScroll, bScroll int

	cRow, cCol int
	cursorAttr Attr
	wrapnext   bool

	saveRow, saveCol int
	saveAttr         Attr

	modes ModeFlags

	tabs *tabStops

	ps parserState

	host Host

	palette [PaletteEntries]RGBA
}

// New creates an emulator with the given geometry, per spec §3's
// init(rows, cols) lifecycle. Rows are allocated en bloc and not
// reallocated until Resize.
func New(rows, cols int, host Host) *Emulator {
	if rows <= 0 || cols <= 0 {
		panic("vtengine: New requires positive rows and cols")
	}
	e := &Emulator{
		screen:  newScreen(rows, cols),
		tScroll: 0,
		bScroll: rows - 1,
		tabs:    newTabStops(cols),
		host:    host,
		palette: DefaultPalette,
		modes:   ModeDECAWM | ModeDECTCEM,
	}
	if host == nil {
		e.host = NopHost{}
	}
	return e
}

// Screen returns the emulator's screen buffer.
func (e *Emulator) Screen() *Screen { return e.screen }

// CursorPosition returns the current cursor row/col (0-based).
func (e *Emulator) CursorPosition() (row, col int) { return e.cRow, e.cCol }

// CursorAttr returns the attribute that will be applied to the next
// written character.
func (e *Emulator) CursorAttr() Attr { return e.cursorAttr }

// WrapPending reports the wrapnext latch (spec §3/§4.C).
func (e *Emulator) WrapPending() bool { return e.wrapnext }

// ScrollRegion returns the current top/bottom scroll margins
// (0-based, inclusive).
func (e *Emulator) ScrollRegion() (top, bottom int) { return e.tScroll, e.bScroll }

// ModeSet reports whether the given mode flag is currently set.
func (e *Emulator) ModeSet(m ModeFlags) bool { return e.modes.has(m) }

// Palette returns the emulator's live 258-entry color palette. Callers
// may read it directly for rendering; the core never mutates palette
// values at runtime (only compile-time defaults exist, per spec §9).
func (e *Emulator) Palette() *[PaletteEntries]RGBA { return &e.palette }

// Run feeds a chunk of the child process's byte stream through the
// parser. Chunked input — including UTF-8 sequences split across calls —
// is explicitly supported: parser and decoder state persist across
// calls (spec §5). A zero-length call flushes any pending partial UTF-8
// sequence at the write boundary (spec §4.D).
func (e *Emulator) Run(data []byte) {
	if len(data) == 0 {
		e.ps.utf8.flush(e.outputChar)
		return
	}
	for _, b := range data {
		e.processByte(b)
	}
}

// Resize reallocates row storage and tab stops to the new geometry,
// preserving content within the overlapping region, and clamps the
// cursor and scroll region to stay inside the new bounds (spec §9:
// handleResize must do exactly this). Calling Resize on a zero-value
// Emulator (never constructed via New) panics, per spec §7's allowance
// for resize-on-uninitialized to be the one panicking case.
func (e *Emulator) Resize(rows, cols int) {
	if e.screen == nil {
		panic("vtengine: Resize called on an uninitialized Emulator")
	}
	if rows <= 0 || cols <= 0 {
		panic("vtengine: Resize requires positive rows and cols")
	}

	fill := Cell{Char: ' ', Attr: e.cursorAttr}
	e.screen.resize(rows, cols, fill)
	e.tabs.resize(cols)

	if e.cRow >= rows {
		e.cRow = rows - 1
	}
	if e.cCol >= cols {
		e.cCol = cols - 1
		e.wrapnext = false
	}
	if e.saveRow >= rows {
		e.saveRow = rows - 1
	}
	if e.saveCol >= cols {
		e.saveCol = cols - 1
	}

	e.tScroll = 0
	e.bScroll = rows - 1
}

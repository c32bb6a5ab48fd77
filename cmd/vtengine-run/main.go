// Command vtengine-run is a small host harness: it spawns a shell behind
// a pty, feeds the pty's output through a vtengine.Emulator, and repaints
// the invoking terminal from the emulator's cell grid. It exists to drive
// the core end to end; it contains no terminal-emulation semantics of its
// own — that all lives in the vtengine package.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/vtengine/vtengine"
	"github.com/vtengine/vtengine/internal/hostconfig"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (shell/rows/cols/title)")
	flag.Parse()

	cfg := hostconfig.Load(*configPath)

	host := &ptyHost{}
	em := vtengine.New(cfg.Rows, cfg.Cols, host)

	cmd := exec.Command(cfg.Shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(cfg.Rows), Cols: uint16(cfg.Cols)})
	if err != nil {
		log.Fatalf("vtengine-run: failed to start %s: %v", cfg.Shell, err)
	}
	defer ptmx.Close()
	host.pty = ptmx

	fmt.Printf("\x1b]0;%s\x07", cfg.Title)

	stdinFD := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(stdinFD)
	if err != nil {
		log.Fatalf("vtengine-run: failed to enter raw mode: %v", err)
	}
	defer term.Restore(stdinFD, oldState)

	var mu sync.Mutex

	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, syscall.SIGWINCH)
	go func() {
		for range sigwinch {
			cols, rows, err := term.GetSize(stdinFD)
			if err != nil {
				continue
			}
			mu.Lock()
			em.Resize(rows, cols)
			mu.Unlock()
			pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
		}
	}()

	renderer := &screenRenderer{out: os.Stdout}

	go func() {
		io.Copy(ptmx, os.Stdin)
	}()

	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			mu.Lock()
			em.Run(buf[:n])
			renderer.draw(em)
			mu.Unlock()
		}
		if err != nil {
			break
		}
	}
}

// ptyHost implements vtengine.Host by writing replies and window-resize
// requests back to the child's pty.
type ptyHost struct {
	pty *os.File
}

func (h *ptyHost) Bell() {
	fmt.Fprint(os.Stdout, "\a")
}

func (h *ptyHost) WriteBack(p []byte) {
	if h.pty != nil {
		h.pty.Write(p)
	}
}

func (h *ptyHost) SetTitle(title []byte) {
	fmt.Printf("\x1b]0;%s\x07", title)
}

func (h *ptyHost) Resize(rows, cols int) {
	if h.pty != nil {
		pty.Setsize(h.pty, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	}
}

// screenRenderer does a full repaint of the emulator's grid on every
// update. It is deliberately simple — a real host would diff against
// Row.Dirty and only repaint changed rows — since rendering quality is
// outside this module's scope; this just needs to prove the engine out.
type screenRenderer struct {
	out io.Writer
}

func (r *screenRenderer) draw(em *vtengine.Emulator) {
	var b strings.Builder
	b.WriteString("\x1b[H")

	screen := em.Screen()
	for row := 0; row < screen.Rows(); row++ {
		if row > 0 {
			b.WriteString("\r\n")
		}
		cells := screen.Row(row).Cells
		for _, c := range cells {
			b.WriteRune(c.Char)
		}
	}

	cursorRow, cursorCol := em.CursorPosition()
	fmt.Fprint(r.out, b.String())
	fmt.Fprintf(r.out, "\x1b[%d;%dH", cursorRow+1, cursorCol+1)
}

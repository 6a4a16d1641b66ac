package listkit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Screen manages the terminal display with double buffering and
// diff-based updates.
type Screen struct {
	front  *Buffer   // What's currently displayed
	back   *Buffer   // What we're drawing to
	writer io.Writer // Output destination (usually os.Stdout)
	fd     int       // File descriptor for terminal operations

	width  int
	height int

	// Terminal state
	origState *term.State
	inRawMode bool

	// Resize handling
	resizeChan chan Size
	sigChan    chan os.Signal

	// Rendering state
	lastStyle Style        // Last style we emitted (for optimization)
	buf       bytes.Buffer // Reusable buffer for building output

	// Protects buffer access during resize
	mu sync.Mutex
}

// Size represents dimensions.
type Size struct {
	Width  int
	Height int
}

// NewScreen creates a new screen writing to the given writer.
// Pass nil to use os.Stdout.
func NewScreen(w io.Writer) (*Screen, error) {
	if w == nil {
		w = os.Stdout
	}

	fd := int(os.Stdout.Fd())
	width, height, err := getTerminalSize(fd)
	if err != nil {
		width, height = 80, 24
	}

	s := &Screen{
		front:      NewBuffer(width, height),
		back:       NewBuffer(width, height),
		writer:     w,
		fd:         fd,
		width:      width,
		height:     height,
		resizeChan: make(chan Size, 1),
		sigChan:    make(chan os.Signal, 1),
		lastStyle:  DefaultStyle(),
	}

	return s, nil
}

// getTerminalSize returns the current terminal dimensions.
func getTerminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Size returns the current screen dimensions.
func (s *Screen) Size() Size {
	return Size{Width: s.width, Height: s.height}
}

// Buffer returns the back buffer for drawing.
func (s *Screen) Buffer() *Buffer {
	return s.back
}

// ResizeChan returns a channel that receives size updates on terminal resize.
func (s *Screen) ResizeChan() <-chan Size {
	return s.resizeChan
}

// EnterRawMode puts the terminal into raw mode for TUI operation.
func (s *Screen) EnterRawMode() error {
	if s.inRawMode {
		return nil
	}

	state, err := term.MakeRaw(s.fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	s.origState = state
	s.inRawMode = true

	signal.Notify(s.sigChan, syscall.SIGWINCH)
	go s.handleSignals()

	// Enter alternate screen, clear, hide cursor
	s.writeString("\x1b[?1049h")
	s.writeString("\x1b[2J")
	s.writeString("\x1b[H")
	s.writeString("\x1b[?25l")

	return nil
}

// ExitRawMode restores the terminal to its original state.
func (s *Screen) ExitRawMode() error {
	if !s.inRawMode {
		return nil
	}

	s.writeString("\x1b[?25h")
	s.writeString("\x1b[?1049l")

	signal.Stop(s.sigChan)

	if s.origState != nil {
		if err := term.Restore(s.fd, s.origState); err != nil {
			return fmt.Errorf("failed to restore terminal: %w", err)
		}
	}

	s.inRawMode = false
	return nil
}

// handleSignals processes SIGWINCH resize signals.
func (s *Screen) handleSignals() {
	for range s.sigChan {
		width, height, err := getTerminalSize(s.fd)
		if err != nil {
			continue
		}
		if width != s.width || height != s.height {
			s.mu.Lock()
			s.width = width
			s.height = height
			s.front.Resize(width, height)
			s.back.Resize(width, height)
			// Clear both buffers so stale content doesn't survive the diff
			s.front.Clear()
			s.back.Clear()
			s.writeString("\x1b[2J")
			s.mu.Unlock()
			select {
			case s.resizeChan <- Size{Width: width, Height: height}:
			default:
			}
		}
	}
}

// Flush renders the back buffer to the terminal using a per-cell diff.
// Only cells that actually changed are written.
func (s *Screen) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()

	changed := 0
	cursorX, cursorY := -1, -1

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			backCell := s.back.Get(x, y)
			if backCell == s.front.Get(x, y) {
				continue
			}

			// Placeholder cells (second half of double-width runes)
			// are tracked but never written.
			if backCell.Rune == 0 {
				s.front.Set(x, y, backCell)
				continue
			}

			changed++
			if cursorX != x || cursorY != y {
				fmt.Fprintf(&s.buf, "\x1b[%d;%dH", y+1, x+1)
			}

			s.writeCell(&s.buf, backCell)
			s.front.Set(x, y, backCell)

			rw := runewidth.RuneWidth(backCell.Rune)
			if rw == 0 {
				rw = 1
			}
			cursorX = x + rw
			cursorY = y
		}
	}

	if changed > 0 {
		s.buf.WriteString("\x1b[0m")
		s.lastStyle = DefaultStyle()
		s.writer.Write(s.buf.Bytes())
	}
}

// writeCell writes a cell's style and rune to the buffer.
func (s *Screen) writeCell(buf *bytes.Buffer, cell Cell) {
	if !cell.Style.Equal(s.lastStyle) {
		s.writeStyle(buf, cell.Style)
		s.lastStyle = cell.Style
	}
	buf.WriteRune(cell.Rune)
}

// writeStyle writes ANSI escape codes for the given style.
func (s *Screen) writeStyle(buf *bytes.Buffer, style Style) {
	buf.WriteString("\x1b[0")

	if style.Attr.Has(AttrBold) {
		buf.WriteString(";1")
	}
	if style.Attr.Has(AttrDim) {
		buf.WriteString(";2")
	}
	if style.Attr.Has(AttrItalic) {
		buf.WriteString(";3")
	}
	if style.Attr.Has(AttrUnderline) {
		buf.WriteString(";4")
	}
	if style.Attr.Has(AttrInverse) {
		buf.WriteString(";7")
	}

	s.writeColor(buf, style.FG, true)
	s.writeColor(buf, style.BG, false)

	buf.WriteString("m")
}

// writeColor writes the ANSI escape code for a color.
func (s *Screen) writeColor(buf *bytes.Buffer, c Color, fg bool) {
	switch c.Mode {
	case ColorDefault:
		if fg {
			buf.WriteString(";39")
		} else {
			buf.WriteString(";49")
		}
	case Color16:
		base := 40
		if fg {
			base = 30
		}
		idx := int(c.Index)
		if idx >= 8 {
			base += 60
			idx -= 8
		}
		fmt.Fprintf(buf, ";%d", base+idx)
	case Color256:
		if fg {
			fmt.Fprintf(buf, ";38;5;%d", c.Index)
		} else {
			fmt.Fprintf(buf, ";48;5;%d", c.Index)
		}
	case ColorRGB:
		if fg {
			fmt.Fprintf(buf, ";38;2;%d;%d;%d", c.R, c.G, c.B)
		} else {
			fmt.Fprintf(buf, ";48;2;%d;%d;%d", c.R, c.G, c.B)
		}
	}
}

func (s *Screen) writeString(str string) {
	s.writer.Write([]byte(str))
}

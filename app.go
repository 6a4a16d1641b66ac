package listkit

import (
	"os"
	"time"
)

// frameInterval paces the UI loop. One idle drain per frame gives the
// scroll animation its one-step-per-tick cadence.
const frameInterval = 16 * time.Millisecond

// App ties a screen, a root component and the idle queue into a frame
// loop. Input is raw stdin bytes dispatched to registered handlers;
// this module's demos only need single-key bindings.
type App struct {
	screen *Screen
	root   Component
	idle   *IdleQueue

	handlers map[byte]func()
	dirty    bool
	running  bool
}

// NewApp creates an app with a fresh screen and idle queue.
func NewApp() (*App, error) {
	screen, err := NewScreen(nil)
	if err != nil {
		return nil, err
	}
	return &App{
		screen:   screen,
		idle:     NewIdleQueue(),
		handlers: make(map[byte]func()),
	}, nil
}

// SetRoot sets the root component.
func (a *App) SetRoot(root Component) *App {
	a.root = root
	a.dirty = true
	return a
}

// Idle returns the app's idle queue for scheduling deferred work.
func (a *App) Idle() *IdleQueue {
	return a.idle
}

// Screen returns the screen.
func (a *App) Screen() *Screen {
	return a.screen
}

// Handle binds a key byte to a handler. 'q' and Ctrl-C always quit.
func (a *App) Handle(key byte, fn func()) *App {
	a.handlers[key] = fn
	return a
}

// Invalidate marks the UI for relayout and redraw on the next frame.
func (a *App) Invalidate() {
	a.dirty = true
}

// Quit stops the loop after the current frame.
func (a *App) Quit() {
	a.running = false
}

// Run enters raw mode and runs the frame loop until Quit, 'q' or
// Ctrl-C. Each frame handles input, drains the idle queue once, and
// relayouts and redraws when anything changed.
func (a *App) Run() error {
	if err := a.screen.EnterRawMode(); err != nil {
		return err
	}
	defer a.screen.ExitRawMode()

	input := make(chan byte, 16)
	go func() {
		var b [1]byte
		for {
			n, err := os.Stdin.Read(b[:])
			if err != nil {
				return
			}
			if n > 0 {
				input <- b[0]
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.running = true
	a.layout()
	a.render()

	for a.running {
		select {
		case key := <-input:
			if key == 'q' || key == 3 {
				a.running = false
				continue
			}
			if fn, ok := a.handlers[key]; ok {
				fn()
				a.dirty = true
			}

		case size := <-a.screen.ResizeChan():
			tracer.Trace().Int("width", size.Width).Int("height", size.Height).
				Msg("resize")
			a.dirty = true

		case <-ticker.C:
			if a.idle.Drain() > 0 {
				a.dirty = true
			}
			if a.dirty {
				a.layout()
				a.render()
				a.dirty = false
			}
		}
	}
	return nil
}

// layout runs a full layout pass from the screen size down.
func (a *App) layout() {
	if a.root == nil {
		return
	}
	size := a.screen.Size()
	a.root.SetConstraints(size.Width, size.Height)
	a.root.SetAllocation(Allocation{Width: size.Width, Height: size.Height})
}

// render draws the root into the back buffer and flushes the diff.
func (a *App) render() {
	if a.root == nil {
		return
	}
	buf := a.screen.Buffer()
	buf.Clear()
	a.root.Render(buf, 0, 0)
	a.screen.Flush()
}

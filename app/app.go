// Package app runs a gadget tree against a terminal. Input,
// animation and painting all happen on the loop goroutine.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/lixenwraith/gadget/gadget"
	"github.com/lixenwraith/gadget/terminal"
)

// Config holds runtime settings
type Config struct {
	// FrameInterval is the time between paint passes
	FrameInterval time.Duration
	// DefaultCell fills screen cells nothing paints over
	DefaultCell terminal.Cell
}

// DefaultConfig returns the standard 60 fps configuration
func DefaultConfig() Config {
	return Config{
		FrameInterval: time.Second / 60,
		DefaultCell:   terminal.Cell{Rune: ' ', Fg: terminal.White, Bg: terminal.Black},
	}
}

// App owns the run loop tying a screen to a gadget tree
type App struct {
	screen terminal.Screen
	root   *gadget.Root
	config Config

	quitOnce sync.Once
	quit     chan struct{}
}

// New creates an app for the given screen. The tree root exists
// immediately so gadgets can be added before Run; its size snaps to
// the terminal once the loop starts.
func New(screen terminal.Screen, config Config) *App {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultConfig().FrameInterval
	}
	return &App{
		screen: screen,
		root:   gadget.NewRoot(screen.Size(), config.DefaultCell),
		config: config,
		quit:   make(chan struct{}),
	}
}

// Root returns the tree root gadgets attach to
func (a *App) Root() *gadget.Root { return a.root }

// Quit stops the run loop. Safe to call from event handlers and from
// other goroutines, and more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Run drives the application until Quit is called, the context is
// cancelled, or the input stream closes. Events dispatch through the
// tree; each tick steps scheduled tasks, renders, and flushes the
// frame.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	defer a.screen.Fini()

	a.root.Resize(a.screen.Size())

	ticker := time.NewTicker(a.config.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.quit:
			return nil
		case ev, ok := <-a.screen.Events():
			if !ok {
				return nil
			}
			a.dispatch(ev)
		case now := <-ticker.C:
			a.root.Scheduler().Step(now)
			f := a.root.RenderFrame()
			a.screen.Flush(f.Cells(), f.Size())
		}
	}
}

func (a *App) dispatch(ev terminal.Event) {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		a.root.Resize(e.Size)
	case terminal.KeyEvent:
		a.root.DispatchKey(e)
	case terminal.MouseEvent:
		a.root.DispatchMouse(e)
	case terminal.PasteEvent:
		a.root.DispatchPaste(e)
	case terminal.FocusEvent:
		a.root.DispatchFocus(e)
	}
}

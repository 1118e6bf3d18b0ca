// Package tty is a terminal frontend. The 640x480 arena is scaled onto the
// character grid, so the picture is coarse but the simulation is unchanged.
package tty

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/memong/pong"
)

// Terminal owns a tcell screen. It is both the loop's Source and its
// Presenter.
type Terminal struct {
	screen tcell.Screen
	keymap *Keymap

	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
}

// Open initialises the controlling terminal.
func Open(keymap *Keymap) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tty: %w", err)
	}
	return NewTerminal(screen, keymap)
}

// NewTerminal takes ownership of screen and initialises it.
func NewTerminal(screen tcell.Screen, keymap *Keymap) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tty: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		keymap: keymap,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}

	go t.pump()
	return t, nil
}

func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Poll drains the events received since the last call without blocking.
func (t *Terminal) Poll() []pong.Event {
	var out []pong.Event
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if e, ok := t.keymap.Translate(ev); ok {
					out = append(out, e)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return out
		}
	}
}

// Present draws the frame and flushes it to the terminal.
func (t *Terminal) Present(frame pong.Frame) {
	Draw(t.screen, frame)
	t.screen.Show()
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

// Package window is the desktop frontend: an ebiten window that feeds key
// presses into the engine loop and draws every presented frame.
package window

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/memong/config"
	"github.com/plus3/memong/debugui"
	"github.com/plus3/memong/engine"
	"github.com/plus3/memong/pong"
)

// Game implements ebiten.Game around an engine loop. It is also the loop's
// Presenter: the latest frame is kept until Draw.
type Game struct {
	loop    *engine.Loop
	keymap  *Keymap
	overlay *debugui.Overlay

	frame  pong.Frame
	keys   []ebiten.Key
	events []pong.Event
}

// NewGame builds a game with its own loop. A nil overlay disables the debug
// panel.
func NewGame(keymap *Keymap, overlay *debugui.Overlay, opts ...engine.Option) *Game {
	g := &Game{
		keymap:  keymap,
		overlay: overlay,
		frame:   pong.NewState().Frame(),
	}

	if overlay != nil {
		sys := debugui.NewSystem(120)
		opts = append(opts, engine.WithSystems(sys))
		g.loop = engine.NewLoop(g, opts...)
		sys.View = g.loop
	} else {
		g.loop = engine.NewLoop(g, opts...)
	}
	return g
}

// Loop exposes the underlying engine loop.
func (g *Game) Loop() *engine.Loop {
	return g.loop
}

// Present stores the frame for the next Draw.
func (g *Game) Present(frame pong.Frame) {
	g.frame = frame
}

// Frame returns the most recently presented frame.
func (g *Game) Frame() pong.Frame {
	return g.frame
}

func (g *Game) Update() error {
	if g.overlay != nil {
		g.overlay.BeginFrame()
	}

	g.events = g.events[:0]
	if g.overlay == nil || !g.overlay.WantsKeyboard() {
		g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
		g.events = g.keymap.Translate(g.keys, g.events)
	}
	if ebiten.IsWindowBeingClosed() {
		g.events = append(g.events, pong.Quit())
	}

	if !g.loop.Tick(g.events) {
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	DrawFrame(screen, g.frame)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return pong.Width, pong.Height
}

// Run opens the window described by cfg and blocks until the player quits or
// closes it.
func Run(cfg config.Config) error {
	keymap, err := NewKeymap(cfg.Input)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	width, height := pong.Width*cfg.Window.Scale, pong.Height*cfg.Window.Scale

	var overlay *debugui.Overlay
	if cfg.Debug.Overlay {
		overlay = debugui.NewOverlay(cfg.Window.Title, width, height)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	if cfg.Window.TPS == 0 {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	} else {
		ebiten.SetTPS(cfg.Window.TPS)
	}

	game := NewGame(keymap, overlay, engine.WithVerbose(cfg.Debug.Log))
	log.Printf("window: %dx%d, vsync=%t, tps=%d, overlay=%t",
		width, height, cfg.Window.VSync, cfg.Window.TPS, overlay != nil)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}

	c := game.loop.Counters()
	log.Printf("window: closed after %d ticks", c.Ticks)
	return nil
}

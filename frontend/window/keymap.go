package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/memong/config"
	"github.com/plus3/memong/pong"
)

// Keymap translates ebiten key presses into simulation events.
type Keymap struct {
	bindings *intmap.Map[ebiten.Key, pong.Event]
}

// NewKeymap resolves the configured key names. Names follow ebiten's key
// naming ("W", "ArrowUp", "Escape", ...) and are case-insensitive.
func NewKeymap(in config.Input) (*Keymap, error) {
	km := &Keymap{bindings: intmap.New[ebiten.Key, pong.Event](8)}

	groups := []struct {
		names []string
		event pong.Event
	}{
		{in.LeftUp, pong.KeyDown(pong.ActionLeftUp)},
		{in.LeftDown, pong.KeyDown(pong.ActionLeftDown)},
		{in.RightUp, pong.KeyDown(pong.ActionRightUp)},
		{in.RightDown, pong.KeyDown(pong.ActionRightDown)},
		{in.Quit, pong.Quit()},
	}
	for _, g := range groups {
		for _, name := range g.names {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("bind %q: %w", name, err)
			}
			km.bindings.Put(key, g.event)
		}
	}
	return km, nil
}

// Translate appends the events for keys to dst. Unbound keys are ignored.
func (km *Keymap) Translate(keys []ebiten.Key, dst []pong.Event) []pong.Event {
	for _, key := range keys {
		if ev, ok := km.bindings.Get(key); ok {
			dst = append(dst, ev)
		}
	}
	return dst
}

package tty

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/memong/config"
	"github.com/plus3/memong/pong"
)

// Single characters are keyed by their lowercase rune; named keys are folded
// into the negative range so both share one table.
func runeCode(r rune) int     { return int(unicode.ToLower(r)) }
func keyCode(k tcell.Key) int { return -int(k) - 1 }

var namedKeys = map[string]tcell.Key{
	"arrowup":    tcell.KeyUp,
	"arrowdown":  tcell.KeyDown,
	"arrowleft":  tcell.KeyLeft,
	"arrowright": tcell.KeyRight,
	"escape":     tcell.KeyEscape,
	"enter":      tcell.KeyEnter,
	"tab":        tcell.KeyTab,
}

// Keymap translates terminal key events into simulation events.
type Keymap struct {
	bindings *intmap.Map[int, pong.Event]
}

// NewKeymap resolves the configured key names. It accepts the same names as
// the window frontend where the terminal has an equivalent key.
func NewKeymap(in config.Input) (*Keymap, error) {
	km := &Keymap{bindings: intmap.New[int, pong.Event](8)}

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
			code, err := lookup(name)
			if err != nil {
				return nil, err
			}
			km.bindings.Put(code, g.event)
		}
	}
	return km, nil
}

func lookup(name string) (int, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return runeCode(r), nil
	}

	lower := strings.ToLower(name)
	if lower == "space" {
		return runeCode(' '), nil
	}
	if k, ok := namedKeys[lower]; ok {
		return keyCode(k), nil
	}
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return keyCode(k), nil
		}
	}
	return 0, fmt.Errorf("tty: unknown key name %q", name)
}

// Translate maps one key event. Ctrl-C always quits.
func (km *Keymap) Translate(ev *tcell.EventKey) (pong.Event, bool) {
	if ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0) {
		return pong.Quit(), true
	}
	code := keyCode(ev.Key())
	if ev.Key() == tcell.KeyRune {
		code = runeCode(ev.Rune())
	}
	return km.bindings.Get(code)
}

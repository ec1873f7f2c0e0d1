// Package binding holds the three binding tables of a session: key
// shortcuts scoped by mode, inputbar-only shortcuts, and mouse event
// bindings. Lookup is by exact tuple; rebinding a tuple replaces the
// previous entry.
package binding

import (
	"github.com/dshills/uishell/internal/input/key"
	"github.com/dshills/uishell/internal/input/mouse"
	"github.com/dshills/uishell/internal/mode"
)

// Argument carries the optional static argument registered with a
// binding, passed through to the action on dispatch.
type Argument struct {
	// N is a small integer discriminator (direction, unit, ...).
	N int

	// Data is arbitrary payload owned by the registrant.
	Data any
}

// ShortcutFunc is the action a key shortcut invokes. count is the
// repeat count accumulated in the session buffer, or 0 when none was
// typed.
type ShortcutFunc func(arg Argument, count int) error

// MouseFunc is the action a mouse binding invokes.
type MouseFunc func(arg Argument, ev mouse.Event) error

// keyChord identifies a key shortcut within one mode.
type keyChord struct {
	mode mode.ID
	key  key.Key
	r    rune
	mods key.Modifier
}

// inputbarChord identifies an inputbar shortcut; inputbar shortcuts are
// a separate table so editing keys never collide with mode shortcuts.
type inputbarChord struct {
	key  key.Key
	r    rune
	mods key.Modifier
}

// mouseChord identifies a mouse binding within one mode.
type mouseChord struct {
	mode   mode.ID
	button mouse.Button
	mods   key.Modifier
	phase  mouse.Phase
}

type shortcutEntry struct {
	fn  ShortcutFunc
	arg Argument
}

type mouseEntry struct {
	fn  MouseFunc
	arg Argument
}

func chordOf(m mode.ID, ev key.Event) keyChord {
	c := keyChord{mode: m, key: ev.Key, mods: ev.Modifiers}
	if ev.Key == key.KeyRune {
		c.r = ev.Rune
	}
	return c
}

func inputbarChordOf(ev key.Event) inputbarChord {
	c := inputbarChord{key: ev.Key, mods: ev.Modifiers}
	if ev.Key == key.KeyRune {
		c.r = ev.Rune
	}
	return c
}

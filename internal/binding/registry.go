package binding

import (
	"sync"

	"github.com/dshills/uishell/internal/input/key"
	"github.com/dshills/uishell/internal/input/mouse"
	"github.com/dshills/uishell/internal/mode"
)

// Registry holds all binding tables of one session.
type Registry struct {
	mu        sync.RWMutex
	shortcuts map[keyChord]shortcutEntry
	inputbar  map[inputbarChord]shortcutEntry
	mouse     map[mouseChord]mouseEntry
}

// NewRegistry creates an empty binding registry.
func NewRegistry() *Registry {
	return &Registry{
		shortcuts: make(map[keyChord]shortcutEntry),
		inputbar:  make(map[inputbarChord]shortcutEntry),
		mouse:     make(map[mouseChord]mouseEntry),
	}
}

// BindShortcut registers fn for (m, ev). An existing binding for the
// same tuple is replaced.
func (r *Registry) BindShortcut(m mode.ID, ev key.Event, fn ShortcutFunc, arg Argument) error {
	if fn == nil {
		return ErrNilAction
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shortcuts[chordOf(m, ev)] = shortcutEntry{fn: fn, arg: arg}
	return nil
}

// UnbindShortcut removes the binding for (m, ev). Removing an unbound
// tuple is not an error.
func (r *Registry) UnbindShortcut(m mode.ID, ev key.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shortcuts, chordOf(m, ev))
}

// BindInputbarShortcut registers fn for ev within the inputbar.
func (r *Registry) BindInputbarShortcut(ev key.Event, fn ShortcutFunc, arg Argument) error {
	if fn == nil {
		return ErrNilAction
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputbar[inputbarChordOf(ev)] = shortcutEntry{fn: fn, arg: arg}
	return nil
}

// UnbindInputbarShortcut removes the inputbar binding for ev.
func (r *Registry) UnbindInputbarShortcut(ev key.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inputbar, inputbarChordOf(ev))
}

// BindMouse registers fn for (m, button, mods, phase).
func (r *Registry) BindMouse(m mode.ID, button mouse.Button, mods key.Modifier, phase mouse.Phase, fn MouseFunc, arg Argument) error {
	if fn == nil {
		return ErrNilAction
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mouse[mouseChord{mode: m, button: button, mods: mods, phase: phase}] = mouseEntry{fn: fn, arg: arg}
	return nil
}

// UnbindMouse removes the mouse binding for (m, button, mods, phase).
func (r *Registry) UnbindMouse(m mode.ID, button mouse.Button, mods key.Modifier, phase mouse.Phase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.mouse, mouseChord{mode: m, button: button, mods: mods, phase: phase})
}

// DispatchKey looks up (m, ev) and invokes the bound action with count.
// The first return reports whether a binding matched; the error is the
// action's, never the lookup's.
func (r *Registry) DispatchKey(m mode.ID, ev key.Event, count int) (bool, error) {
	r.mu.RLock()
	entry, ok := r.shortcuts[chordOf(m, ev)]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, entry.fn(entry.arg, count)
}

// DispatchInputbarKey looks up ev in the inputbar table.
func (r *Registry) DispatchInputbarKey(ev key.Event) (bool, error) {
	r.mu.RLock()
	entry, ok := r.inputbar[inputbarChordOf(ev)]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, entry.fn(entry.arg, 0)
}

// DispatchMouse looks up ev against the mouse table for mode m.
func (r *Registry) DispatchMouse(m mode.ID, ev mouse.Event) (bool, error) {
	r.mu.RLock()
	entry, ok := r.mouse[mouseChord{mode: m, button: ev.Button, mods: ev.Modifiers, phase: ev.Phase}]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, entry.fn(entry.arg, ev)
}

// Clear drops every binding. Used at session destruction so closures
// registered by the embedder are released.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shortcuts = make(map[keyChord]shortcutEntry)
	r.inputbar = make(map[inputbarChord]shortcutEntry)
	r.mouse = make(map[mouseChord]mouseEntry)
}

// ShortcutCount returns the number of key shortcuts registered.
func (r *Registry) ShortcutCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shortcuts)
}

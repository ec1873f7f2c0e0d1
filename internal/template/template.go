// Package template holds the externally owned styling state the shell
// delegates visual presentation to: a base string with @name@
// variables, substituted on render. The shell stores and mutates the
// variables; interpreting the rendered output is the renderer's job.
package template

import (
	"strings"
	"sync"
)

// ChangeFunc is invoked after the base or a variable changes.
type ChangeFunc func()

// Template is a base string with named variables.
type Template struct {
	mu        sync.RWMutex
	base      string
	variables map[string]string
	listeners []ChangeFunc
}

// New creates a template from base. An empty base renders to "".
func New(base string) *Template {
	return &Template{
		base:      base,
		variables: make(map[string]string),
	}
}

// SetBase replaces the base string.
func (t *Template) SetBase(base string) {
	t.mu.Lock()
	t.base = base
	t.mu.Unlock()
	t.fireChanged()
}

// Base returns the base string.
func (t *Template) Base() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.base
}

// AddVariable declares a variable. Declared variables render as their
// value; undeclared @name@ markers are left verbatim.
func (t *Template) AddVariable(name string) error {
	if name == "" {
		return ErrEmptyVariable
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.variables[name]; !ok {
		t.variables[name] = ""
	}
	return nil
}

// SetVariable sets a declared variable's value.
func (t *Template) SetVariable(name, value string) error {
	t.mu.Lock()
	if _, ok := t.variables[name]; !ok {
		t.mu.Unlock()
		return &UnknownVariableError{Name: name}
	}
	t.variables[name] = value
	t.mu.Unlock()
	t.fireChanged()
	return nil
}

// Variable returns a variable's current value.
func (t *Template) Variable(name string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.variables[name]
	return v, ok
}

// Variables returns the declared variable names.
func (t *Template) Variables() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.variables))
	for name := range t.variables {
		names = append(names, name)
	}
	return names
}

// OnChange registers a listener fired after every mutation.
func (t *Template) OnChange(fn ChangeFunc) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

// Render substitutes every declared @name@ marker in the base with the
// variable's value.
func (t *Template) Render() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := t.base
	for name, value := range t.variables {
		out = strings.ReplaceAll(out, "@"+name+"@", value)
	}
	return out
}

func (t *Template) fireChanged() {
	t.mu.RLock()
	listeners := make([]ChangeFunc, len(t.listeners))
	copy(listeners, t.listeners)
	t.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

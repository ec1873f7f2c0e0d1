// Package mode tracks the named interaction contexts a session can be
// in. A mode scopes which shortcut and mouse bindings are active. Two
// modes always exist: normal and inputbar.
package mode

import (
	"sync"
)

// ID identifies a registered mode. IDs are small positive integers,
// assigned monotonically and never reused.
type ID int

// None is the zero ID; it never names a registered mode.
const None ID = 0

// Registry assigns IDs to mode names and tracks the active mode.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]ID
	byID    map[ID]string
	nextID  ID
	current ID

	normal   ID
	inputbar ID
}

// Built-in mode names.
const (
	NameNormal   = "normal"
	NameInputbar = "inputbar"
)

// NewRegistry creates a registry with the two built-in modes registered
// and normal active.
func NewRegistry() *Registry {
	r := &Registry{
		byName: make(map[string]ID),
		byID:   make(map[ID]string),
		nextID: 1,
	}
	r.normal, _ = r.Add(NameNormal)
	r.inputbar, _ = r.Add(NameInputbar)
	r.current = r.normal
	return r
}

// Add registers a mode by name and returns its ID. Registering an
// existing name returns the existing ID rather than allocating a new
// one. An empty name is rejected.
func (r *Registry) Add(name string) (ID, error) {
	if name == "" {
		return None, ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byName[name]; ok {
		return id, nil
	}
	id := r.nextID
	r.nextID++
	r.byName[name] = id
	r.byID[id] = name
	return id, nil
}

// Set makes id the active mode. Unknown IDs are an error, never a
// silent no-op.
func (r *Registry) Set(id ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return &UnknownModeError{ID: id}
	}
	r.current = id
	return nil
}

// Get returns the active mode ID.
func (r *Registry) Get() ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Name returns the name registered for id, or "" if unknown.
func (r *Registry) Name(id ID) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id]
}

// Lookup returns the ID registered for name.
func (r *Registry) Lookup(name string) (ID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	return id, ok
}

// Normal returns the built-in normal mode ID.
func (r *Registry) Normal() ID {
	return r.normal
}

// Inputbar returns the built-in inputbar mode ID.
func (r *Registry) Inputbar() ID {
	return r.inputbar
}

// Names returns all registered mode names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}

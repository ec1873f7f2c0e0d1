// Package settings provides the typed runtime settings of a session.
//
// Settings are registered with a type, a default value and an optional
// change callback, and can afterwards be set either with a typed value
// or from the string form used by config files.
package settings

import (
	"fmt"
	"strconv"
	"sync"
)

// Type is a setting's data type.
type Type int

const (
	// TypeBool is a boolean setting.
	TypeBool Type = iota
	// TypeInt is an integer setting.
	TypeInt
	// TypeFloat is a floating point setting.
	TypeFloat
	// TypeString is a string setting.
	TypeString
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// ChangeFunc is invoked after a setting's value changes.
type ChangeFunc func(name string, value any)

// Setting is one registered setting.
type Setting struct {
	// Name is the unique setting name.
	Name string

	// Type is the value type.
	Type Type

	// Description is human-readable documentation.
	Description string

	// InitOnly settings can only be written before Freeze is called,
	// i.e. during session initialization.
	InitOnly bool

	value    any
	onChange ChangeFunc
}

// Value returns the current value.
func (s *Setting) Value() any {
	return s.value
}

// Registry holds all settings of a session.
type Registry struct {
	mu       sync.RWMutex
	settings map[string]*Setting
	frozen   bool
}

// NewRegistry creates an empty settings registry.
func NewRegistry() *Registry {
	return &Registry{settings: make(map[string]*Setting)}
}

// Add registers a setting with its default value. The name must be
// unique; the value must match typ.
func (r *Registry) Add(name string, typ Type, value any, initOnly bool, description string, onChange ChangeFunc) error {
	if name == "" {
		return ErrEmptyName
	}
	if err := checkType(typ, value); err != nil {
		return fmt.Errorf("settings: %s: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.settings[name]; ok {
		return &DuplicateError{Name: name}
	}
	r.settings[name] = &Setting{
		Name:        name,
		Type:        typ,
		Description: description,
		InitOnly:    initOnly,
		value:       value,
		onChange:    onChange,
	}
	return nil
}

// Set updates a setting's value and fires its change callback.
func (r *Registry) Set(name string, value any) error {
	r.mu.Lock()
	s, ok := r.settings[name]
	if !ok {
		r.mu.Unlock()
		return &UnknownSettingError{Name: name}
	}
	if s.InitOnly && r.frozen {
		r.mu.Unlock()
		return &InitOnlyError{Name: name}
	}
	if err := checkType(s.Type, value); err != nil {
		r.mu.Unlock()
		return fmt.Errorf("settings: %s: %w", name, err)
	}
	s.value = value
	cb := s.onChange
	r.mu.Unlock()

	if cb != nil {
		cb(name, value)
	}
	return nil
}

// SetFromString parses raw according to the setting's type and sets it.
// This is the entry point for the config file `set` handle.
func (r *Registry) SetFromString(name, raw string) error {
	r.mu.RLock()
	s, ok := r.settings[name]
	r.mu.RUnlock()
	if !ok {
		return &UnknownSettingError{Name: name}
	}

	var value any
	switch s.Type {
	case TypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("settings: %s: %q is not a boolean", name, raw)
		}
		value = b
	case TypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("settings: %s: %q is not an integer", name, raw)
		}
		value = n
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("settings: %s: %q is not a number", name, raw)
		}
		value = f
	case TypeString:
		value = raw
	}
	return r.Set(name, value)
}

// Get returns the current value of a setting.
func (r *Registry) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.settings[name]
	if !ok {
		return nil, false
	}
	return s.value, true
}

// Bool returns a boolean setting, or fallback when unset or mistyped.
func (r *Registry) Bool(name string, fallback bool) bool {
	if v, ok := r.Get(name); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

// Int returns an integer setting, or fallback.
func (r *Registry) Int(name string, fallback int) int {
	if v, ok := r.Get(name); ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return fallback
}

// String returns a string setting, or fallback.
func (r *Registry) String(name, fallback string) string {
	if v, ok := r.Get(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

// Find returns a setting by name.
func (r *Registry) Find(name string) (*Setting, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.settings[name]
	return s, ok
}

// Names returns all registered setting names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.settings))
	for name := range r.settings {
		names = append(names, name)
	}
	return names
}

// Freeze marks initialization as complete; init-only settings become
// read-only afterwards.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Clear drops all settings and their callbacks.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = make(map[string]*Setting)
}

func checkType(typ Type, value any) error {
	switch typ {
	case TypeBool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
	case TypeInt:
		if _, ok := value.(int); !ok {
			return fmt.Errorf("expected int, got %T", value)
		}
	case TypeFloat:
		switch value.(type) {
		case float64, int:
		default:
			return fmt.Errorf("expected number, got %T", value)
		}
	case TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	default:
		return fmt.Errorf("unknown setting type %d", typ)
	}
	return nil
}

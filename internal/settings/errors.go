package settings

import (
	"errors"
	"fmt"
)

// ErrEmptyName indicates a setting registered without a name.
var ErrEmptyName = errors.New("settings: empty setting name")

// DuplicateError indicates a setting name that is already registered.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("settings: %q already registered", e.Name)
}

// UnknownSettingError indicates a name that was never registered.
type UnknownSettingError struct {
	Name string
}

func (e *UnknownSettingError) Error() string {
	return fmt.Sprintf("settings: unknown setting %q", e.Name)
}

// InitOnlyError indicates a write to an init-only setting after
// initialization completed.
type InitOnlyError struct {
	Name string
}

func (e *InitOnlyError) Error() string {
	return fmt.Sprintf("settings: %q can only be set during initialization", e.Name)
}

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyIdentifier indicates a handle or shortcut registered
	// without a name.
	ErrEmptyIdentifier = errors.New("config: empty identifier")

	// ErrNilHandle indicates a nil handle or shortcut function.
	ErrNilHandle = errors.New("config: nil handle")
)

// DuplicateHandleError indicates a directive that is already taken.
type DuplicateHandleError struct {
	Identifier string
}

func (e *DuplicateHandleError) Error() string {
	return fmt.Sprintf("config: handle %q already registered", e.Identifier)
}

// UnknownDirectiveError indicates an rc line with no matching handle.
type UnknownDirectiveError struct {
	Directive string
}

func (e *UnknownDirectiveError) Error() string {
	return fmt.Sprintf("config: unknown directive %q", e.Directive)
}

// UnknownShortcutError indicates a map line naming an unregistered
// shortcut function.
type UnknownShortcutError struct {
	Identifier string
}

func (e *UnknownShortcutError) Error() string {
	return fmt.Sprintf("config: unknown shortcut function %q", e.Identifier)
}

// KeySpecError indicates an unparseable key specification.
type KeySpecError struct {
	Spec string
}

func (e *KeySpecError) Error() string {
	return fmt.Sprintf("config: invalid key specification %q", e.Spec)
}

// UnsupportedFormatError indicates an option file with an unknown
// extension.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("config: unsupported config format %q", e.Path)
}

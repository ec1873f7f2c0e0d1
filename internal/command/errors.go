package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName indicates a command without a name.
	ErrEmptyName = errors.New("command: empty command name")

	// ErrEmptyTrigger indicates a special command without a trigger.
	ErrEmptyTrigger = errors.New("command: empty special command trigger")

	// ErrNilHandler indicates a command without a handler.
	ErrNilHandler = errors.New("command: nil handler")
)

// DuplicateError indicates a name or trigger that is already taken.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("command: %q already registered", e.Name)
}

// UnknownCommandError indicates input that resolved to no command.
type UnknownCommandError struct {
	Input string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("command: unknown command %q", e.Input)
}

// AmbiguousCommandError indicates a prefix matching several commands.
type AmbiguousCommandError struct {
	Input      string
	Candidates []string
}

func (e *AmbiguousCommandError) Error() string {
	return fmt.Sprintf("command: ambiguous command %q (matches %s)",
		e.Input, strings.Join(e.Candidates, ", "))
}

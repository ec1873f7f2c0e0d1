package template

import (
	"errors"
	"fmt"
)

// ErrEmptyVariable indicates a variable declared without a name.
var ErrEmptyVariable = errors.New("template: empty variable name")

// UnknownVariableError indicates a write to an undeclared variable.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("template: unknown variable %q", e.Name)
}

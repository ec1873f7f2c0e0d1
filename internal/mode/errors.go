package mode

import (
	"errors"
	"fmt"
)

// ErrEmptyName indicates a mode was registered without a name.
var ErrEmptyName = errors.New("mode: empty mode name")

// UnknownModeError indicates an ID that was never returned by Add.
type UnknownModeError struct {
	ID ID
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("mode: unknown mode id %d", e.ID)
}

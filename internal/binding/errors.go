package binding

import "errors"

// ErrNilAction indicates a binding was registered without an action.
var ErrNilAction = errors.New("binding: nil action")

package session

import "errors"

// Session errors.
var (
	// ErrNotInitialized indicates a dispatch operation before Init.
	ErrNotInitialized = errors.New("session: session not initialized")

	// ErrDestroyed indicates any operation after Destroy.
	ErrDestroyed = errors.New("session: session destroyed")

	// ErrAlreadyInitialized indicates a second Init call.
	ErrAlreadyInitialized = errors.New("session: session already initialized")

	// ErrNoWindowChrome indicates a window title/icon operation with
	// no chrome collaborator attached.
	ErrNoWindowChrome = errors.New("session: no window chrome attached")

	// ErrNilTemplate indicates SetTemplate was given nil.
	ErrNilTemplate = errors.New("session: nil template")
)

package session

import "github.com/dshills/uishell/internal/input/key"

// BufferChangedHandler observes mutations of the session's input
// buffer, e.g. to render the accumulated count prefix.
type BufferChangedHandler interface {
	BufferChanged(s *Session)
}

// BufferChangedFunc adapts a function to BufferChangedHandler.
type BufferChangedFunc func(s *Session)

// BufferChanged implements BufferChangedHandler.
func (f BufferChangedFunc) BufferChanged(s *Session) { f(s) }

// UnknownCommandHandler receives inputbar submissions that resolved to
// no command. Returning true marks the input as handled.
type UnknownCommandHandler interface {
	UnknownCommand(s *Session, input string) bool
}

// UnknownCommandFunc adapts a function to UnknownCommandHandler.
type UnknownCommandFunc func(s *Session, input string) bool

// UnknownCommand implements UnknownCommandHandler.
func (f UnknownCommandFunc) UnknownCommand(s *Session, input string) bool { return f(s, input) }

// DialogKeyHandler overrides inputbar key handling while a dialog is
// open. Returning true consumes the event.
type DialogKeyHandler interface {
	DialogKey(s *Session, ev key.Event) bool
}

// DialogKeyFunc adapts a function to DialogKeyHandler.
type DialogKeyFunc func(s *Session, ev key.Event) bool

// DialogKey implements DialogKeyHandler.
func (f DialogKeyFunc) DialogKey(s *Session, ev key.Event) bool { return f(s, ev) }

// DialogActivateHandler overrides inputbar submission while a dialog
// is open.
type DialogActivateHandler interface {
	DialogActivate(s *Session, input string) error
}

// DialogActivateFunc adapts a function to DialogActivateHandler.
type DialogActivateFunc func(s *Session, input string) error

// DialogActivate implements DialogActivateHandler.
func (f DialogActivateFunc) DialogActivate(s *Session, input string) error { return f(s, input) }

// SetBufferChangedHandler installs the buffer observer. Passing nil
// removes it.
func (s *Session) SetBufferChangedHandler(h BufferChangedHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onBufferChanged = h
}

// SetUnknownCommandHandler installs the unknown-command hook. Passing
// nil removes it.
func (s *Session) SetUnknownCommandHandler(h UnknownCommandHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUnknownCommand = h
}

func (s *Session) fireBufferChanged() {
	s.mu.RLock()
	h := s.onBufferChanged
	s.mu.RUnlock()
	if h != nil {
		h.BufferChanged(s)
	}
}

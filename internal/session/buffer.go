package session

import (
	"github.com/dshills/uishell/internal/mode"
)

// Buffer returns a copy of the accumulated input buffer. Mutating the
// returned value never changes session state.
func (s *Session) Buffer() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.buffer)
}

// appendBuffer adds one character and fires the buffer hook.
func (s *Session) appendBuffer(r rune) {
	s.mu.Lock()
	s.buffer = append(s.buffer, r)
	s.mu.Unlock()
	s.fireBufferChanged()
}

// clearBuffer drops the buffer; the hook fires only when it was
// non-empty.
func (s *Session) clearBuffer() {
	s.mu.Lock()
	wasEmpty := len(s.buffer) == 0
	s.buffer = s.buffer[:0]
	s.mu.Unlock()
	if !wasEmpty {
		s.fireBufferChanged()
	}
}

// bufferCount parses the leading digits of the buffer as a repeat
// count. Returns 0 when the buffer holds no count.
func (s *Session) bufferCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.buffer {
		if r < '0' || r > '9' {
			break
		}
		count = count*10 + int(r-'0')
	}
	return count
}

// SetMode makes id the active mode. Switching into or out of the
// inputbar mode clears the buffer so stale counts never leak across
// text entry.
func (s *Session) SetMode(id mode.ID) error {
	if err := s.requireInitialized(); err != nil {
		return err
	}

	previous := s.modes.Get()
	if err := s.modes.Set(id); err != nil {
		return err
	}

	inputbar := s.modes.Inputbar()
	if previous == inputbar || id == inputbar {
		s.clearBuffer()
	}

	// Keep the template's mode variable current for themed status
	// displays.
	if t := s.Template(); t != nil {
		if _, ok := t.Variable("mode"); ok {
			_ = t.SetVariable("mode", s.modes.Name(id))
		}
	}
	return nil
}

// Mode returns the active mode ID.
func (s *Session) Mode() (mode.ID, error) {
	if err := s.requireInitialized(); err != nil {
		return mode.None, err
	}
	return s.modes.Get(), nil
}

// AddMode registers a mode by name, returning the existing ID when the
// name is already registered.
func (s *Session) AddMode(name string) (mode.ID, error) {
	if err := s.requireAlive(); err != nil {
		return mode.None, err
	}
	return s.modes.Add(name)
}

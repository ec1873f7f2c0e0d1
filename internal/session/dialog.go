package session

// dialogState holds the one-shot handlers of an open dialog.
type dialogState struct {
	keyHandler      DialogKeyHandler
	activateHandler DialogActivateHandler
	userData        any
}

// Dialog opens a dialog: the session switches to the inputbar mode
// with prompt shown, and the supplied handlers override the default
// key and submission paths until the dialog is submitted or aborted.
// Both handlers are one-shot and may be nil. invisible requests
// password-style input from the presenter.
func (s *Session) Dialog(prompt string, invisible bool, keyHandler DialogKeyHandler, activateHandler DialogActivateHandler, userData any) error {
	if err := s.requireInitialized(); err != nil {
		return err
	}

	s.mu.Lock()
	s.dialog = &dialogState{
		keyHandler:      keyHandler,
		activateHandler: activateHandler,
		userData:        userData,
	}
	p := s.presenter
	s.mu.Unlock()

	if err := s.SetMode(s.modes.Inputbar()); err != nil {
		return err
	}
	if p != nil {
		p.OpenInputbar(prompt, invisible)
	}
	return nil
}

// DialogUserData returns the user data of the open dialog, or nil.
func (s *Session) DialogUserData() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dialog == nil {
		return nil
	}
	return s.dialog.userData
}

// takeDialog removes and returns the open dialog state, if any.
func (s *Session) takeDialog() *dialogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	dlg := s.dialog
	s.dialog = nil
	return dlg
}

package session

import (
	"errors"

	"github.com/dshills/uishell/internal/command"
	"github.com/dshills/uishell/internal/input/key"
	"github.com/dshills/uishell/internal/input/mouse"
	"github.com/dshills/uishell/internal/notify"
)

// HandleKey routes a key event from the view against the active mode's
// shortcut table. A matched binding consumes the buffer as its repeat
// count; an unmatched printable key is appended to the buffer instead
// of being discarded, so multi-key and count+key idioms can be
// interpreted by the embedder via the buffer hook.
//
// The boolean reports whether a binding matched; the error is the
// bound action's.
func (s *Session) HandleKey(ev key.Event) (bool, error) {
	if err := s.requireInitialized(); err != nil {
		return false, err
	}

	current := s.modes.Get()
	count := s.bufferCount()

	handled, err := s.bindings.DispatchKey(current, ev, count)
	if !handled && current != s.modes.Normal() {
		// Fall back to the global table so normal-mode bindings
		// keep working in app-defined modes.
		handled, err = s.bindings.DispatchKey(s.modes.Normal(), ev, count)
	}
	if handled {
		s.clearBuffer()
		if err != nil {
			s.debugf("shortcut for %s failed: %v", ev, err)
		}
		return true, err
	}

	if ev.IsPrintable() && !ev.IsModified() {
		s.appendBuffer(ev.Rune)
	}
	return false, nil
}

// HandleMouse routes a pointer event against the active mode's mouse
// table. A matched binding consumes and clears the buffer; unmatched
// pointer events are not buffered.
func (s *Session) HandleMouse(ev mouse.Event) (bool, error) {
	if err := s.requireInitialized(); err != nil {
		return false, err
	}

	handled, err := s.bindings.DispatchMouse(s.modes.Get(), ev)
	if handled {
		s.clearBuffer()
		if err != nil {
			s.debugf("mouse binding for %s/%s failed: %v", ev.Button, ev.Phase, err)
		}
	}
	return handled, err
}

// HandleInputbarKey routes a key event that occurred while the
// inputbar is focused. A dialog's custom key handler runs first, then
// the inputbar shortcut table. Unhandled events belong to the entry
// widget (character insertion) and are left to the presenter.
func (s *Session) HandleInputbarKey(ev key.Event) (bool, error) {
	if err := s.requireInitialized(); err != nil {
		return false, err
	}

	s.mu.RLock()
	dlg := s.dialog
	s.mu.RUnlock()
	if dlg != nil && dlg.keyHandler != nil {
		if dlg.keyHandler.DialogKey(s, ev) {
			return true, nil
		}
	}

	return s.bindings.DispatchInputbarKey(ev)
}

// InputbarChanged routes an intermediate inputbar edit. Only
// always-listening special commands observe it.
func (s *Session) InputbarChanged(input string) error {
	if err := s.requireInitialized(); err != nil {
		return err
	}
	_, err := s.commands.Changed(input)
	return err
}

// InputbarSubmit routes a submitted inputbar line. A dialog's one-shot
// activate handler takes the submission when a dialog is open;
// otherwise the line is resolved as a special command or an ordinary
// command. Every successful submission is appended to the history
// verbatim, and the session returns to normal mode.
func (s *Session) InputbarSubmit(input string) error {
	if err := s.requireInitialized(); err != nil {
		return err
	}

	if dlg := s.takeDialog(); dlg != nil {
		s.closeInputbar()
		var err error
		if dlg.activateHandler != nil {
			err = dlg.activateHandler.DialogActivate(s, input)
		}
		if serr := s.SetMode(s.modes.Normal()); serr != nil {
			return serr
		}
		return err
	}

	err := s.commands.Submit(input)

	var unknown *command.UnknownCommandError
	if errors.As(err, &unknown) {
		s.mu.RLock()
		hook := s.onUnknownCommand
		s.mu.RUnlock()
		if hook != nil && hook.UnknownCommand(s, input) {
			err = nil
		}
	}

	if err == nil {
		s.hist.Append(input)
		s.hist.Reset()
	} else {
		var ambiguous *command.AmbiguousCommandError
		if errors.As(err, &ambiguous) {
			s.Notify(notify.Error, ambiguous.Error())
		}
		s.debugf("inputbar submission %q failed: %v", input, err)
	}

	s.closeInputbar()
	if serr := s.SetMode(s.modes.Normal()); serr != nil {
		return serr
	}
	return err
}

// FocusInputbar switches to the inputbar mode and asks the presenter
// to show the inputbar seeded with prompt (e.g. ":" or "/").
func (s *Session) FocusInputbar(prompt string) error {
	if err := s.SetMode(s.modes.Inputbar()); err != nil {
		return err
	}
	s.mu.RLock()
	p := s.presenter
	s.mu.RUnlock()
	if p != nil {
		p.OpenInputbar(prompt, false)
	}
	return nil
}

// AbortInputbar cancels text entry: any open dialog is dropped without
// its handlers being invoked, the inputbar closes and the session
// returns to normal mode.
func (s *Session) AbortInputbar() error {
	if err := s.requireInitialized(); err != nil {
		return err
	}
	s.takeDialog()
	s.hist.Reset()
	s.closeInputbar()
	return s.SetMode(s.modes.Normal())
}

// RecallPrevious replaces the inputbar content with the previous
// history entry.
func (s *Session) RecallPrevious() error {
	if err := s.requireInitialized(); err != nil {
		return err
	}
	entry, ok := s.hist.Previous()
	if !ok {
		return nil
	}
	s.setInputbarText(entry)
	return nil
}

// RecallNext replaces the inputbar content with the next history
// entry, or clears it past the newest entry.
func (s *Session) RecallNext() error {
	if err := s.requireInitialized(); err != nil {
		return err
	}
	entry, _ := s.hist.Next()
	s.setInputbarText(entry)
	return nil
}

func (s *Session) setInputbarText(text string) {
	s.mu.RLock()
	p := s.presenter
	s.mu.RUnlock()
	if p != nil {
		p.SetInputbarText(text)
	}
}

func (s *Session) closeInputbar() {
	s.mu.RLock()
	p := s.presenter
	s.mu.RUnlock()
	if p != nil {
		p.CloseInputbar()
	}
}

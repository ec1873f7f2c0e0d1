// Package session implements the aggregate root of the interaction
// shell: one Session owns the mode, binding, command and settings
// registries, the input buffer, the command history and the
// notification service, and exposes the lifecycle and dispatch
// operations the embedding application and the rendering layer call
// into.
//
// The session runs on the thread that owns the embedder's event
// source. The registries guard themselves with mutexes, but the
// lifecycle contract assumes input events, registration and
// destruction are issued from that one thread.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/uishell/internal/binding"
	"github.com/dshills/uishell/internal/command"
	"github.com/dshills/uishell/internal/history"
	"github.com/dshills/uishell/internal/mode"
	"github.com/dshills/uishell/internal/notify"
	"github.com/dshills/uishell/internal/settings"
	"github.com/dshills/uishell/internal/template"
	"github.com/dshills/uishell/internal/ulog"
)

// State is the lifecycle state of a session.
type State int

const (
	// StateUninitialized is the state after New.
	StateUninitialized State = iota
	// StateInitialized is the state after a successful Init.
	StateInitialized
	// StateDestroyed is terminal.
	StateDestroyed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// WindowChrome is the external window decoration collaborator.
type WindowChrome interface {
	SetTitle(title string) error
	SetIcon(name string) error
}

// InputbarPresenter is the external inputbar widget collaborator. The
// core tells it what to show; it feeds key events and submissions back
// through the session's dispatch operations.
type InputbarPresenter interface {
	// OpenInputbar shows the inputbar with a prompt. invisible
	// requests password-style input.
	OpenInputbar(prompt string, invisible bool)

	// CloseInputbar hides the inputbar.
	CloseInputbar()

	// SetInputbarText replaces the inputbar content, e.g. during
	// history recall.
	SetInputbarText(text string)
}

// Session is the aggregate root of the interaction shell.
type Session struct {
	mu sync.RWMutex

	id      string
	appname string
	state   State

	modes    *mode.Registry
	bindings *binding.Registry
	commands *command.Registry
	options  *settings.Registry
	hist     *history.History
	notifier *notify.Service
	tmpl     *template.Template
	log      *ulog.Logger

	buffer []rune

	// Externally owned back-references. Never dereferenced beyond the
	// collaborator interfaces; tolerated as nil.
	view      any
	chrome    WindowChrome
	presenter InputbarPresenter
	userData  any

	onBufferChanged  BufferChangedHandler
	onUnknownCommand UnknownCommandHandler

	dialog *dialogState

	historyIO history.IO
}

// New creates a session in the Uninitialized state. Registration
// operations work immediately; dispatch requires Init.
func New() *Session {
	return &Session{
		id:       uuid.NewString(),
		state:    StateUninitialized,
		modes:    mode.NewRegistry(),
		bindings: binding.NewRegistry(),
		commands: command.NewRegistry(),
		options:  settings.NewRegistry(),
		notifier: notify.NewService(),
		tmpl:     template.New(""),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Appname returns the name passed to Init, or "".
func (s *Session) Appname() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appname
}

// State returns the lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Modes returns the mode registry for registration and lookup. Mode
// switches must go through SetMode, which clears the input buffer
// around inputbar transitions; Registry.Set bypasses that.
func (s *Session) Modes() *mode.Registry {
	return s.modes
}

// Bindings returns the binding registry.
func (s *Session) Bindings() *binding.Registry {
	return s.bindings
}

// Commands returns the command registry.
func (s *Session) Commands() *command.Registry {
	return s.commands
}

// Settings returns the settings registry.
func (s *Session) Settings() *settings.Registry {
	return s.options
}

// History returns the command history, or nil before Init.
func (s *Session) History() *history.History {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hist
}

// Notifier returns the notification service.
func (s *Session) Notifier() *notify.Service {
	return s.notifier
}

// Log returns the session logger, or nil before Init when none was
// configured.
func (s *Session) Log() *ulog.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.log
}

// SetView stores the externally owned view handle. The core never
// dereferences it.
func (s *Session) SetView(view any) error {
	if err := s.requireAlive(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
	return nil
}

// View returns the stored view handle, which may be nil.
func (s *Session) View() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SetUserData stores the opaque per-session user data slot.
func (s *Session) SetUserData(data any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userData = data
}

// UserData returns the user data slot.
func (s *Session) UserData() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userData
}

// SetWindowTitle delegates to the external window chrome.
func (s *Session) SetWindowTitle(title string) error {
	if err := s.requireInitialized(); err != nil {
		return err
	}
	s.mu.RLock()
	chrome := s.chrome
	s.mu.RUnlock()
	if chrome == nil {
		return ErrNoWindowChrome
	}
	return chrome.SetTitle(title)
}

// SetWindowIcon delegates to the external window chrome.
func (s *Session) SetWindowIcon(name string) error {
	if err := s.requireInitialized(); err != nil {
		return err
	}
	s.mu.RLock()
	chrome := s.chrome
	s.mu.RUnlock()
	if chrome == nil {
		return ErrNoWindowChrome
	}
	return chrome.SetIcon(name)
}

// Template returns the styling template.
func (s *Session) Template() *template.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tmpl
}

// SetTemplate replaces the styling template. When initVariables is
// set, the session's default variables are declared on the new
// template and seeded with current values.
func (s *Session) SetTemplate(t *template.Template, initVariables bool) error {
	if err := s.requireAlive(); err != nil {
		return err
	}
	if t == nil {
		return ErrNilTemplate
	}

	s.mu.Lock()
	s.tmpl = t
	appname := s.appname
	current := s.modes.Name(s.modes.Get())
	s.mu.Unlock()

	if initVariables {
		_ = t.AddVariable("appname")
		_ = t.AddVariable("mode")
		_ = t.SetVariable("appname", appname)
		_ = t.SetVariable("mode", current)
	}
	return nil
}

// Notify delivers a leveled message through the status sink. Unknown
// levels are normalized to info.
func (s *Session) Notify(level notify.Level, message string) {
	s.notifier.Notify(level, message)
}

// NotifyDesktop delivers a message through the external desktop sink.
func (s *Session) NotifyDesktop(summary, body string) {
	s.notifier.NotifyDesktop(summary, body)
}

func (s *Session) requireInitialized() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.state {
	case StateDestroyed:
		return ErrDestroyed
	case StateUninitialized:
		return ErrNotInitialized
	}
	return nil
}

// requireAlive permits operations in Uninitialized and Initialized.
func (s *Session) requireAlive() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == StateDestroyed {
		return ErrDestroyed
	}
	return nil
}

func (s *Session) debugf(msg string, args ...any) {
	s.mu.RLock()
	log := s.log
	s.mu.RUnlock()
	if log != nil {
		log.Debug(msg, args...)
	}
}

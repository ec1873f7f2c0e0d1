package session

import (
	"fmt"
	"strings"

	"github.com/dshills/uishell/internal/binding"
	"github.com/dshills/uishell/internal/command"
	"github.com/dshills/uishell/internal/completion"
	"github.com/dshills/uishell/internal/history"
	"github.com/dshills/uishell/internal/input/key"
	"github.com/dshills/uishell/internal/settings"
	"github.com/dshills/uishell/internal/ulog"
)

// Init transitions the session from Uninitialized to Initialized. It
// wires the logger, reads the history store when one was configured,
// registers the default settings, the built-in "set" command and the
// default inputbar shortcuts. On failure the session stays
// Uninitialized.
func (s *Session) Init(appname string, opts ...Option) error {
	s.mu.Lock()
	switch s.state {
	case StateDestroyed:
		s.mu.Unlock()
		return ErrDestroyed
	case StateInitialized:
		s.mu.Unlock()
		return ErrAlreadyInitialized
	}
	if appname == "" {
		appname = "uishell"
	}
	s.appname = appname
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = ulog.Default(appname)
	}
	io := s.historyIO
	s.mu.Unlock()

	// The history store is the one external resource init acquires.
	if io != nil {
		if _, err := io.Read(); err != nil {
			return fmt.Errorf("session: acquiring history store: %w", err)
		}
	}

	s.mu.Lock()
	s.hist = history.New(io)
	s.state = StateInitialized
	s.mu.Unlock()

	s.registerDefaultSettings()
	s.registerDefaultCommands()
	s.registerDefaultInputbarShortcuts()

	s.debugf("session %s initialized as %q", s.id, appname)
	return nil
}

// Destroy transitions the session to Destroyed from any prior state.
// Every registry entry and externally supplied closure is released
// without being invoked. A second Destroy fails with ErrDestroyed.
func (s *Session) Destroy() error {
	s.mu.Lock()
	if s.state == StateDestroyed {
		s.mu.Unlock()
		return ErrDestroyed
	}
	s.state = StateDestroyed
	s.buffer = nil
	s.view = nil
	s.chrome = nil
	s.presenter = nil
	s.userData = nil
	s.onBufferChanged = nil
	s.onUnknownCommand = nil
	s.dialog = nil
	s.historyIO = nil
	s.mu.Unlock()

	s.bindings.Clear()
	s.commands.Clear()
	s.options.Clear()

	s.debugf("session %s destroyed", s.id)
	return nil
}

func (s *Session) registerDefaultSettings() {
	_ = s.options.Add("autohide-inputbar", settings.TypeBool, false, false,
		"Hide the inputbar when it is not in use", nil)
	_ = s.options.Add("hide-statusbar", settings.TypeBool, false, false,
		"Hide the statusbar", nil)
	_ = s.options.Add("n-completion-items", settings.TypeInt, 15, false,
		"Number of completion items shown at once", nil)
}

func (s *Session) registerDefaultCommands() {
	_ = s.commands.Register(command.Command{
		Name:        "set",
		Description: "Set a runtime setting",
		Handler: func(args []string) error {
			switch len(args) {
			case 1:
				// Bare boolean form: "set name" enables it.
				return s.options.SetFromString(args[0], "true")
			case 2:
				return s.options.SetFromString(args[0], args[1])
			default:
				return fmt.Errorf("set: expected name and value, got %d arguments", len(args))
			}
		},
		Completer: func(current string) []string {
			return completion.FilterPrefix(s.options.Names(), current)
		},
	})
}

func (s *Session) registerDefaultInputbarShortcuts() {
	abort := func(binding.Argument, int) error {
		return s.AbortInputbar()
	}
	_ = s.bindings.BindInputbarShortcut(key.NewSpecialEvent(key.KeyEscape, key.ModNone),
		abort, binding.Argument{})

	_ = s.bindings.BindInputbarShortcut(key.NewSpecialEvent(key.KeyUp, key.ModNone),
		func(binding.Argument, int) error { return s.RecallPrevious() }, binding.Argument{})
	_ = s.bindings.BindInputbarShortcut(key.NewSpecialEvent(key.KeyDown, key.ModNone),
		func(binding.Argument, int) error { return s.RecallNext() }, binding.Argument{})
}

// CompleteCommand builds the completion for the current inputbar
// content: command names while the first token is being typed, the
// command's own completer afterwards.
func (s *Session) CompleteCommand(input string) *completion.Completion {
	comp := completion.New()
	name, args := command.Tokenize(input)

	if len(args) == 0 && !strings.HasSuffix(input, " ") {
		group := comp.AddGroup("Commands")
		for _, cmd := range s.commands.Commands() {
			if strings.HasPrefix(cmd.Name, name) {
				group.Add(cmd.Name, cmd.Description)
			}
		}
		return comp
	}

	cmd, err := s.commands.Resolve(name)
	if err != nil || cmd.Completer == nil {
		return comp
	}
	current := ""
	if len(args) > 0 {
		current = args[len(args)-1]
	}
	group := comp.AddGroup(cmd.Name)
	for _, candidate := range cmd.Completer(current) {
		group.Add(candidate, "")
	}
	return comp
}

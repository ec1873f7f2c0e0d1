// Package main is a small embedding application for the uishell
// interaction core: a tcell-backed window with a statusline and an
// inputbar, a handful of shortcuts and commands, and nothing else.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	tc "github.com/gdamore/tcell/v2"

	"github.com/dshills/uishell/internal/binding"
	"github.com/dshills/uishell/internal/command"
	"github.com/dshills/uishell/internal/config"
	"github.com/dshills/uishell/internal/history"
	"github.com/dshills/uishell/internal/input/key"
	"github.com/dshills/uishell/internal/notify"
	"github.com/dshills/uishell/internal/script"
	"github.com/dshills/uishell/internal/session"
	"github.com/dshills/uishell/internal/ulog"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var scriptPath string
	var historyPath string
	var logLevel string

	flag.StringVar(&configPath, "config", "", "Path to an rc configuration file")
	flag.StringVar(&scriptPath, "script", "", "Path to a Lua rc script")
	flag.StringVar(&historyPath, "history", "", "Path to the persistent command history")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log := ulog.Default("uishell")
	log.SetLevel(ulog.ParseLevel(logLevel))

	screen, err := tc.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	ui := &terminalUI{screen: screen}

	opts := []session.Option{
		session.WithLogger(log),
		session.WithStatusSink(ui),
		session.WithInputbarPresenter(ui),
	}
	if historyPath != "" {
		store, err := history.OpenBoltStore(historyPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening history: %v\n", err)
			return 1
		}
		defer store.Close()
		opts = append(opts, session.WithHistoryIO(store))
	}

	s := session.New()
	if err := s.Init("uishell", opts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing session: %v\n", err)
		return 1
	}
	defer s.Destroy()
	ui.session = s

	quit := make(chan struct{})
	var quitOnce sync.Once
	requestQuit := func() { quitOnce.Do(func() { close(quit) }) }
	registerDefaults(s, ui, requestQuit)

	parser := config.NewParser(s)
	registerRCFunctions(parser, s, requestQuit)
	if configPath != "" {
		if err := parser.ParseFile(configPath); err != nil {
			log.Warn("config: %v", err)
		}
	}
	if scriptPath != "" {
		engine := script.NewEngine(s, parser)
		defer engine.Close()
		if err := engine.RunFile(scriptPath); err != nil {
			log.Warn("script: %v", err)
		}
	}

	ui.draw()
	return ui.loop(quit)
}

// registerDefaults wires the demo's shortcuts and commands.
func registerDefaults(s *session.Session, ui *terminalUI, requestQuit func()) {
	normal := s.Modes().Normal()

	_ = s.Bindings().BindShortcut(normal, key.NewRuneEvent('q', key.ModNone),
		func(binding.Argument, int) error {
			requestQuit()
			return nil
		}, binding.Argument{})

	_ = s.Bindings().BindShortcut(normal, key.NewRuneEvent(':', key.ModNone),
		func(binding.Argument, int) error { return s.FocusInputbar(":") }, binding.Argument{})

	_ = s.Commands().Register(command.Command{
		Name:         "quit",
		Abbreviation: "q",
		Description:  "Quit the application",
		Handler: func([]string) error {
			requestQuit()
			return nil
		},
	})
	_ = s.Commands().Register(command.Command{
		Name:        "echo",
		Description: "Show a message in the status area",
		Handler: func(args []string) error {
			msg := ""
			for i, a := range args {
				if i > 0 {
					msg += " "
				}
				msg += a
			}
			s.Notify(notify.Info, msg)
			return nil
		},
	})

	s.SetUnknownCommandHandler(session.UnknownCommandFunc(func(s *session.Session, input string) bool {
		s.Notify(notify.Error, fmt.Sprintf("not a command: %s", input))
		return true
	}))
	s.SetBufferChangedHandler(session.BufferChangedFunc(func(*session.Session) {
		ui.draw()
	}))
}

// registerRCFunctions names the shortcut functions rc files can map.
func registerRCFunctions(p *config.Parser, s *session.Session, requestQuit func()) {
	_ = p.RegisterShortcut("quit", func(binding.Argument, int) error {
		requestQuit()
		return nil
	})
	_ = p.RegisterShortcut("focus_inputbar", func(arg binding.Argument, _ int) error {
		prompt := ":"
		if sdata, ok := arg.Data.(string); ok && sdata != "" {
			prompt = sdata
		}
		return s.FocusInputbar(prompt)
	})
}

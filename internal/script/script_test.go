package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/uishell/internal/binding"
	"github.com/dshills/uishell/internal/config"
	"github.com/dshills/uishell/internal/input/key"
	"github.com/dshills/uishell/internal/notify"
	"github.com/dshills/uishell/internal/session"
	"github.com/dshills/uishell/internal/settings"
)

func newScriptSession(t *testing.T, opts ...session.Option) *session.Session {
	t.Helper()
	s := session.New()
	if err := s.Init("test", opts...); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() { _ = s.Destroy() })
	return s
}

func newEngine(t *testing.T, s *session.Session, parser *config.Parser) *Engine {
	t.Helper()
	e := NewEngine(s, parser)
	t.Cleanup(e.Close)
	return e
}

func TestRunString_Set(t *testing.T) {
	s := newScriptSession(t)
	_ = s.Settings().Add("font", settings.TypeString, "monospace", false, "", nil)
	_ = s.Settings().Add("zoom", settings.TypeFloat, 1.0, false, "", nil)
	e := newEngine(t, s, nil)

	err := e.RunString(`
shell.set("font", "serif 12")
shell.set("zoom", 2.5)
shell.set("n-completion-items", 20)
shell.set("hide-statusbar", true)
`)
	if err != nil {
		t.Fatalf("RunString error: %v", err)
	}
	if got := s.Settings().String("font", ""); got != "serif 12" {
		t.Errorf("font = %q, want %q", got, "serif 12")
	}
	if v, _ := s.Settings().Get("zoom"); v != 2.5 {
		t.Errorf("zoom = %v, want 2.5", v)
	}
	if got := s.Settings().Int("n-completion-items", 0); got != 20 {
		t.Errorf("n-completion-items = %d, want 20", got)
	}
	if !s.Settings().Bool("hide-statusbar", false) {
		t.Error("hide-statusbar = false, want true")
	}
}

func TestRunString_SetUnknown(t *testing.T) {
	e := newEngine(t, newScriptSession(t), nil)
	if err := e.RunString(`shell.set("nosuchsetting", 1)`); err == nil {
		t.Error("set on unknown setting succeeded, want error")
	}
}

func TestRunString_Command(t *testing.T) {
	s := newScriptSession(t)
	e := newEngine(t, s, nil)

	err := e.RunString(`
shell.command("greet", function(name)
  shell.notify("info", "hello " .. name)
end, "g")
`)
	if err != nil {
		t.Fatalf("RunString error: %v", err)
	}

	sink := &recordingSink{}
	s.Notifier().SetStatusSink(sink)
	if err := s.Commands().Submit("g world"); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if len(sink.messages) != 1 || sink.messages[0] != "hello world" {
		t.Errorf("messages = %v, want [hello world]", sink.messages)
	}
}

func TestRunString_Map(t *testing.T) {
	s := newScriptSession(t)
	parser := config.NewParser(s)

	fired := false
	_ = parser.RegisterShortcut("quit", func(binding.Argument, int) error {
		fired = true
		return nil
	})
	e := newEngine(t, s, parser)

	if err := e.RunString(`shell.map("q", "quit")`); err != nil {
		t.Fatalf("RunString error: %v", err)
	}
	handled, err := s.Bindings().DispatchKey(s.Modes().Normal(), key.NewRuneEvent('q', key.ModNone), 0)
	if err != nil {
		t.Fatalf("DispatchKey error: %v", err)
	}
	if !handled || !fired {
		t.Error("scripted mapping did not dispatch")
	}
}

func TestRunString_MapWithoutParser(t *testing.T) {
	e := newEngine(t, newScriptSession(t), nil)
	if err := e.RunString(`shell.map("q", "quit")`); err == nil {
		t.Error("map without parser succeeded, want error")
	}
}

func TestRunString_Mode(t *testing.T) {
	s := newScriptSession(t)
	e := newEngine(t, s, nil)

	if err := e.RunString(`visual = shell.mode("visual")`); err != nil {
		t.Fatalf("RunString error: %v", err)
	}
	if _, ok := s.Modes().Lookup("visual"); !ok {
		t.Error("scripted mode was not registered")
	}
}

func TestRunFile(t *testing.T) {
	s := newScriptSession(t)
	e := newEngine(t, s, nil)

	path := filepath.Join(t.TempDir(), "rc.lua")
	if err := os.WriteFile(path, []byte(`shell.set("hide-statusbar", true)`), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	if err := e.RunFile(path); err != nil {
		t.Fatalf("RunFile error: %v", err)
	}
	if !s.Settings().Bool("hide-statusbar", false) {
		t.Error("hide-statusbar = false, want true")
	}
}

func TestRunString_SandboxedLibraries(t *testing.T) {
	e := newEngine(t, newScriptSession(t), nil)
	if err := e.RunString(`os.exit(1)`); err == nil {
		t.Error("os library is reachable from scripts")
	}
	if err := e.RunString(`io.open("/etc/passwd")`); err == nil {
		t.Error("io library is reachable from scripts")
	}
}

type recordingSink struct {
	messages []string
}

func (r *recordingSink) ShowNotification(_ notify.Level, message string) error {
	r.messages = append(r.messages, message)
	return nil
}

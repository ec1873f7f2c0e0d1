package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/uishell/internal/binding"
	"github.com/dshills/uishell/internal/input/key"
	"github.com/dshills/uishell/internal/session"
	"github.com/dshills/uishell/internal/settings"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	s := session.New()
	if err := s.Init("test"); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() { _ = s.Destroy() })
	return s
}

func TestParseLine_Set(t *testing.T) {
	s := newTestSession(t)
	_ = s.Settings().Add("font", settings.TypeString, "monospace", false, "", nil)
	p := NewParser(s)

	if err := p.ParseLine("set font serif"); err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	if got := s.Settings().String("font", ""); got != "serif" {
		t.Errorf("font = %q, want %q", got, "serif")
	}

	// A lone name means boolean true.
	if err := p.ParseLine("set autohide-inputbar"); err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	if !s.Settings().Bool("autohide-inputbar", false) {
		t.Error("autohide-inputbar = false, want true")
	}
}

func TestParseLine_CommentsAndBlanks(t *testing.T) {
	p := NewParser(newTestSession(t))
	for _, line := range []string{"", "   ", "# set font serif", "  # indented comment"} {
		if err := p.ParseLine(line); err != nil {
			t.Errorf("ParseLine(%q) error: %v", line, err)
		}
	}
}

func TestParseLine_UnknownDirective(t *testing.T) {
	p := NewParser(newTestSession(t))
	err := p.ParseLine("frobnicate all")
	var unk *UnknownDirectiveError
	if !errors.As(err, &unk) {
		t.Fatalf("error = %v, want UnknownDirectiveError", err)
	}
	if unk.Directive != "frobnicate" {
		t.Errorf("Directive = %q, want %q", unk.Directive, "frobnicate")
	}
}

func TestParseLine_Map(t *testing.T) {
	s := newTestSession(t)
	p := NewParser(s)

	var gotArg binding.Argument
	_ = p.RegisterShortcut("scroll", func(arg binding.Argument, _ int) error {
		gotArg = arg
		return nil
	})
	_ = p.RegisterArgument("down", 2)

	if err := p.ParseLine("map j scroll down"); err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}

	normal := s.Modes().Normal()
	handled, err := s.Bindings().DispatchKey(normal, key.NewRuneEvent('j', key.ModNone), 0)
	if err != nil {
		t.Fatalf("DispatchKey error: %v", err)
	}
	if !handled {
		t.Fatal("mapped key did not dispatch")
	}
	if gotArg.N != 2 {
		t.Errorf("arg.N = %d, want 2", gotArg.N)
	}
}

func TestParseLine_MapModePrefix(t *testing.T) {
	s := newTestSession(t)
	p := NewParser(s)
	_ = p.RegisterShortcut("abort", func(binding.Argument, int) error { return nil })

	if err := p.ParseLine("map [inputbar] <C-c> abort"); err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}

	ev := key.NewRuneEvent('c', key.ModCtrl)
	if handled, _ := s.Bindings().DispatchKey(s.Modes().Inputbar(), ev, 0); !handled {
		t.Error("binding missing from inputbar mode")
	}
	if handled, _ := s.Bindings().DispatchKey(s.Modes().Normal(), ev, 0); handled {
		t.Error("binding leaked into normal mode")
	}
}

func TestParseLine_MapUnknownMode(t *testing.T) {
	p := NewParser(newTestSession(t))
	_ = p.RegisterShortcut("abort", func(binding.Argument, int) error { return nil })

	if err := p.ParseLine("map [nosuchmode] q abort"); err == nil {
		t.Error("map with unknown mode succeeded, want error")
	}
}

func TestParseLine_MapStringArgument(t *testing.T) {
	s := newTestSession(t)
	p := NewParser(s)

	var gotArg binding.Argument
	_ = p.RegisterShortcut("exec", func(arg binding.Argument, _ int) error {
		gotArg = arg
		return nil
	})

	if err := p.ParseLine("map x exec reload"); err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	if _, err := s.Bindings().DispatchKey(s.Modes().Normal(), key.NewRuneEvent('x', key.ModNone), 0); err != nil {
		t.Fatalf("DispatchKey error: %v", err)
	}
	if gotArg.Data != "reload" {
		t.Errorf("arg.Data = %v, want %q", gotArg.Data, "reload")
	}
}

func TestParseLine_MapUnknownShortcut(t *testing.T) {
	p := NewParser(newTestSession(t))
	err := p.ParseLine("map q nosuchfunction")
	var unk *UnknownShortcutError
	if !errors.As(err, &unk) {
		t.Errorf("error = %v, want UnknownShortcutError", err)
	}
}

func TestParseLine_Unmap(t *testing.T) {
	s := newTestSession(t)
	p := NewParser(s)
	_ = p.RegisterShortcut("quit", func(binding.Argument, int) error { return nil })

	if err := p.ParseLine("map q quit"); err != nil {
		t.Fatalf("map error: %v", err)
	}
	if err := p.ParseLine("unmap q"); err != nil {
		t.Fatalf("unmap error: %v", err)
	}
	if handled, _ := s.Bindings().DispatchKey(s.Modes().Normal(), key.NewRuneEvent('q', key.ModNone), 0); handled {
		t.Error("unmapped key still dispatches")
	}
}

func TestAddHandle(t *testing.T) {
	p := NewParser(newTestSession(t))

	var got []string
	if err := p.AddHandle("open", func(args []string) error {
		got = args
		return nil
	}); err != nil {
		t.Fatalf("AddHandle error: %v", err)
	}
	if err := p.ParseLine("open a.txt b.txt"); err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	if len(got) != 2 || got[0] != "a.txt" {
		t.Errorf("args = %v, want [a.txt b.txt]", got)
	}

	err := p.AddHandle("set", func([]string) error { return nil })
	var dup *DuplicateHandleError
	if !errors.As(err, &dup) {
		t.Errorf("AddHandle(set) error = %v, want DuplicateHandleError", err)
	}
}

func TestParseFile_CollectsProblems(t *testing.T) {
	s := newTestSession(t)
	_ = s.Settings().Add("font", settings.TypeString, "monospace", false, "", nil)
	p := NewParser(s)
	_ = p.RegisterShortcut("quit", func(binding.Argument, int) error { return nil })

	rc := strings.Join([]string{
		"# rc file",
		"set font serif",
		"bogus directive",
		"map q quit",
	}, "\n")
	path := filepath.Join(t.TempDir(), "rc")
	if err := os.WriteFile(path, []byte(rc), 0o644); err != nil {
		t.Fatalf("writing rc: %v", err)
	}

	err := p.ParseFile(path)
	if err == nil {
		t.Fatal("ParseFile with a bad line succeeded, want error")
	}
	if !strings.Contains(err.Error(), ":3:") {
		t.Errorf("error %q does not name the failing line", err)
	}

	// Lines after the failure were still applied.
	if got := s.Settings().String("font", ""); got != "serif" {
		t.Errorf("font = %q, want %q", got, "serif")
	}
	if handled, _ := s.Bindings().DispatchKey(s.Modes().Normal(), key.NewRuneEvent('q', key.ModNone), 0); !handled {
		t.Error("map after failing line was not applied")
	}
}

func TestParseLine_Include(t *testing.T) {
	s := newTestSession(t)
	_ = s.Settings().Add("font", settings.TypeString, "monospace", false, "", nil)
	p := NewParser(s)

	dir := t.TempDir()
	inner := filepath.Join(dir, "inner.rc")
	if err := os.WriteFile(inner, []byte("set font serif\n"), 0o644); err != nil {
		t.Fatalf("writing rc: %v", err)
	}

	if err := p.ParseLine("include " + inner); err != nil {
		t.Fatalf("include error: %v", err)
	}
	if got := s.Settings().String("font", ""); got != "serif" {
		t.Errorf("font = %q, want %q", got, "serif")
	}
}

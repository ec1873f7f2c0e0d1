package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/uishell/internal/settings"
)

func newOptionRegistry(t *testing.T) *settings.Registry {
	t.Helper()
	r := settings.NewRegistry()
	_ = r.Add("wrap", settings.TypeBool, false, false, "", nil)
	_ = r.Add("width", settings.TypeInt, 80, false, "", nil)
	_ = r.Add("zoom", settings.TypeFloat, 1.0, false, "", nil)
	_ = r.Add("font", settings.TypeString, "monospace", false, "", nil)
	return r
}

func writeOptionFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadOptions_TOML(t *testing.T) {
	reg := newOptionRegistry(t)
	path := writeOptionFile(t, "options.toml", `
wrap = true
width = 132
zoom = 2.5
font = "serif 12"
`)

	if err := LoadOptions(path, reg); err != nil {
		t.Fatalf("LoadOptions error: %v", err)
	}
	if !reg.Bool("wrap", false) {
		t.Error("wrap = false, want true")
	}
	if got := reg.Int("width", 0); got != 132 {
		t.Errorf("width = %d, want 132", got)
	}
	if v, _ := reg.Get("zoom"); v != 2.5 {
		t.Errorf("zoom = %v, want 2.5", v)
	}
	if got := reg.String("font", ""); got != "serif 12" {
		t.Errorf("font = %q, want %q", got, "serif 12")
	}
}

func TestLoadOptions_YAML(t *testing.T) {
	reg := newOptionRegistry(t)
	path := writeOptionFile(t, "options.yaml", `
wrap: true
width: 132
font: serif 12
`)

	if err := LoadOptions(path, reg); err != nil {
		t.Fatalf("LoadOptions error: %v", err)
	}
	if !reg.Bool("wrap", false) {
		t.Error("wrap = false, want true")
	}
	if got := reg.Int("width", 0); got != 132 {
		t.Errorf("width = %d, want 132", got)
	}
	if got := reg.String("font", ""); got != "serif 12" {
		t.Errorf("font = %q, want %q", got, "serif 12")
	}
}

func TestLoadOptions_UnknownSettingReported(t *testing.T) {
	reg := newOptionRegistry(t)
	path := writeOptionFile(t, "options.toml", `
width = 132
nosuchsetting = 1
`)

	err := LoadOptions(path, reg)
	if err == nil {
		t.Fatal("LoadOptions with unknown setting succeeded, want error")
	}
	// The known setting is applied regardless.
	if got := reg.Int("width", 0); got != 132 {
		t.Errorf("width = %d, want 132", got)
	}
}

func TestLoadOptions_UnsupportedFormat(t *testing.T) {
	reg := newOptionRegistry(t)
	path := writeOptionFile(t, "options.ini", "width = 132\n")

	err := LoadOptions(path, reg)
	var unsup *UnsupportedFormatError
	if !errors.As(err, &unsup) {
		t.Errorf("LoadOptions error = %v, want UnsupportedFormatError", err)
	}
}

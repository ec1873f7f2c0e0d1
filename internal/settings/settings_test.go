package settings

import (
	"errors"
	"testing"
)

func TestAdd_Validation(t *testing.T) {
	r := NewRegistry()

	if err := r.Add("", TypeBool, true, false, "", nil); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Add(empty name) error = %v, want ErrEmptyName", err)
	}
	if err := r.Add("width", TypeInt, "oops", false, "", nil); err == nil {
		t.Error("Add with mismatched default succeeded, want error")
	}
}

func TestAdd_Duplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Add("width", TypeInt, 80, false, "", nil); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	err := r.Add("width", TypeInt, 100, false, "", nil)
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Errorf("duplicate Add error = %v, want DuplicateError", err)
	}
}

func TestSetGet_Typed(t *testing.T) {
	r := NewRegistry()
	_ = r.Add("wrap", TypeBool, false, false, "", nil)
	_ = r.Add("width", TypeInt, 80, false, "", nil)
	_ = r.Add("zoom", TypeFloat, 1.0, false, "", nil)
	_ = r.Add("font", TypeString, "monospace", false, "", nil)

	if err := r.Set("width", 120); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if got := r.Int("width", 0); got != 120 {
		t.Errorf("Int(width) = %d, want 120", got)
	}

	if err := r.Set("width", "wide"); err == nil {
		t.Error("Set with wrong type succeeded, want error")
	}
	if got := r.Int("width", 0); got != 120 {
		t.Errorf("Int(width) after failed Set = %d, want 120", got)
	}

	if err := r.Set("missing", 1); err != nil {
		var unk *UnknownSettingError
		if !errors.As(err, &unk) {
			t.Errorf("Set(missing) error = %v, want UnknownSettingError", err)
		}
	} else {
		t.Error("Set(missing) succeeded, want error")
	}
}

func TestAccessors_Fallback(t *testing.T) {
	r := NewRegistry()
	_ = r.Add("font", TypeString, "monospace", false, "", nil)

	if got := r.Bool("missing", true); got != true {
		t.Errorf("Bool fallback = %v, want true", got)
	}
	if got := r.Int("font", 7); got != 7 {
		t.Errorf("Int on string setting = %d, want fallback 7", got)
	}
	if got := r.String("font", ""); got != "monospace" {
		t.Errorf("String(font) = %q, want %q", got, "monospace")
	}
}

func TestSetFromString(t *testing.T) {
	r := NewRegistry()
	_ = r.Add("wrap", TypeBool, false, false, "", nil)
	_ = r.Add("width", TypeInt, 80, false, "", nil)
	_ = r.Add("zoom", TypeFloat, 1.0, false, "", nil)
	_ = r.Add("font", TypeString, "monospace", false, "", nil)

	tests := []struct {
		name    string
		raw     string
		want    any
		wantErr bool
	}{
		{"wrap", "true", true, false},
		{"wrap", "nope", nil, true},
		{"width", "132", 132, false},
		{"width", "1.5", nil, true},
		{"zoom", "2.5", 2.5, false},
		{"font", "serif 12", "serif 12", false},
		{"missing", "1", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name+"="+tt.raw, func(t *testing.T) {
			err := r.SetFromString(tt.name, tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("SetFromString succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("SetFromString error: %v", err)
			}
			if got, _ := r.Get(tt.name); got != tt.want {
				t.Errorf("Get(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestChangeCallback(t *testing.T) {
	r := NewRegistry()

	var gotName string
	var gotValue any
	_ = r.Add("width", TypeInt, 80, false, "", func(name string, value any) {
		gotName = name
		gotValue = value
	})

	if err := r.Set("width", 100); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if gotName != "width" || gotValue != 100 {
		t.Errorf("callback saw (%q, %v), want (width, 100)", gotName, gotValue)
	}
}

func TestInitOnly_Freeze(t *testing.T) {
	r := NewRegistry()
	_ = r.Add("backend", TypeString, "tcell", true, "", nil)

	// Writable during initialization.
	if err := r.Set("backend", "test"); err != nil {
		t.Fatalf("Set before Freeze error: %v", err)
	}

	r.Freeze()
	err := r.Set("backend", "other")
	var initOnly *InitOnlyError
	if !errors.As(err, &initOnly) {
		t.Fatalf("Set after Freeze error = %v, want InitOnlyError", err)
	}
	if got := r.String("backend", ""); got != "test" {
		t.Errorf("value after rejected write = %q, want %q", got, "test")
	}

	// Ordinary settings stay writable after Freeze.
	_ = r.Add("font", TypeString, "monospace", false, "", nil)
	if err := r.Set("font", "serif"); err != nil {
		t.Errorf("Set on regular setting after Freeze error: %v", err)
	}
}

func TestFind(t *testing.T) {
	r := NewRegistry()
	_ = r.Add("width", TypeInt, 80, false, "window width in columns", nil)

	s, ok := r.Find("width")
	if !ok {
		t.Fatal("Find(width) = miss")
	}
	if s.Type != TypeInt || s.Description != "window width in columns" {
		t.Errorf("setting = %+v", s)
	}
	if s.Value() != 80 {
		t.Errorf("Value = %v, want 80", s.Value())
	}
	if _, ok := r.Find("missing"); ok {
		t.Error("Find(missing) = hit")
	}
}

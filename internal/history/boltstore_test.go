package history

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestBoltStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := OpenBoltStore(path)
	if err != nil {
		t.Fatalf("OpenBoltStore error: %v", err)
	}
	for _, s := range []string{"open a.txt", "quit", "open a.txt"} {
		if err := store.Append(s); err != nil {
			t.Fatalf("Append(%q) error: %v", s, err)
		}
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	// Reopen and confirm insertion order survived.
	store, err = OpenBoltStore(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer store.Close()

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	want := []string{"open a.txt", "quit", "open a.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read = %v, want %v", got, want)
	}
}

func TestBoltStore_BacksHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := OpenBoltStore(path)
	if err != nil {
		t.Fatalf("OpenBoltStore error: %v", err)
	}
	defer store.Close()

	h := New(store)
	h.Append("first")
	h.Append("second")

	reloaded := New(store)
	if got, ok := reloaded.Previous(); !ok || got != "second" {
		t.Errorf("Previous = (%q, %v), want (%q, true)", got, ok, "second")
	}
}

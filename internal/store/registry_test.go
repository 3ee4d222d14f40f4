package store

import (
	"errors"
	"path/filepath"
	"testing"

	huerr "github.com/amterp/hue/internal/errors"
	"github.com/amterp/hue/internal/model"
)

// memoryStore is an in-memory SettingsStore.
type memoryStore struct {
	file    *model.PaletteFile
	saveErr error
	saves   int
}

func (m *memoryStore) Load() (*model.PaletteFile, error) {
	if m.file == nil {
		return &model.PaletteFile{}, nil
	}
	return m.file, nil
}

func (m *memoryStore) Save(f *model.PaletteFile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.file = f
	return nil
}

func (m *memoryStore) EnsureExists() error { return nil }
func (m *memoryStore) Path() string        { return "memory" }

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(NewFileStore(filepath.Join(t.TempDir(), "palettes.toml")))
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return r
}

func TestRegistry_AddAndLookup(t *testing.T) {
	r := newTestRegistry(t)

	if err := r.AddCustom("Brand", []string{"#ca0b03", "#a50258"}); err != nil {
		t.Fatalf("AddCustom failed: %v", err)
	}

	for _, query := range []string{"Brand", "brand", "BRAND"} {
		e, err := r.Lookup(query)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", query, err)
			continue
		}
		if e.Name != "Brand" || e.Builtin || len(e.Colors) != 2 {
			t.Errorf("Lookup(%q) = %+v", query, e)
		}
	}

	// Survives a reload from disk.
	r2, err := NewRegistry(NewFileStore(r.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if !r2.Exists("brand") {
		t.Error("custom palette not persisted")
	}
}

func TestRegistry_RejectsCollisions(t *testing.T) {
	r := newTestRegistry(t)

	for _, name := range []string{"Yellowbrick", "SET1", "accent", "ACCENT-8"} {
		err := r.AddCustom(name, []string{"#ffffff"})
		if !huerr.IsAlreadyExists(err) {
			t.Errorf("AddCustom(%q) expected already exists, got %v", name, err)
		}
	}

	if err := r.AddCustom("mine", []string{"#ffffff"}); err != nil {
		t.Fatal(err)
	}
	if err := r.AddCustom("MINE", []string{"#000000"}); !huerr.IsAlreadyExists(err) {
		t.Errorf("expected fold collision with custom name, got %v", err)
	}
}

func TestRegistry_AddValidates(t *testing.T) {
	r := newTestRegistry(t)

	if err := r.AddCustom("", []string{"#ffffff"}); !huerr.IsValidationError(err) {
		t.Errorf("empty name: got %v", err)
	}
	if err := r.AddCustom("none", nil); !huerr.IsInvalidColor(err) {
		t.Errorf("empty colors: got %v", err)
	}
	if err := r.AddCustom("bad", []string{"#ffffff", "chartreuse-ish"}); !huerr.IsInvalidColor(err) {
		t.Errorf("bad color: got %v", err)
	}
	if r.Exists("bad") {
		t.Error("rejected palette must not be stored")
	}
}

func TestRegistry_ExactMatchWinsOverFold(t *testing.T) {
	r := newTestRegistry(t)

	e, err := r.Lookup("Set1-9")
	if err != nil {
		t.Fatal(err)
	}
	if e.Name != "Set1-9" || !e.Builtin {
		t.Errorf("Lookup(Set1-9) = %+v", e)
	}
}

func TestRegistry_ReplaceAndRemove(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.AddCustom("brand", []string{"#ffffff"}); err != nil {
		t.Fatal(err)
	}

	if err := r.ReplaceCustom("BRAND", []string{"#000000", "#111111"}); err != nil {
		t.Fatalf("ReplaceCustom failed: %v", err)
	}
	e, _ := r.Lookup("brand")
	if len(e.Colors) != 2 || e.Colors[0] != "#000000" {
		t.Errorf("after replace: %v", e.Colors)
	}

	name, err := r.RemoveCustom("Brand")
	if err != nil {
		t.Fatalf("RemoveCustom failed: %v", err)
	}
	if name != "brand" {
		t.Errorf("removed %q, want brand", name)
	}
	if r.Exists("brand") {
		t.Error("palette still present after remove")
	}

	if _, err := r.RemoveCustom("brand"); !huerr.IsUnknownPalette(err) {
		t.Errorf("second remove: got %v", err)
	}
	if err := r.ReplaceCustom("yellowbrick", []string{"#000000"}); !huerr.IsUnknownPalette(err) {
		t.Errorf("replacing a built-in: got %v", err)
	}
}

func TestRegistry_FailedSaveLeavesStateUnchanged(t *testing.T) {
	mem := &memoryStore{}
	r, err := NewRegistry(mem)
	if err != nil {
		t.Fatal(err)
	}

	mem.saveErr = errors.New("disk full")
	if err := r.AddCustom("brand", []string{"#ffffff"}); err == nil {
		t.Fatal("expected save error")
	}
	if r.Exists("brand") {
		t.Error("palette visible after failed save")
	}
}

func TestRegistry_ReloadRejectsCollidingFile(t *testing.T) {
	f := &model.PaletteFile{}
	f.SetPalette("YellowBrick", []string{"#ffffff"})

	if _, err := NewRegistry(&memoryStore{file: f}); !huerr.IsAlreadyExists(err) {
		t.Errorf("expected already exists, got %v", err)
	}
}

func TestRegistry_ReloadPicksUpChanges(t *testing.T) {
	mem := &memoryStore{}
	r, err := NewRegistry(mem)
	if err != nil {
		t.Fatal(err)
	}

	f := &model.PaletteFile{}
	f.SetPalette("late", []string{"r", "g"})
	mem.file = f

	if r.Exists("late") {
		t.Fatal("registry should not see changes before Reload")
	}
	if err := r.Reload(); err != nil {
		t.Fatal(err)
	}
	if !r.Exists("LATE") {
		t.Error("registry did not pick up reloaded palette")
	}
}

func TestRegistry_NamesIncludeCustom(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.AddCustom("zz-last", []string{"#ffffff"}); err != nil {
		t.Fatal(err)
	}

	names := r.Names()
	if names[len(names)-1] != "zz-last" {
		t.Errorf("last name = %q", names[len(names)-1])
	}
	if len(names) != len(model.Palettes)+len(model.Aliases)+1 {
		t.Errorf("got %d names", len(names))
	}
}

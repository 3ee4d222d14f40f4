package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/hue/internal/model"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("HUE_CONFIG", "")
	t.Setenv("HUE_PALETTE", "")
	t.Setenv("HUE_CODE_PALETTE", "")
	t.Setenv("HUE_HOST", "")
	t.Setenv("HUE_ACCESSIBLE", "")

	env := LoadEnv()
	if env.ConfigPath != "" || env.Palette != "" || env.CodePalette != "" {
		t.Errorf("unexpected values: %+v", env)
	}
	if env.Host != "127.0.0.1" {
		t.Errorf("Host = %q", env.Host)
	}
}

func TestLoadEnv_Accessible(t *testing.T) {
	for value, want := range map[string]bool{"1": true, "true": true, "0": false, "nope": false, "": false} {
		t.Setenv("HUE_ACCESSIBLE", value)
		if got := LoadEnv().Accessible; got != want {
			t.Errorf("HUE_ACCESSIBLE=%q: Accessible = %v, want %v", value, got, want)
		}
	}
}

func TestEnvConfig_Apply(t *testing.T) {
	t.Setenv("HUE_PALETTE", "sns_deep")
	t.Setenv("HUE_CODE_PALETTE", "")

	f := &model.PaletteFile{DefaultPalette: "set1", CodePalette: "accent"}
	LoadEnv().Apply(f)

	if f.DefaultPalette != "sns_deep" {
		t.Errorf("DefaultPalette = %q", f.DefaultPalette)
	}
	if f.CodePalette != "accent" {
		t.Errorf("CodePalette = %q, should be untouched", f.CodePalette)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := LoadDotEnv(dir); err != nil {
		t.Fatalf("missing .env should be fine: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("HUE_CODE_PALETTE=bold\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HUE_CODE_PALETTE", "")
	os.Unsetenv("HUE_CODE_PALETTE")

	if err := LoadDotEnv(dir); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if got := os.Getenv("HUE_CODE_PALETTE"); got != "bold" {
		t.Errorf("HUE_CODE_PALETTE = %q, want bold", got)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.ColorMode != def.ColorMode || cfg.UndoCoalesceMs != def.UndoCoalesceMs {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "color_mode = \"256\"\nundo_coalesce_ms = 250\nsound = true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ColorMode != "256" || cfg.UndoCoalesceMs != 250 || !cfg.Sound {
		t.Fatalf("got %+v", cfg)
	}
	// untouched keys keep defaults
	if cfg.Language != Default().Language {
		t.Fatalf("language %q", cfg.Language)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("color_mode = \"256\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LEETTERM_COLOR_MODE", "truecolor")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ColorMode != "truecolor" {
		t.Fatalf("got %q", cfg.ColorMode)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("color_mode = \"rainbow\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("color_mode = [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.LevelsDir != "levels" {
		t.Errorf("LevelsDir = %q, want levels", cfg.LevelsDir)
	}
	if cfg.DBPath != "~/.tumblesolve/history.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.NoColor {
		t.Error("NoColor should default to false")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `levels_dir: /srv/puzzles
db_path: /tmp/solves.db
no_color: true
display:
  a: 208
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.LevelsDir != "/srv/puzzles" {
		t.Errorf("LevelsDir = %q", cfg.LevelsDir)
	}
	if cfg.DBPath != "/tmp/solves.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if !cfg.NoColor {
		t.Error("NoColor should be true")
	}
	if cfg.Display["a"] != 208 {
		t.Errorf("Display = %v", cfg.Display)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing explicit config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\tnot yaml"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed explicit config")
	}
}

func TestDisplayRunes(t *testing.T) {
	cfg := Config{Display: map[string]int{"a": 39, "bc": 7, "": 1}}
	runes := cfg.DisplayRunes()
	if len(runes) != 1 {
		t.Fatalf("DisplayRunes() = %v, want one entry", runes)
	}
	if runes['a'] != 39 {
		t.Errorf("DisplayRunes()['a'] = %d, want 39", runes['a'])
	}
}

func TestMergeDisplay(t *testing.T) {
	base := map[rune]int{'a': 1, 'b': 2}
	overrides := map[rune]int{'b': 20, 'c': 30}
	merged := MergeDisplay(base, overrides)
	if merged['a'] != 1 || merged['b'] != 20 || merged['c'] != 30 {
		t.Errorf("MergeDisplay() = %v", merged)
	}
	if base['b'] != 2 {
		t.Error("MergeDisplay() must not mutate its inputs")
	}
}

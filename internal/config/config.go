// Package config provides YAML-based application configuration for the
// solver CLI.
package config

// Config holds the user-tunable settings.
type Config struct {
	// LevelsDir is the directory scanned for puzzle files.
	LevelsDir string `yaml:"levels_dir"`

	// DBPath is the solve-history database location. A leading ~ is
	// expanded by the storage layer.
	DBPath string `yaml:"db_path"`

	// NoColor disables ANSI styling in rendered boards.
	NoColor bool `yaml:"no_color,omitempty"`

	// Display maps single-rune glyphs to ANSI 256 color codes. Level
	// files may override these per puzzle.
	Display map[string]int `yaml:"display,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LevelsDir: "levels",
		DBPath:    "~/.tumblesolve/history.db",
		Display:   map[string]int{},
	}
}

// DisplayRunes converts the string-keyed display map to rune keys,
// dropping entries that are not exactly one rune. Level-file overrides
// are merged on top by the caller.
func (c Config) DisplayRunes() map[rune]int {
	out := make(map[rune]int, len(c.Display))
	for k, code := range c.Display {
		rs := []rune(k)
		if len(rs) != 1 {
			continue
		}
		out[rs[0]] = code
	}
	return out
}

// MergeDisplay layers level-specific overrides on top of the config's
// glyph colors.
func MergeDisplay(base, overrides map[rune]int) map[rune]int {
	out := make(map[rune]int, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

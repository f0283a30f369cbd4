package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the YAML structure for a puzzle file.
type yamlLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Width    int               `yaml:"width,omitempty"`
	Rows     []string          `yaml:"rows"`
	Wild     string            `yaml:"wild,omitempty"`
	Lock     bool              `yaml:"lock,omitempty"`
	Display  map[string]int    `yaml:"display,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML puzzle file. The glyph vocabulary matches the
// text format. Width may be omitted, in which case the widest row wins.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	width := yl.Width
	if width <= 0 {
		for _, row := range yl.Rows {
			if n := len([]rune(row)); n > width {
				width = n
			}
		}
	}
	if width <= 0 {
		return Level{}, fmt.Errorf("%w: %d", ErrMissingWidth, width)
	}
	if len(yl.Rows) == 0 {
		return Level{}, ErrEmptyGrid
	}

	display := make(map[rune]int, len(yl.Display))
	for k, code := range yl.Display {
		glyph := []rune(k)
		if len(glyph) != 1 {
			return Level{}, fmt.Errorf("%w: display glyph %q", ErrBadProperty, k)
		}
		if code < 0 || code > 255 {
			return Level{}, fmt.Errorf("%w: display color %d", ErrBadProperty, code)
		}
		display[glyph[0]] = code
	}

	metadata := yl.Metadata
	if metadata == nil {
		metadata = make(map[string]string)
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    width,
		Rows:     yl.Rows,
		Wild:     yl.Wild,
		Lock:     yl.Lock,
		Display:  display,
		Metadata: metadata,
	}, nil
}

package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ParseTSB parses the text puzzle format: a legend of `key value` lines,
// a blank line, then one line of glyphs per grid row. Rows are taken
// verbatim (spaces are empty tiles), so the blank separator line is the
// first fully empty line after at least one legend line.
//
// Legend properties:
//
//	width <n>            row stride (required)
//	wild <glyphs>        ordinary glyphs whose colors seed the wild mask
//	lock <true|false>    color-lock flag
//	display <glyph> <n>  ANSI 256 color override for a glyph
//	id <text>            level identifier
//	name <text>          human-readable name
//
// Lines starting with '#' in the legend are comments.
func ParseTSB(data []byte) (Level, error) {
	l := Level{
		Display:  make(map[rune]int),
		Metadata: make(map[string]string),
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	inGrid := false
	for sc.Scan() {
		line := sc.Text()
		if inGrid {
			l.Rows = append(l.Rows, line)
			continue
		}
		if strings.TrimSpace(line) == "" {
			inGrid = true
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if err := l.parseProperty(line); err != nil {
			return Level{}, err
		}
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("reading puzzle: %w", err)
	}
	if l.Width <= 0 {
		return Level{}, fmt.Errorf("%w: %d", ErrMissingWidth, l.Width)
	}
	if len(l.Rows) == 0 {
		return Level{}, ErrEmptyGrid
	}
	return l, nil
}

func (l *Level) parseProperty(line string) error {
	fields := strings.Fields(line)
	key, args := fields[0], fields[1:]
	switch key {
	case "width":
		if len(args) != 1 {
			return fmt.Errorf("%w: width wants one value", ErrBadProperty)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: width %q", ErrBadProperty, args[0])
		}
		l.Width = n
	case "wild":
		if len(args) != 1 {
			return fmt.Errorf("%w: wild wants one glyph group", ErrBadProperty)
		}
		l.Wild = args[0]
	case "lock":
		if len(args) != 1 {
			return fmt.Errorf("%w: lock wants true or false", ErrBadProperty)
		}
		v, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("%w: lock %q", ErrBadProperty, args[0])
		}
		l.Lock = v
	case "display":
		if len(args) != 2 {
			return fmt.Errorf("%w: display wants a glyph and a color", ErrBadProperty)
		}
		glyph := []rune(args[0])
		if len(glyph) != 1 {
			return fmt.Errorf("%w: display glyph %q", ErrBadProperty, args[0])
		}
		code, err := strconv.Atoi(args[1])
		if err != nil || code < 0 || code > 255 {
			return fmt.Errorf("%w: display color %q", ErrBadProperty, args[1])
		}
		l.Display[glyph[0]] = code
	case "id":
		l.ID = strings.Join(args, " ")
	case "name":
		l.Name = strings.Join(args, " ")
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProperty, key)
	}
	return nil
}

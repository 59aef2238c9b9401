package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// colorAttrs maps color names to foreground attributes. "hi-" variants are
// the bright versions.
var colorAttrs = map[string]color.Attribute{
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"hi-black":   color.FgHiBlack,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
}

// ColorNames lists the accepted color names, "none" included.
func ColorNames() []string {
	names := make([]string, 0, len(colorAttrs)+1)
	for name := range colorAttrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, "none")
}

// ParseColor returns the color named name. "none" and the empty string
// return nil, which renders text unchanged.
func ParseColor(name string) (*color.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return nil, nil
	}

	attr, ok := colorAttrs[name]
	if !ok {
		return nil, fmt.Errorf("unsupported color %q, must be one of: %s", name, strings.Join(ColorNames(), ", "))
	}

	// Whether to color at all is decided by the Formatter, not by
	// fatih/color's own stdout detection.
	c := color.New(attr)
	c.EnableColor()
	return c, nil
}

// Palette holds the colors of interactive output.
type Palette struct {
	Match      *color.Color
	Banner     *color.Color
	LineNumber *color.Color
}

// DefaultPalette returns red matches and cyan file names.
func DefaultPalette() Palette {
	p, _ := NewPalette("red", "cyan", "none")
	return p
}

// NewPalette builds a Palette from color names.
func NewPalette(match, banner, lineNumber string) (Palette, error) {
	var p Palette
	var err error

	if p.Match, err = ParseColor(match); err != nil {
		return Palette{}, fmt.Errorf("match color: %w", err)
	}
	if p.Banner, err = ParseColor(banner); err != nil {
		return Palette{}, fmt.Errorf("banner color: %w", err)
	}
	if p.LineNumber, err = ParseColor(lineNumber); err != nil {
		return Palette{}, fmt.Errorf("line number color: %w", err)
	}

	return p, nil
}

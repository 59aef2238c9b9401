package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// colorMode is the value of the --color flag.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func (c *colorMode) String() string {
	return string(*c)
}

func (c *colorMode) Set(value string) error {
	switch mode := colorMode(strings.ToLower(value)); mode {
	case colorAuto, colorAlways, colorNever:
		*c = mode
		return nil
	default:
		return fmt.Errorf("must be one of: auto, always, never")
	}
}

func (c *colorMode) Type() string {
	return "when"
}

// enabled resolves the mode against the terminal state of stdout.
func (c colorMode) enabled(stdoutPiped bool) bool {
	switch c {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return !stdoutPiped
	}
}

var _ pflag.Value = (*colorMode)(nil)

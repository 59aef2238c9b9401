package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/motcom/g/internal/input"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Streams is the process environment a run works against. The terminal
// state in Env is detected once, before the command runs.
type Streams struct {
	In    io.Reader
	Out   io.Writer
	Err   io.Writer
	Env   input.Env
	Getwd func() (string, error)
}

// DefaultStreams returns the standard streams of the process.
func DefaultStreams() Streams {
	return Streams{
		In:    os.Stdin,
		Out:   os.Stdout,
		Err:   os.Stderr,
		Env:   input.DetectEnv(os.Stdin, os.Stdout),
		Getwd: os.Getwd,
	}
}

// NewRootCommand creates the g command bound to the process streams.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithStreams(DefaultStreams())
}

// NewRootCommandWithStreams creates the g command bound to streams.
func NewRootCommandWithStreams(streams Streams) *cobra.Command {
	opts := &options{
		streams: streams,
		color:   colorAuto,
	}

	cmd := &cobra.Command{
		Use:   "g [flags] <pattern> [file]",
		Short: "Search for lines matching a regular expression",
		Long: `g prints the lines that match a regular expression.

Input is chosen in this order:
  1. piped standard input (a file argument is ignored)
  2. the file given as second argument
  3. every file below the current directory, scanned in parallel

Matching ignores case unless -m is given. When standard output is a
terminal the first match on each line is highlighted and file names are
colored; redirected output is not styled unless --color=always
forces it.

Defaults for workers, colors and logging are read from
$XDG_CONFIG_HOME/g/config.yaml (or the platform equivalent) if present.

Exit status:
  0 normal completion, whether or not anything matched
  1 invalid arguments, flag values or config file
  2 missing or invalid pattern
  3 current directory cannot be determined

Examples:
  # Search every file below the current directory
  g 'func \w+\('

  # Search one file with line numbers, case-sensitive
  g -n -m TODO main.go

  # Filter piped text
  dmesg | g usb

  # Search the files named on stdin
  git ls-files | g -o -n 'deprecated'`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          opts.run,
	}

	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	flags := cmd.Flags()
	flags.BoolVarP(&opts.number, "number", "n", false, "Show 1-based line numbers")
	flags.BoolVarP(&opts.readFiles, "open", "o", false, "With piped input, treat each line as a file path to scan")
	flags.BoolVarP(&opts.caseSensitive, "match", "m", false, "Match case (default is case-insensitive)")
	flags.Var(&opts.color, "color", "Highlight matches: auto, always (even when redirected) or never")
	flags.IntVarP(&opts.workers, "workers", "j", 0, "Number of files scanned in parallel (0 = config or number of CPUs)")
	flags.BoolVar(&opts.sorted, "sorted", false, "Print files in directory order instead of completion order")
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: <user config dir>/g/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Diagnostics on stderr: trace, debug, info, warn, error")

	return cmd
}

// Package input decides where a run reads its data from.
//
// Exactly one Mode is selected per invocation:
//
//  1. standard input is piped or redirected: Stdin (a file argument is ignored)
//  2. a file argument was given: SingleFile
//  3. otherwise: DirectoryWalk rooted at the current working directory
//
// Terminal detection happens once, in DetectEnv, and is passed around as plain
// booleans so that resolution is a pure function of its inputs.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/motcom/g/internal/fileutil"
	"github.com/motcom/g/internal/logger"
	"github.com/motcom/g/internal/models"
	"github.com/motcom/g/internal/scanner"
)

// ErrUnresolvableWorkingDirectory is returned when directory-walk mode cannot
// determine the current directory.
var ErrUnresolvableWorkingDirectory = errors.New("cannot determine current directory")

// Kind identifies an input mode.
type Kind int

const (
	Stdin Kind = iota
	SingleFile
	DirectoryWalk
)

func (k Kind) String() string {
	switch k {
	case Stdin:
		return "stdin"
	case SingleFile:
		return "single-file"
	case DirectoryWalk:
		return "directory-walk"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Mode is the resolved input mode. Path is the file for SingleFile and the
// walk root for DirectoryWalk.
type Mode struct {
	Kind Kind
	Path string
}

func (m Mode) String() string {
	if m.Path == "" {
		return m.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", m.Kind, m.Path)
}

// Env is the terminal state of the standard streams, read once per run.
type Env struct {
	StdinPiped  bool
	StdoutPiped bool
}

// DetectEnv reports whether stdin and stdout are redirected rather than
// attached to a terminal.
func DetectEnv(stdin, stdout *os.File) Env {
	return Env{
		StdinPiped:  !isTerminal(stdin),
		StdoutPiped: !isTerminal(stdout),
	}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Resolve selects the input mode. getwd is only called in directory-walk mode.
func Resolve(env Env, fileArg string, getwd func() (string, error)) (Mode, error) {
	if env.StdinPiped {
		return Mode{Kind: Stdin}, nil
	}

	if fileArg != "" {
		return Mode{Kind: SingleFile, Path: fileArg}, nil
	}

	cwd, err := getwd()
	if err != nil {
		return Mode{}, fmt.Errorf("%w: %v", ErrUnresolvableWorkingDirectory, err)
	}
	return Mode{Kind: DirectoryWalk, Path: cwd}, nil
}

// WalkFunc enumerates the paths under a root.
type WalkFunc func(root string) (*fileutil.WalkResult, error)

// Resolver turns a mode into the list of sources to scan.
type Resolver struct {
	Stdin     io.Reader
	ReadFiles bool
	Walk      WalkFunc
	Logger    logger.Logger
}

// NewResolver creates a Resolver reading piped data from stdin and walking
// directories with fileutil.WalkAll.
func NewResolver(stdin io.Reader, readFiles bool) *Resolver {
	return &Resolver{
		Stdin:     stdin,
		ReadFiles: readFiles,
		Walk:      fileutil.WalkAll,
		Logger:    logger.NewNoOpLogger(),
	}
}

// Sources lists the sources for mode m.
//
//   - Stdin: the piped text itself as one unnamed source, or with ReadFiles
//     one file source per distinct non-blank piped line.
//   - SingleFile: the named file. Whether it can be opened is decided when
//     it is scanned.
//   - DirectoryWalk: every entry under the root.
func (r *Resolver) Sources(m Mode) ([]models.Source, error) {
	switch m.Kind {
	case Stdin:
		if !r.ReadFiles {
			return []models.Source{models.ReaderSource(r.Stdin)}, nil
		}
		paths, err := ReadPaths(r.Stdin)
		if err != nil {
			// Piped input that is not text is skipped like any other source.
			r.Logger.Debugf("skip <stdin>: %v", err)
			return nil, nil
		}
		return fileSources(paths), nil

	case SingleFile:
		return []models.Source{models.FileSource(m.Path)}, nil

	case DirectoryWalk:
		result, err := r.Walk(m.Path)
		if err != nil {
			return nil, err
		}
		for _, walkErr := range result.Errors {
			r.Logger.Debugf("walk: %v", walkErr)
		}
		return fileSources(result.Paths), nil

	default:
		return nil, fmt.Errorf("unknown input mode %v", m.Kind)
	}
}

// ReadPaths reads one path per line. Only the line terminator is removed, so
// names with leading or trailing spaces survive. Blank lines are dropped and
// repeated paths are kept once, in first-seen order.
func ReadPaths(r io.Reader) ([]string, error) {
	lines, err := scanner.ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("read piped paths: %w", err)
	}

	seen := make(map[string]bool, len(lines))
	paths := make([]string, 0, len(lines))
	for _, path := range lines {
		if strings.TrimSpace(path) == "" || seen[path] {
			continue
		}
		seen[path] = true
		paths = append(paths, path)
	}
	return paths, nil
}

func fileSources(paths []string) []models.Source {
	sources := make([]models.Source, 0, len(paths))
	for _, path := range paths {
		sources = append(sources, models.FileSource(path))
	}
	return sources
}

package input

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motcom/g/internal/fileutil"
	"github.com/motcom/g/internal/logger"
	"github.com/motcom/g/internal/models"
)

func fixedWd(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func failingWd() (string, error) {
	return "", errors.New("getwd: no such file or directory")
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		env     Env
		fileArg string
		want    Mode
	}{
		{"pipe wins", Env{StdinPiped: true}, "", Mode{Kind: Stdin}},
		{"pipe wins over file argument", Env{StdinPiped: true}, "f.txt", Mode{Kind: Stdin}},
		{"file argument", Env{}, "f.txt", Mode{Kind: SingleFile, Path: "f.txt"}},
		{"file argument with piped stdout", Env{StdoutPiped: true}, "f.txt", Mode{Kind: SingleFile, Path: "f.txt"}},
		{"walk", Env{}, "", Mode{Kind: DirectoryWalk, Path: "/work"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.env, tt.fileArg, fixedWd("/work"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveOnlyCallsGetwdWhenWalking(t *testing.T) {
	for _, env := range []Env{{StdinPiped: true}, {}} {
		_, err := Resolve(env, "file.txt", failingWd)
		assert.NoError(t, err)
	}
}

func TestResolveUnresolvableWorkingDirectory(t *testing.T) {
	_, err := Resolve(Env{}, "", failingWd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnresolvableWorkingDirectory))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "stdin", Mode{Kind: Stdin}.String())
	assert.Equal(t, "single-file(a.txt)", Mode{Kind: SingleFile, Path: "a.txt"}.String())
	assert.Equal(t, "directory-walk(/w)", Mode{Kind: DirectoryWalk, Path: "/w"}.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestDetectEnvWithPipes(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	env := DetectEnv(r, w)
	assert.True(t, env.StdinPiped)
	assert.True(t, env.StdoutPiped)

	assert.Equal(t, Env{StdinPiped: true, StdoutPiped: true}, DetectEnv(nil, nil))
}

func readAll(t *testing.T, src models.Source) string {
	t.Helper()
	rc, err := src.Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestSourcesStdinText(t *testing.T) {
	r := NewResolver(strings.NewReader("a\nb\nc\n"), false)

	sources, err := r.Sources(Mode{Kind: Stdin})
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.False(t, sources[0].Named())
	assert.Equal(t, "a\nb\nc\n", readAll(t, sources[0]))
}

func TestSourcesStdinReadFiles(t *testing.T) {
	r := NewResolver(strings.NewReader("one.txt\n\n  two.txt \r\none.txt\nthree.txt"), true)

	sources, err := r.Sources(Mode{Kind: Stdin})
	require.NoError(t, err)

	names := make([]string, 0, len(sources))
	for _, src := range sources {
		names = append(names, src.Name)
	}
	assert.Equal(t, []string{"one.txt", "two.txt", "three.txt"}, names)
}

func TestSourcesStdinReadFilesBinary(t *testing.T) {
	var logBuf bytes.Buffer
	r := NewResolver(strings.NewReader("\xff\xfe"), true)
	r.Logger = logger.NewConsoleLogger(&logBuf, "debug")

	sources, err := r.Sources(Mode{Kind: Stdin})
	require.NoError(t, err)
	assert.Empty(t, sources)
	assert.Contains(t, logBuf.String(), "skip <stdin>")
}

func TestSourcesSingleFile(t *testing.T) {
	r := NewResolver(nil, false)

	sources, err := r.Sources(Mode{Kind: SingleFile, Path: "does-not-exist.txt"})
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "does-not-exist.txt", sources[0].Name)
}

func TestSourcesDirectoryWalk(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "a.txt"), []byte("x"), 0644))

	r := NewResolver(nil, false)
	sources, err := r.Sources(Mode{Kind: DirectoryWalk, Path: root})
	require.NoError(t, err)

	names := make([]string, 0, len(sources))
	for _, src := range sources {
		names = append(names, src.Name)
	}
	assert.Equal(t, []string{filepath.Join(root, "sub"), filepath.Join(root, "sub", "a.txt")}, names)
}

func TestSourcesDirectoryWalkLogsErrors(t *testing.T) {
	var logBuf bytes.Buffer
	r := NewResolver(nil, false)
	r.Logger = logger.NewConsoleLogger(&logBuf, "debug")
	r.Walk = func(root string) (*fileutil.WalkResult, error) {
		return &fileutil.WalkResult{
			Paths:  []string{root + "/ok"},
			Errors: []error{errors.New("permission denied")},
		}, nil
	}

	sources, err := r.Sources(Mode{Kind: DirectoryWalk, Path: "/r"})
	require.NoError(t, err)
	assert.Len(t, sources, 1)
	assert.Contains(t, logBuf.String(), "walk: permission denied")
}

func TestSourcesDirectoryWalkFails(t *testing.T) {
	r := NewResolver(nil, false)
	r.Walk = func(string) (*fileutil.WalkResult, error) {
		return nil, errors.New("failed to access directory")
	}

	_, err := r.Sources(Mode{Kind: DirectoryWalk, Path: "/gone"})
	assert.ErrorContains(t, err, "failed to access directory")
}

func TestSourcesUnknownKind(t *testing.T) {
	_, err := NewResolver(nil, false).Sources(Mode{Kind: Kind(42)})
	assert.Error(t, err)
}

func TestReadPaths(t *testing.T) {
	paths, err := ReadPaths(strings.NewReader("a\n\n  \nb\r\na\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, paths)

	paths, err = ReadPaths(strings.NewReader(" lead\ntrail \ntrail\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{" lead", "trail ", "trail"}, paths)

	paths, err = ReadPaths(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

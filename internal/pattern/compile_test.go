package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		caseSensitive bool
		text          string
		want          bool
	}{
		{"insensitive lower matches upper", "foo", false, "FOO", true},
		{"insensitive upper matches lower", "FOO", false, "foobar", true},
		{"sensitive rejects other case", "foo", true, "FOO", false},
		{"sensitive exact", "foo", true, "foobar", true},
		{"insensitive unicode", "straße", false, "STRAßE", true},
		{"insensitive greek", "σ", false, "Σ", true},
		{"anchor kept", "^bar", false, "foobar", false},
		{"anchor kept insensitive", "^BAR", false, "barfoo", true},
		{"character class", "[0-9]+x", false, "12X", true},
		{"repetition", "ab{2}c", false, "ABBC", true},
		{"repetition mismatch", "ab{2}c", false, "ABC", false},
		{"no match", "x", false, "abc", false},
		{"empty pattern matches everything", "", false, "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.raw, tt.caseSensitive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.MatchString(tt.text))
			assert.Equal(t, tt.raw, p.String())
			assert.Equal(t, tt.caseSensitive, p.CaseSensitive())
		})
	}
}

func TestCompileInvalid(t *testing.T) {
	for _, raw := range []string{"(", "[a-", "a{2,1}", "*"} {
		t.Run(raw, func(t *testing.T) {
			p, err := Compile(raw, false)
			assert.Nil(t, p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPattern))
			assert.Contains(t, err.Error(), raw)
		})
	}
}

func TestFind(t *testing.T) {
	p := MustCompile("o+", false)

	start, end, ok := p.Find("fOOd and foo")
	require.True(t, ok)
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)

	_, _, ok = p.Find("bar")
	assert.False(t, ok)
}

func TestFindEmptyMatch(t *testing.T) {
	p := MustCompile("z*", true)

	start, end, ok := p.Find("abc")
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("(", false) })
}

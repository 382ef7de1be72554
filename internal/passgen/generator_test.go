package passgen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countIn(s, set string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(set, r) {
			n++
		}
	}
	return n
}

func TestGenerate_DefaultOptions(t *testing.T) {
	pw, err := Generate(DefaultOptions())
	require.NoError(t, err)
	require.Len(t, pw, DefaultLength)

	assert.Positive(t, countIn(pw, upperChars))
	assert.Positive(t, countIn(pw, lowerChars))
	assert.Positive(t, countIn(pw, digitChars))
	assert.Positive(t, countIn(pw, symbolChars))
}

func TestGenerate_EveryClassRepresented(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		sets []string
		deny []string
	}{
		{
			name: "upper and digits",
			opts: Options{Length: 8, Uppercase: true, Digits: true},
			sets: []string{upperChars, digitChars},
			deny: []string{lowerChars, symbolChars},
		},
		{
			name: "symbols only",
			opts: Options{Length: 5, Symbols: true},
			sets: []string{symbolChars},
			deny: []string{upperChars, lowerChars, digitChars},
		},
		{
			name: "all classes, minimum length",
			opts: Options{Length: 4, Uppercase: true, Lowercase: true, Digits: true, Symbols: true},
			sets: []string{upperChars, lowerChars, digitChars, symbolChars},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				pw, err := Generate(tt.opts)
				require.NoError(t, err)
				require.Len(t, pw, tt.opts.Length)
				for _, s := range tt.sets {
					require.Positive(t, countIn(pw, s), "password %q misses class %q", pw, s)
				}
				for _, s := range tt.deny {
					require.Zero(t, countIn(pw, s), "password %q uses disabled class %q", pw, s)
				}
			}
		})
	}
}

func TestGenerate_ExcludeAmbiguous(t *testing.T) {
	opts := DefaultOptions()
	opts.Length = 64
	opts.ExcludeAmbiguous = true

	for i := 0; i < 100; i++ {
		pw, err := Generate(opts)
		require.NoError(t, err)
		require.Zero(t, countIn(pw, AmbiguousChars), "password %q contains ambiguous characters", pw)
	}
}

func TestGenerate_NoClasses(t *testing.T) {
	_, err := Generate(Options{Length: 12})
	require.ErrorIs(t, err, ErrNoCharacterClasses)
}

func TestGenerate_LengthAdjustments(t *testing.T) {
	pw, err := Generate(Options{Lowercase: true})
	require.NoError(t, err)
	assert.Len(t, pw, DefaultLength)

	pw, err = Generate(Options{Length: -3, Digits: true})
	require.NoError(t, err)
	assert.Len(t, pw, DefaultLength)

	pw, err = Generate(Options{Length: 2, Uppercase: true, Lowercase: true, Digits: true})
	require.NoError(t, err)
	assert.Len(t, pw, 3)
}

func TestOptions_Classes(t *testing.T) {
	c := Options{Uppercase: true, Digits: true, ExcludeAmbiguous: true}.Classes()
	require.Len(t, c, 2)
	assert.Equal(t, "ABCDEFGHJKLMNPQRSTUVWXYZ", c[0])
	assert.Equal(t, "23456789", c[1])

	assert.Empty(t, Options{}.Classes())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerator_RandomSourceError(t *testing.T) {
	g := NewWithReader(failingReader{})
	_, err := g.Generate(DefaultOptions())
	require.Error(t, err)
}

func TestGenerator_DeterministicWithFixedReader(t *testing.T) {
	seed := bytes.Repeat([]byte{7, 42, 199, 3, 88, 250, 16}, 512)

	a, err := NewWithReader(bytes.NewReader(seed)).Generate(DefaultOptions())
	require.NoError(t, err)
	b, err := NewWithReader(bytes.NewReader(seed)).Generate(DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

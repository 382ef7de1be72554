// Package passgen generates random passwords from selectable character
// classes.
//
// Every enabled class is represented at least once: one character is drawn
// from each class, the rest of the password is drawn from the union of all
// enabled classes, and the result is shuffled. Randomness comes from
// crypto/rand.
package passgen

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strings"
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*"

	// AmbiguousChars are removed from every class when
	// Options.ExcludeAmbiguous is set.
	AmbiguousChars = "Il1O0o"

	DefaultLength = 12
)

var ErrNoCharacterClasses = errors.New("at least one character class must be enabled")

// Options selects the password length and the character classes to use.
type Options struct {
	Length           int  `json:"length"`
	Uppercase        bool `json:"uppercase"`
	Lowercase        bool `json:"lowercase"`
	Digits           bool `json:"digits"`
	Symbols          bool `json:"symbols"`
	ExcludeAmbiguous bool `json:"exclude_ambiguous"`
}

// DefaultOptions enables every class with the default length.
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Classes returns the character sets enabled by o, with ambiguous characters
// removed if requested. Empty classes are dropped.
func (o Options) Classes() []string {
	var classes []string
	add := func(enabled bool, set string) {
		if !enabled {
			return
		}
		if o.ExcludeAmbiguous {
			set = stripAmbiguous(set)
		}
		if set != "" {
			classes = append(classes, set)
		}
	}
	add(o.Uppercase, upperChars)
	add(o.Lowercase, lowerChars)
	add(o.Digits, digitChars)
	add(o.Symbols, symbolChars)
	return classes
}

func stripAmbiguous(set string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(AmbiguousChars, r) {
			return -1
		}
		return r
	}, set)
}

// Generator produces passwords using the random source it holds.
type Generator struct {
	rand io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewWithReader returns a Generator that reads randomness from r.
func NewWithReader(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate builds a password according to opts.
//
// A non-positive length selects DefaultLength; a length smaller than the
// number of enabled classes is raised to that number.
func (g *Generator) Generate(opts Options) (string, error) {
	classes := opts.Classes()
	if len(classes) == 0 {
		return "", ErrNoCharacterClasses
	}

	length := opts.Length
	if length <= 0 {
		length = DefaultLength
	}
	if length < len(classes) {
		length = len(classes)
	}

	pool := strings.Join(classes, "")
	out := make([]byte, 0, length)

	for _, c := range classes {
		b, err := g.pick(c)
		if err != nil {
			return "", err
		}
		out = append(out, b)
	}
	for len(out) < length {
		b, err := g.pick(pool)
		if err != nil {
			return "", err
		}
		out = append(out, b)
	}

	if err := g.shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

func (g *Generator) pick(set string) (byte, error) {
	i, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle is a Fisher–Yates shuffle.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// intn returns a uniform random int in [0, n).
func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

var defaultGenerator = New()

// Generate builds a password with the package-level crypto/rand generator.
func Generate(opts Options) (string, error) {
	return defaultGenerator.Generate(opts)
}

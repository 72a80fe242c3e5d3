// internal/game/types.go
//
// Core type definitions for the Mastermind codemaker.
// Defines:
//   - ColorSpace: the alphabet of valid peg colors, [0, size).
//   - Code:       an immutable ordered sequence of peg values.
//   - Feedback:   exact/color match counts for one scored guess.
//   - Mode:       where the oracle's next secret comes from.

package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Default board dimensions used when the caller does not pick any.
const (
	DefaultPegs   = 4
	DefaultColors = 6
)

var (
	ErrInvalidColorCount = errors.New("game: color count must be at least 1")
	ErrInvalidPegCount   = errors.New("game: peg count must be at least 1")
	ErrLengthMismatch    = errors.New("game: guess and secret differ in length")
	ErrCodeLength        = errors.New("game: queued code length differs from peg count")
)

// ColorSpace is the set of valid peg colors. Values range over [0, Len()).
type ColorSpace struct {
	size int
}

// NewColorSpace returns a color space of the given size.
// A non-positive size is rejected rather than clamped.
func NewColorSpace(size int) (ColorSpace, error) {
	if size <= 0 {
		return ColorSpace{}, fmt.Errorf("%w: got %d", ErrInvalidColorCount, size)
	}
	return ColorSpace{size: size}, nil
}

// Len returns the number of distinct colors.
func (c ColorSpace) Len() int { return c.size }

// Contains reports whether v is a valid color in this space.
func (c ColorSpace) Contains(v int) bool { return v >= 0 && v < c.size }

// Code is an ordered, fixed-length sequence of peg values.
// The zero value is an empty code. Codes are never mutated after construction.
type Code struct {
	pegs []int
}

// NewCode builds a literal code from caller-supplied values.
// The slice is copied; values are not checked against any ColorSpace.
func NewCode(values ...int) Code {
	return Code{pegs: append([]int(nil), values...)}
}

// Len returns the number of pegs.
func (c Code) Len() int { return len(c.pegs) }

// At returns the value at position i.
func (c Code) At(i int) int { return c.pegs[i] }

// Pegs returns a copy of the peg values.
func (c Code) Pegs() []int { return append([]int(nil), c.pegs...) }

// Equal reports whether two codes hold the same values in the same order.
func (c Code) Equal(o Code) bool {
	if len(c.pegs) != len(o.pegs) {
		return false
	}
	for i := range c.pegs {
		if c.pegs[i] != o.pegs[i] {
			return false
		}
	}
	return true
}

// String renders the code as space-separated integers, e.g. "0 1 2 2".
func (c Code) String() string {
	parts := make([]string, len(c.pegs))
	for i, v := range c.pegs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// Feedback is the codemaker's answer to a single guess.
//   - Exact: positions where guess and secret hold the same value ("black pegs").
//   - Color: further guessed values found elsewhere in the secret ("white pegs"),
//     counted as a multiset so nothing is credited twice.
type Feedback struct {
	Exact int
	Color int
}

// Solved reports whether the feedback means every one of pegs positions matched.
func (f Feedback) Solved(pegs int) bool { return f.Exact == pegs && f.Color == 0 }

func (f Feedback) String() string {
	return fmt.Sprintf("%d exact, %d color", f.Exact, f.Color)
}

// Mode tells where the oracle's secrets currently come from.
type Mode string

const (
	ModeQueued Mode = "queued" // popping pre-supplied codes in order
	ModeRandom Mode = "random" // sampling fresh codes
)

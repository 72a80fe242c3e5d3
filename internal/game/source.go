// internal/game/source.go
//
// Code sources for the oracle.
//   - queueSource:  pops pre-supplied raw codes, oldest first.
//   - randomSource: samples each peg independently and uniformly.
//
// Both materialize a fresh Code per call; nothing is shared between rounds.

package game

import (
	"crypto/rand"
	"math/big"
)

// Sampler picks an integer uniformly from [0, n).
// *math/rand/v2.Rand satisfies it, which makes seeded play reproducible.
type Sampler interface {
	IntN(n int) int
}

// cryptoSampler draws from crypto/rand. It is the default when no Sampler is given.
type cryptoSampler struct{}

func (cryptoSampler) IntN(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is unusable.
		panic("game: crypto/rand: " + err.Error())
	}
	return int(nBig.Int64())
}

// RandomCode samples a code of length pegs with values in [0, colors.Len()).
// A nil rng falls back to crypto/rand. An empty color space or a
// non-positive pegs yields an empty code.
func RandomCode(colors ColorSpace, pegs int, rng Sampler) Code {
	if colors.Len() < 1 || pegs <= 0 {
		return Code{}
	}
	if rng == nil {
		rng = cryptoSampler{}
	}
	out := make([]int, pegs)
	for i := range out {
		out[i] = rng.IntN(colors.Len())
	}
	return Code{pegs: out}
}

// codeSource produces the next secret. ok is false once the source is spent.
type codeSource interface {
	next() (code Code, ok bool)
}

// queueSource holds raw pending codes; it only ever shrinks.
type queueSource struct {
	pending [][]int
}

func newQueueSource(codes [][]int) *queueSource {
	q := &queueSource{pending: make([][]int, 0, len(codes))}
	for _, c := range codes {
		q.pending = append(q.pending, append([]int(nil), c...))
	}
	return q
}

func (q *queueSource) next() (Code, bool) {
	if len(q.pending) == 0 {
		return Code{}, false
	}
	raw := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	return Code{pegs: raw}, true
}

func (q *queueSource) size() int { return len(q.pending) }

// randomSource never runs dry.
type randomSource struct {
	colors ColorSpace
	pegs   int
	rng    Sampler
}

func (r randomSource) next() (Code, bool) {
	return RandomCode(r.colors, r.pegs, r.rng), true
}

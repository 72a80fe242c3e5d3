// internal/game/oracle.go
//
// The oracle plays the codemaker for one game session.
// Responsibilities:
//   - Hold the current secret and answer guesses against it.
//   - Provision secrets: queued codes first (FIFO), random codes afterwards.
//   - Track how many list codes are still live for round-counting callers.
//
// State transitions:
//   - ModeQueued → ModeRandom exactly once, when the queue empties.
//   - An oracle built without a list (or with an empty one) starts in ModeRandom.
//
// An Oracle is not safe for concurrent use.

package game

import "fmt"

// Oracle owns the secret code and its provisioning policy.
type Oracle struct {
	colors ColorSpace
	pegs   int
	secret Code

	queue  *queueSource
	random randomSource

	// remaining is decremented before every draw and starts at len(queue)+1
	// for list-driven oracles, so it stays positive while the current secret
	// came from the list.
	remaining int
}

// Option configures an Oracle.
type Option func(*Oracle)

// WithSampler sets the random source used for random codes.
func WithSampler(rng Sampler) Option {
	return func(o *Oracle) {
		if rng != nil {
			o.random.rng = rng
		}
	}
}

// NewOracle builds an oracle that only ever produces random codes.
// The first secret is generated immediately.
func NewOracle(pegs, colors int, opts ...Option) (*Oracle, error) {
	o, err := newOracle(pegs, colors, opts)
	if err != nil {
		return nil, err
	}
	o.queue = newQueueSource(nil)
	o.NextCode()
	o.remaining = 0
	return o, nil
}

// NewQueuedOracle builds an oracle that serves codes in order and falls back
// to random codes once they run out. The first code is drawn immediately.
//
// Every code must have exactly pegs values; values themselves are not checked
// against the color space. The slice is copied.
func NewQueuedOracle(codes [][]int, pegs, colors int, opts ...Option) (*Oracle, error) {
	o, err := newOracle(pegs, colors, opts)
	if err != nil {
		return nil, err
	}
	for i, c := range codes {
		if len(c) != pegs {
			return nil, fmt.Errorf("%w: code %d has %d values, want %d", ErrCodeLength, i, len(c), pegs)
		}
	}
	o.queue = newQueueSource(codes)
	o.remaining = o.queue.size() + 1
	o.NextCode()
	return o, nil
}

func newOracle(pegs, colors int, opts []Option) (*Oracle, error) {
	if pegs <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPegCount, pegs)
	}
	space, err := NewColorSpace(colors)
	if err != nil {
		return nil, err
	}
	o := &Oracle{
		colors: space,
		pegs:   pegs,
		random: randomSource{colors: space, pegs: pegs, rng: cryptoSampler{}},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// NextCode replaces the secret with the next queued code, or a random one
// when the queue is empty. Exhaustion is silent.
func (o *Oracle) NextCode() {
	o.remaining--
	for _, src := range []codeSource{o.queue, o.random} {
		if code, ok := src.next(); ok {
			o.secret = code
			return
		}
	}
}

// FeedbackFor scores guess against the current secret. It does not advance the round.
func (o *Oracle) FeedbackFor(guess Code) (Feedback, error) {
	return o.secret.FeedbackFor(guess)
}

// HasCodeFromList reports whether the list-driven counter is still positive,
// i.e. whether the current secret was taken from the pre-supplied list.
func (o *Oracle) HasCodeFromList() bool { return o.remaining > 0 }

// Mode reports where the next secret will come from.
func (o *Oracle) Mode() Mode {
	if o.queue.size() > 0 {
		return ModeQueued
	}
	return ModeRandom
}

// Queued returns how many list codes have not been drawn yet.
func (o *Oracle) Queued() int { return o.queue.size() }

// Secret returns the current secret, e.g. to reveal it after a lost round.
func (o *Oracle) Secret() Code { return o.secret }

// NumPegs returns the code length for this session.
func (o *Oracle) NumPegs() int { return o.pegs }

// NumColors returns the size of the color space.
func (o *Oracle) NumColors() int { return o.colors.Len() }

// Colors returns the session's color space.
func (o *Oracle) Colors() ColorSpace { return o.colors }

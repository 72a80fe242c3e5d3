// internal/game/engine.go
//
// Scoring for a single Mastermind guess.
// Responsibilities:
//   - Compare a guess against a secret code of the same length.
//   - Count exact matches first, then color matches over what is left.
//
// Notes:
//   - The secret is the receiver and the guess the argument; the matching
//     itself is symmetric.
//   - Exact-match positions are consumed before the multiset pass, which is
//     what keeps Exact+Color <= length with repeated colors.

package game

import "fmt"

// FeedbackFor scores guess against c, treating c as the secret.
//
// Pass 1:
//   - Count positions where secret and guess agree; those positions are consumed.
//
// Pass 2:
//   - Tally the unconsumed values of each side by color.
//   - For each color, credit min(secretCount, guessCount) color matches.
//
// Returns ErrLengthMismatch if the two codes differ in length.
func (c Code) FeedbackFor(guess Code) (Feedback, error) {
	n := len(c.pegs)
	if len(guess.pegs) != n {
		return Feedback{}, fmt.Errorf("%w: secret has %d pegs, guess has %d", ErrLengthMismatch, n, len(guess.pegs))
	}

	var fb Feedback
	secretFreq := make(map[int]int, n)
	guessFreq := make(map[int]int, n)

	// First pass: exact matches, and counts for everything else.
	for i := 0; i < n; i++ {
		if c.pegs[i] == guess.pegs[i] {
			fb.Exact++
			continue
		}
		secretFreq[c.pegs[i]]++
		guessFreq[guess.pegs[i]]++
	}

	// Second pass: multiset intersection of the leftovers.
	for color, sc := range secretFreq {
		fb.Color += min(sc, guessFreq[color])
	}
	return fb, nil
}

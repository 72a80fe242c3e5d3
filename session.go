// session.go
//
// Console play loop against a game.Oracle.
// Responsibilities:
//   - Prompt for guesses, parse them, and print the oracle's feedback.
//   - Advance to the next secret on a solve or when attempts run out.
//   - Decide how many rounds to play (explicit count, or through the list).
//
// Input that cannot be parsed is reported and does not use up an attempt.
// End of input or "quit" ends the session cleanly.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/game"
)

var errQuit = errors.New("quit")

// session holds the state of one console game.
type session struct {
	oracle   *game.Oracle
	in       io.Reader
	out      io.Writer
	rounds   int // 0: play through the list, or a single round without one
	attempts int // 0: unlimited
	reveal   bool
}

// summary is reported when the session ends.
type summary struct {
	Rounds  int // rounds finished (solved or out of attempts)
	Solved  int
	Guesses int // scored guesses over all rounds
}

// run plays rounds until the round limit, end of input, or "quit".
func (s *session) run() (summary, error) {
	var sum summary
	sc := bufio.NewScanner(s.in)
	for round := 1; ; round++ {
		if s.rounds > 0 && round > s.rounds {
			break
		}
		if s.rounds == 0 && round > 1 && !s.oracle.HasCodeFromList() {
			break
		}

		solved, guesses, err := s.playRound(sc, round)
		sum.Guesses += guesses
		if errors.Is(err, io.EOF) || errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			return sum, err
		}
		sum.Rounds++
		if solved {
			sum.Solved++
		}
		log.Debug().Int("round", round).Bool("solved", solved).Int("guesses", guesses).Msg("round finished")
		s.oracle.NextCode()
	}
	fmt.Fprintf(s.out, "Solved %d of %d rounds.\n", sum.Solved, sum.Rounds)
	return sum, nil
}

// playRound returns io.EOF or errQuit when the player stops mid-round.
func (s *session) playRound(sc *bufio.Scanner, round int) (solved bool, guesses int, err error) {
	source := "random code"
	if s.oracle.HasCodeFromList() {
		source = "list code"
	}
	pegs, colors := s.oracle.NumPegs(), s.oracle.Colors()
	fmt.Fprintf(s.out, "Round %d (%s): guess %d pegs, colors 0-%d.\n", round, source, pegs, colors.Len()-1)

	for s.attempts == 0 || guesses < s.attempts {
		fmt.Fprintf(s.out, "guess %d> ", guesses+1)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return false, guesses, err
			}
			fmt.Fprintln(s.out)
			return false, guesses, io.EOF
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			return false, guesses, errQuit
		}

		guess, err := parseGuess(line, pegs, colors)
		if err != nil {
			fmt.Fprintf(s.out, "invalid guess: %v\n", err)
			continue
		}
		fb, err := s.oracle.FeedbackFor(guess)
		if err != nil {
			return false, guesses, err
		}
		guesses++
		fmt.Fprintf(s.out, "  %s\n", fb)
		if fb.Solved(pegs) {
			fmt.Fprintf(s.out, "Solved in %d guesses!\n", guesses)
			return true, guesses, nil
		}
	}

	fmt.Fprintln(s.out, "Out of guesses.")
	if s.reveal {
		fmt.Fprintf(s.out, "The code was %s.\n", s.oracle.Secret())
	}
	return false, guesses, nil
}

// parseGuess accepts "0 1 2 3", or "0123" when every color is a single digit.
func parseGuess(line string, pegs int, colors game.ColorSpace) (game.Code, error) {
	fields := strings.Fields(line)
	if len(fields) == 1 && pegs > 1 && colors.Len() <= 10 {
		fields = strings.Split(fields[0], "")
	}
	if len(fields) != pegs {
		return game.Code{}, fmt.Errorf("need %d pegs, got %d", pegs, len(fields))
	}
	values := make([]int, pegs)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return game.Code{}, fmt.Errorf("%q is not a number", f)
		}
		if !colors.Contains(n) {
			return game.Code{}, fmt.Errorf("color %d not in 0-%d", n, colors.Len()-1)
		}
		values[i] = n
	}
	return game.NewCode(values...), nil
}

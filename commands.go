// commands.go
//
// Command-line surface for the mastermind codemaker.
//   - mastermind play:   play rounds against the oracle on stdin/stdout.
//   - mastermind import: store a code list file in SQLite under a set name.
//
// Flag defaults come from the environment (or a .env file):
//   MASTERMIND_PEGS, MASTERMIND_COLORS, MASTERMIND_CODES, MASTERMIND_DB, DAILY_SALT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/codes"
	"github.com/robalobadob/mastermind/internal/daily"
	"github.com/robalobadob/mastermind/internal/game"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mastermind",
		Short:         "Play Mastermind against a codemaker",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPlayCmd(), newImportCmd())
	return root
}

// playOptions selects the code source and the session limits.
type playOptions struct {
	codesPath string
	dbPath    string
	setName   string
	practice  bool
	pegs      int
	colors    int
	rounds    int
	attempts  int
	daily     bool
	salt      string
	reveal    bool
}

func newPlayCmd() *cobra.Command {
	opts := playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Guess secret codes interactively",
		Long: `Guess secret codes interactively.

Secrets come from a code list (--codes, --db/--set or --practice) until it
runs out, then from random generation. Enter a guess as space-separated
color numbers ("0 1 2 3"), or as digits ("0123") when there are at most
ten colors.

Examples:
  mastermind play
  mastermind play --codes codes.txt --attempts 8
  mastermind play --db data/codes.db --set week1
  mastermind play --pegs 5 --colors 8 --daily`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			oracle, err := buildOracle(cmd.Context(), opts, time.Now())
			if err != nil {
				return err
			}
			s := &session{
				oracle:   oracle,
				in:       cmd.InOrStdin(),
				out:      cmd.OutOrStdout(),
				rounds:   opts.rounds,
				attempts: opts.attempts,
				reveal:   opts.reveal,
			}
			sum, err := s.run()
			if err != nil {
				return err
			}
			log.Info().Int("rounds", sum.Rounds).Int("solved", sum.Solved).Int("guesses", sum.Guesses).Msg("session finished")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.codesPath, "codes", getEnv("MASTERMIND_CODES", ""), "code list file (.txt or .yaml)")
	f.StringVar(&opts.dbPath, "db", getEnv("MASTERMIND_DB", ""), "SQLite database holding code sets")
	f.StringVar(&opts.setName, "set", "", "code set name inside --db")
	f.BoolVar(&opts.practice, "practice", false, "use the built-in practice list")
	f.IntVar(&opts.pegs, "pegs", getEnvInt("MASTERMIND_PEGS", game.DefaultPegs), "pegs per code (random play only)")
	f.IntVar(&opts.colors, "colors", getEnvInt("MASTERMIND_COLORS", game.DefaultColors), "number of colors (random play only)")
	f.IntVar(&opts.rounds, "rounds", 0, "rounds to play; 0 plays through the list, or one round without a list")
	f.IntVar(&opts.attempts, "attempts", 10, "guesses allowed per round; 0 means unlimited")
	f.BoolVar(&opts.daily, "daily", false, "seed random codes from today's date")
	f.StringVar(&opts.salt, "salt", getEnv("DAILY_SALT", "local_dev_salt"), "salt for --daily seeding")
	f.BoolVar(&opts.reveal, "reveal", true, "show the secret after a lost round")
	return cmd
}

// validate rejects session limits that would never read a guess.
func (o playOptions) validate() error {
	if o.rounds < 0 {
		return fmt.Errorf("--rounds must be 0 or more, got %d", o.rounds)
	}
	if o.attempts < 0 {
		return fmt.Errorf("--attempts must be 0 or more, got %d", o.attempts)
	}
	return nil
}

// buildOracle loads the configured list, if any, and constructs the oracle.
func buildOracle(ctx context.Context, opts playOptions, now time.Time) (*game.Oracle, error) {
	var gameOpts []game.Option
	if opts.daily {
		gameOpts = append(gameOpts, game.WithSampler(daily.Sampler(now, opts.salt)))
		log.Debug().Str("date", daily.DateKey(now)).Msg("daily seeding")
	}

	list, err := loadList(ctx, opts)
	if err != nil {
		return nil, err
	}
	if list == nil {
		log.Debug().Int("pegs", opts.pegs).Int("colors", opts.colors).Msg("random codes only")
		return game.NewOracle(opts.pegs, opts.colors, gameOpts...)
	}
	log.Debug().Int("codes", len(list.Codes)).Int("pegs", list.Pegs).Int("colors", list.Colors).Msg("loaded code list")
	return game.NewQueuedOracle(list.Codes, list.Pegs, list.Colors, gameOpts...)
}

// loadList returns nil, nil when no list source is configured.
func loadList(ctx context.Context, opts playOptions) (*codes.List, error) {
	sources := 0
	for _, set := range []bool{opts.codesPath != "", opts.setName != "", opts.practice} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, errors.New("choose only one of --codes, --set or --practice")
	}

	switch {
	case opts.practice:
		return codes.Practice()
	case opts.codesPath != "":
		return codes.LoadFile(opts.codesPath)
	case opts.setName != "":
		if opts.dbPath == "" {
			return nil, errors.New("--set needs --db")
		}
		db, err := codes.OpenDB(opts.dbPath)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if err := codes.Migrate(db); err != nil {
			return nil, err
		}
		return codes.LoadSet(ctx, db, opts.setName)
	}
	return nil, nil
}

func newImportCmd() *cobra.Command {
	var dbPath, setName string
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Store a code list file in SQLite",
		Long: `Store a code list file in SQLite.

The set name defaults to the file name without its extension. Importing
under an existing name replaces that set.

Examples:
  mastermind import week1.txt --db data/codes.db
  mastermind import codes.yaml --db data/codes.db --set finals`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), args[0], dbPath, setName, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", getEnv("MASTERMIND_DB", "data/codes.db"), "SQLite database file")
	cmd.Flags().StringVar(&setName, "set", "", "set name (default: file name)")
	return cmd
}

func runImport(ctx context.Context, path, dbPath, setName string, out io.Writer) error {
	list, err := codes.LoadFile(path)
	if err != nil {
		return err
	}
	if setName == "" {
		setName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	db, err := codes.OpenDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := codes.Migrate(db); err != nil {
		return err
	}
	if err := codes.SaveSet(ctx, db, setName, list); err != nil {
		return err
	}
	log.Info().Str("set", setName).Int("codes", len(list.Codes)).Str("db", dbPath).Msg("imported code set")
	_, err = fmt.Fprintf(out, "imported %d codes into set %q\n", len(list.Codes), setName)
	return err
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mastermind/internal/codes"
	"github.com/robalobadob/mastermind/internal/game"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestBuildOracle_Random(t *testing.T) {
	o, err := buildOracle(context.Background(), playOptions{pegs: 5, colors: 8}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 5, o.NumPegs())
	assert.Equal(t, 8, o.NumColors())
	assert.Equal(t, game.ModeRandom, o.Mode())
	assert.False(t, o.HasCodeFromList())

	_, err = buildOracle(context.Background(), playOptions{pegs: 0, colors: 8}, time.Now())
	assert.ErrorIs(t, err, game.ErrInvalidPegCount)
}

func TestBuildOracle_FromFile(t *testing.T) {
	p := writeFile(t, "codes.txt", "3 2\n2 1\n0 0\n")
	o, err := buildOracle(context.Background(), playOptions{codesPath: p, pegs: 9, colors: 9}, time.Now())
	require.NoError(t, err)

	// The list's board shape wins over --pegs/--colors.
	assert.Equal(t, 2, o.NumPegs())
	assert.Equal(t, 3, o.NumColors())
	assert.True(t, o.Secret().Equal(game.NewCode(2, 1)))
	assert.True(t, o.HasCodeFromList())
}

func TestBuildOracle_Practice(t *testing.T) {
	o, err := buildOracle(context.Background(), playOptions{practice: true}, time.Now())
	require.NoError(t, err)
	practice, err := codes.Practice()
	require.NoError(t, err)
	assert.True(t, o.Secret().Equal(game.NewCode(practice.Codes[0]...)))
}

func TestBuildOracle_Daily(t *testing.T) {
	day := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	opts := playOptions{pegs: 4, colors: 6, daily: true, salt: "s"}
	a, err := buildOracle(context.Background(), opts, day)
	require.NoError(t, err)
	b, err := buildOracle(context.Background(), opts, day.Add(3*time.Hour))
	require.NoError(t, err)
	assert.True(t, a.Secret().Equal(b.Secret()))
}

func TestBuildOracle_SourceErrors(t *testing.T) {
	ctx := context.Background()
	_, err := buildOracle(ctx, playOptions{practice: true, codesPath: "x.txt"}, time.Now())
	assert.ErrorContains(t, err, "choose only one")

	_, err = buildOracle(ctx, playOptions{setName: "week1"}, time.Now())
	assert.ErrorContains(t, err, "--set needs --db")

	bad := writeFile(t, "bad.txt", "6 4\n0 1 2\n")
	_, err = buildOracle(ctx, playOptions{codesPath: bad}, time.Now())
	assert.ErrorIs(t, err, codes.ErrCodeLength)
}

func TestImportThenPlayFromDB(t *testing.T) {
	ctx := context.Background()
	src := writeFile(t, "week1.yaml", "colors: 6\npegs: 4\ncodes:\n  - [5, 4, 3, 2]\n  - [0, 0, 1, 1]\n")
	dbPath := filepath.Join(t.TempDir(), "codes.db")

	out := &bytes.Buffer{}
	require.NoError(t, runImport(ctx, src, dbPath, "", out))
	assert.Equal(t, "imported 2 codes into set \"week1\"\n", out.String())

	o, err := buildOracle(ctx, playOptions{dbPath: dbPath, setName: "week1"}, time.Now())
	require.NoError(t, err)
	assert.True(t, o.Secret().Equal(game.NewCode(5, 4, 3, 2)))
	o.NextCode()
	assert.True(t, o.Secret().Equal(game.NewCode(0, 0, 1, 1)))

	_, err = buildOracle(ctx, playOptions{dbPath: dbPath, setName: "missing"}, time.Now())
	assert.ErrorIs(t, err, codes.ErrSetNotFound)
}

func TestPlayCommand(t *testing.T) {
	p := writeFile(t, "codes.txt", "6 4\n0 1 2 3\n")
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetIn(bytes.NewBufferString("3210\n0123\n"))
	cmd.SetArgs([]string{"play", "--codes", p})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "0 exact, 4 color")
	assert.Contains(t, out.String(), "Solved 1 of 1 rounds.")
}

func TestPlayCommand_NegativeFlags(t *testing.T) {
	p := writeFile(t, "codes.txt", "6 4\n0 1 2 3\n")
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"rounds", []string{"--rounds=-1"}, "--rounds must be 0 or more"},
		{"attempts", []string{"--attempts=-1"}, "--attempts must be 0 or more"},
		{"both", []string{"--rounds=-1", "--attempts=-1"}, "--rounds must be 0 or more"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetIn(bytes.NewBufferString("0123\n"))
			cmd.SetArgs(append([]string{"play", "--codes", p}, tt.args...))

			err := cmd.ExecuteContext(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.NotContains(t, out.String(), "Out of guesses.")
		})
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("hangman"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParseDefaults(t *testing.T) {
	cli, ctx := parse(t, "simulate")
	assert.Equal(t, "simulate", ctx.Command())
	assert.Equal(t, 10000, cli.Simulate.Rounds)
	assert.Equal(t, "frequency", cli.Simulate.Strategy)
	assert.Nil(t, cli.Simulate.Seed)

	cli, _ = parse(t, "serve", "--seed", "7")
	require.NotNil(t, cli.Serve.Seed)
	assert.Equal(t, int64(7), *cli.Serve.Seed)
	assert.Equal(t, "hangman.hcl", cli.Serve.Config)

	cli, _ = parse(t, "play")
	assert.Equal(t, "hangman.log", cli.Play.LogFile)
}

func TestParseRejectsUnknownStrategy(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)
	_, err = parser.Parse([]string{"simulate", "--strategy", "psychic"})
	assert.Error(t, err)
}

func TestWordsCmd(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&WordsCmd{}).run(&out))
	assert.Contains(t, out.String(), "Category: Baseball")
	assert.Contains(t, out.String(), "7 words OK")

	path := filepath.Join(t.TempDir(), "words.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
category = "Pitchers"
words    = ["Koufax", "Cy Young"]
`), 0o600))

	out.Reset()
	require.NoError(t, (&WordsCmd{File: path}).run(&out))
	assert.Contains(t, out.String(), "Category: Pitchers")
	assert.Contains(t, out.String(), "  Cy Young\n")

	require.NoError(t, os.WriteFile(path, []byte(`words = ["R2D2"]`), 0o600))
	assert.Error(t, (&WordsCmd{File: path}).run(&out))
}

func TestSimulateCmd(t *testing.T) {
	seed := int64(99)
	report := filepath.Join(t.TempDir(), "report.toml")
	cmd := &SimulateCmd{
		Rounds:   20,
		Strategy: "dictionary",
		Workers:  2,
		Seed:     &seed,
		Report:   report,
	}

	var stdout, stderr bytes.Buffer
	require.NoError(t, cmd.run(&stdout, &stderr))
	assert.Contains(t, stdout.String(), "Rounds played: 20")
	assert.Contains(t, stdout.String(), "Seed: 99")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `strategy = "dictionary"`)
}

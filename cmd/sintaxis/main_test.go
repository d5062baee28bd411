package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const (
	testLexicon = "../../testdata/spanish.json"
	testMixed   = "../../testdata/mixed.txt"
	testValid   = "../../testdata/valid.txt"
)

// runApp runs the CLI with args and returns its standard output and the
// exit code passed to cli.OsExiter (0 when it was not called).
func runApp(t *testing.T, args ...string) (string, int, error) {
	t.Helper()

	prevLogger := slog.Default()
	prevExiter := cli.OsExiter
	code := 0
	cli.OsExiter = func(c int) { code = c }
	t.Cleanup(func() {
		slog.SetDefault(prevLogger)
		cli.OsExiter = prevExiter
	})

	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run(append([]string{"sintaxis", "--log-level", "error"}, args...))
	return out.String(), code, err
}

func TestConjugateCommand(t *testing.T) {
	out, _, err := runApp(t, "conjugate", "cantar", "Vivir", "sol")
	require.NoError(t, err)

	assert.Contains(t, out, "cantar: CANTO, CANTAS, CANTA, CANTAMOS, CANTÁIS, CANTAN\n")
	assert.Contains(t, out, "Vivir: VIVO, VIVES, VIVE, VIVIMOS, VIVÍS, VIVEN\n")
	assert.Contains(t, out, "sol: not a regular infinitive\n")
}

func TestConjugateCommandRequiresArgs(t *testing.T) {
	_, code, err := runApp(t, "conjugate")
	require.Error(t, err)
	assert.Equal(t, 2, code)
}

func TestAnalyseCommand(t *testing.T) {
	out, _, err := runApp(t, "analyse", "--lexicon", testLexicon, "María", "corre", "3", "xyz")
	require.NoError(t, err)

	assert.Regexp(t, `María\s+noun, person`, out)
	assert.Regexp(t, `corre\s+verb`, out)
	assert.Regexp(t, `3\s+numeral`, out)
	assert.Regexp(t, `xyz\s+unknown`, out)
}

func TestAnalyseCommandFile(t *testing.T) {
	out, _, err := runApp(t, "analyse", "--lexicon", testLexicon, "--file", testMixed, "--workers", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "1: Maria corre.")
	assert.Contains(t, out, "2: Corre Maria.")
	assert.Regexp(t, `canta\.\s+unknown`, out)
}

func TestValidateCommandValid(t *testing.T) {
	out, code, err := runApp(t, "validate", "--lexicon", testLexicon, testValid)
	require.NoError(t, err)
	assert.Zero(t, code)
	assert.Contains(t, out, "Pedro escribe")
	assert.Contains(t, out, "sentence is valid")
}

func TestValidateCommandAborts(t *testing.T) {
	out, code, err := runApp(t, "validate", "--lexicon", testLexicon, testMixed)
	require.Error(t, err)
	assert.Equal(t, exitSyntaxError, code)

	assert.Contains(t, out, "Corre Maria\nsyntax error: End failed\n")
	assert.NotContains(t, out, "Pedro canta")
}

func TestValidateCommandContinues(t *testing.T) {
	out, code, err := runApp(t, "validate", "--policy", "continue", "--lexicon", testLexicon, testMixed)
	require.Error(t, err)
	assert.Equal(t, exitSyntaxError, code)
	assert.Contains(t, err.Error(), "1 of 3 sentences rejected")
	assert.Contains(t, out, "Pedro canta\nsentence is valid\n")
}

func TestValidateCommandBadPolicy(t *testing.T) {
	_, code, err := runApp(t, "validate", "--policy", "retry", "--lexicon", testLexicon, testMixed)
	require.Error(t, err)
	assert.Equal(t, 2, code)
}

func TestImportAndCategoriesCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "lexicon")

	out, _, err := runApp(t, "import", "--lexicon", testLexicon, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 56 forms")

	out, _, err = runApp(t, "categories", "--db", db)
	require.NoError(t, err)
	assert.Regexp(t, `verb\s+63\n`, out)
	assert.Regexp(t, `article\s+0\n`, out)
	assert.Regexp(t, `total\s+110\n`, out)
}

func TestImportCommandRequiresFlags(t *testing.T) {
	_, _, err := runApp(t, "import", "--lexicon", testLexicon)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db")
}

package shell

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/doublets/config"
	"github.com/domino14/doublets/ladder"
	"github.com/domino14/doublets/lexicon"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"   ", nil, errNoData},
		{"count",
			&shellcmd{"count", nil, map[string]string{}},
			nil},
		{"ladder cold warm",
			&shellcmd{"ladder", []string{"cold", "warm"}, map[string]string{}},
			nil},
		{"ladder cold -maxqueue 10 warm ",
			&shellcmd{"ladder",
				[]string{"cold", "warm"},
				map[string]string{"maxqueue": "10"}},
			nil,
		},
		{`load "my words.txt"`,
			&shellcmd{"load", []string{"my words.txt"}, map[string]string{}},
			nil},
		{"ladder cold warm -maxqueue",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func newTestController(t *testing.T) (*ShellController, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigLexiconPath, "../lexicon/testdata")
	out := &bytes.Buffer{}
	return NewShellController(cfg, out), out
}

// run executes a line and returns what it printed, trimmed.
func run(sc *ShellController, out *bytes.Buffer, line string) string {
	out.Reset()
	sc.execute(line)
	return strings.TrimSpace(out.String())
}

func TestCommandsNeedLexicon(t *testing.T) {
	sc, out := newTestController(t)
	for _, line := range []string{"count", "isword cat", "neighbors cat", "ladder a b", "check a", "random"} {
		assert.Equal(t, "Error: "+errNoLexicon.Error(), run(sc, out, line), line)
	}
	// hamming does not need a lexicon
	assert.Equal(t, "2", run(sc, out, "hamming aa bb"))
	assert.Equal(t, "not comparable", run(sc, out, "hamming aa bbb"))
}

func TestLoadByName(t *testing.T) {
	sc, out := newTestController(t)
	assert.Equal(t, "loaded words4: 20 words", run(sc, out, "load words4"))
	assert.Equal(t, "20", run(sc, out, "count"))
	assert.Equal(t, "cold -> cord -> card -> ward -> warm (5 words)", run(sc, out, "ladder cold warm"))
	assert.Equal(t, "no ladder", run(sc, out, "ladder cold warm -maxqueue 3"))
}

func TestLoadByPath(t *testing.T) {
	sc, out := newTestController(t)
	assert.Equal(t, "loaded tiny: 11 words", run(sc, out, "load ../lexicon/testdata/tiny.txt"))

	assert.Equal(t, "cot is a word", run(sc, out, "isword COT"))
	assert.Equal(t, "cut is not a word", run(sc, out, "isword cut"))
	assert.Equal(t, "cat cod cog dot", run(sc, out, "neighbors cot"))
	assert.Equal(t, "no neighbors", run(sc, out, "neighbors ink"))
	assert.Equal(t, "aa -> ab -> bb (3 words)", run(sc, out, "ladder aa bb"))
	assert.Equal(t, "no ladder", run(sc, out, "ladder cat ink"))
	assert.Equal(t, "no ladder", run(sc, out, "ladder cat aa"))
	assert.Equal(t, "zzz (1 words)", run(sc, out, "ladder zzz zzz"))
	assert.Equal(t, "valid ladder", run(sc, out, "check cat cot cog dog"))
	assert.Equal(t, "not a ladder", run(sc, out, "check cat dog"))
	assert.Equal(t, "not a ladder", run(sc, out, "check"))
}

func TestLoadErrors(t *testing.T) {
	sc, out := newTestController(t)
	assert.True(t, strings.HasPrefix(run(sc, out, "load nothere"), "Error:"))
	assert.True(t, strings.HasPrefix(run(sc, out, "load"), "Error: "+errWrongArgs.Error()))
	// a failed load leaves no lexicon behind
	assert.Equal(t, "Error: "+errNoLexicon.Error(), run(sc, out, "count"))
}

func TestWrongArgsAndUnknown(t *testing.T) {
	sc, out := newTestController(t)
	require.NoError(t, sc.LoadLexicon("tiny"))
	assert.True(t, strings.HasPrefix(run(sc, out, "ladder cat"), "Error: "+errWrongArgs.Error()))
	assert.True(t, strings.HasPrefix(run(sc, out, "hamming cat"), "Error: "+errWrongArgs.Error()))
	assert.True(t, strings.HasPrefix(run(sc, out, "ladder cat dog -maxqueue x"), "Error:"))
	assert.True(t, strings.HasPrefix(run(sc, out, "ladder cat dog -maxqueue -2"), "Error:"))
	assert.Equal(t, "Error: command not recognized: frobnicate", run(sc, out, "frobnicate"))
	assert.Equal(t, "", run(sc, out, ""))
}

func TestRandom(t *testing.T) {
	sc, out := newTestController(t)
	require.NoError(t, sc.LoadLexicon("words4"))
	res := run(sc, out, "random 4")
	assert.Regexp(t, `^[a-z]{4} -> [a-z]{4}: `, res)
	assert.Equal(t, "Error: no words of length 7", run(sc, out, "random 7"))
}

func TestRandomLoneWord(t *testing.T) {
	sc, out := newTestController(t)
	solver, err := ladder.NewSolver(lexicon.New("lone", []string{"solo", "cat", "cot"}))
	require.NoError(t, err)
	sc.solver = solver
	assert.Equal(t, "solo -> solo: solo (1 words)", run(sc, out, "random 4"))
	assert.Regexp(t, `^c[ao]t -> c[ao]t: c[ao]t -> c[ao]t \(2 words\)$`, run(sc, out, "random 3"))
}

func TestHammingNormalizes(t *testing.T) {
	sc, out := newTestController(t)
	assert.Equal(t, "0", run(sc, out, "hamming ΑΣ ας"))
	assert.Equal(t, "1", run(sc, out, "hamming CAT cot"))
}

func TestHelp(t *testing.T) {
	sc, out := newTestController(t)
	assert.Contains(t, run(sc, out, "help"), "ladder <start> <end>")
	assert.Contains(t, run(sc, out, "help load"), "lexicon-path")
	assert.Equal(t, "There is no help text for the topic nope", run(sc, out, "help nope"))
}

func TestExecuteExit(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	sig := make(chan os.Signal, 1)
	sc.Execute(sig, "exit")
	is.Equal(len(sig), 1)
	sc.Execute(sig, "help")
	is.Equal(len(sig), 1)
}

func TestCompleter(t *testing.T) {
	sc, _ := newTestController(t)
	require.NoError(t, sc.LoadLexicon("words4"))
	c := NewShellCompleter(sc)

	complete := func(text string) []string {
		matches, _ := c.Do([]rune(text), len([]rune(text)))
		var out []string
		for _, m := range matches {
			out = append(out, string(m))
		}
		return out
	}
	assert.Equal(t, []string{"der"}, complete("lad"))
	assert.Equal(t, []string{"maxqueue"}, complete("ladder cold -"))
	assert.Equal(t, []string{"d", "e", "m"}, complete("ladder wor"))
	assert.Equal(t, []string{"iny"}, complete("load t"))
	assert.Contains(t, complete("load "), "words4")
}

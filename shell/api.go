package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/doublets/ladder"
	"github.com/domino14/doublets/lexicon"
)

// randomAttempts is how many random pairs the random command tries before
// settling for a pair with no ladder.
const randomAttempts = 20

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func formatLadder(l []string) string {
	if len(l) == 0 {
		return "no ladder"
	}
	return fmt.Sprintf("%s (%d words)", strings.Join(l, " -> "), len(l))
}

func (sc *ShellController) requireSolver() (*ladder.Solver, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	return sc.solver, nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage()), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, fmt.Errorf("%w: load takes a lexicon name or path", errWrongArgs)
	}
	if err := sc.LoadLexicon(cmd.args[0]); err != nil {
		return nil, err
	}
	lex := sc.solver.Lexicon()
	return msg(fmt.Sprintf("loaded %s: %d words", lex.Name(), lex.Size())), nil
}

func (sc *ShellController) count(cmd *shellcmd) (*Response, error) {
	s, err := sc.requireSolver()
	if err != nil {
		return nil, err
	}
	return msg(strconv.Itoa(s.WordCount())), nil
}

func (sc *ShellController) isWord(cmd *shellcmd) (*Response, error) {
	s, err := sc.requireSolver()
	if err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, fmt.Errorf("%w: isword takes one word", errWrongArgs)
	}
	word := lexicon.Normalize(cmd.args[0])
	if s.IsWord(word) {
		return msg(word + " is a word"), nil
	}
	return msg(word + " is not a word"), nil
}

func (sc *ShellController) hamming(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, fmt.Errorf("%w: hamming takes two words", errWrongArgs)
	}
	d := ladder.HammingDistance(lexicon.Normalize(cmd.args[0]), lexicon.Normalize(cmd.args[1]))
	if d == ladder.NotComparable {
		return msg("not comparable"), nil
	}
	return msg(strconv.Itoa(d)), nil
}

func (sc *ShellController) neighbors(cmd *shellcmd) (*Response, error) {
	s, err := sc.requireSolver()
	if err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, fmt.Errorf("%w: neighbors takes one word", errWrongArgs)
	}
	nbrs := s.Neighbors(cmd.args[0])
	if len(nbrs) == 0 {
		return msg("no neighbors"), nil
	}
	return msg(strings.Join(nbrs, " ")), nil
}

func (sc *ShellController) ladder(cmd *shellcmd) (*Response, error) {
	s, err := sc.requireSolver()
	if err != nil {
		return nil, err
	}
	if len(cmd.args) != 2 {
		return nil, fmt.Errorf("%w: ladder takes a start and an end word", errWrongArgs)
	}
	if mq, ok := cmd.options["maxqueue"]; ok {
		n, err := strconv.Atoi(mq)
		if err != nil {
			return nil, err
		}
		s, err = ladder.NewSolver(s.Lexicon(), ladder.WithMaxQueue(n))
		if err != nil {
			return nil, err
		}
	}
	return msg(formatLadder(s.MinLadder(cmd.args[0], cmd.args[1]))), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	s, err := sc.requireSolver()
	if err != nil {
		return nil, err
	}
	if s.IsWordLadder(cmd.args) {
		return msg("valid ladder"), nil
	}
	return msg("not a ladder"), nil
}

func (sc *ShellController) random(cmd *shellcmd) (*Response, error) {
	s, err := sc.requireSolver()
	if err != nil {
		return nil, err
	}
	length := 0
	if len(cmd.args) > 0 {
		length, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	lex := s.Lexicon()
	var start, end string
	var l []string
	for i := 0; i < randomAttempts; i++ {
		var ok bool
		start, ok = lex.RandomWord(length)
		if !ok {
			return nil, fmt.Errorf("no words of length %d", length)
		}
		end, _ = lex.RandomWord(lexicon.Length(start))
		// A word alone in its length bucket can only be a ladder to itself.
		if start == end && len(lex.WordsOfLength(lexicon.Length(start))) > 1 {
			continue
		}
		l = s.MinLadder(start, end)
		if len(l) > 0 {
			break
		}
	}
	return msg(fmt.Sprintf("%s -> %s: %s", start, end, formatLadder(l))), nil
}

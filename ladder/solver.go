// Package ladder finds and checks word ladders ("doublets"): sequences of
// lexicon words in which each word differs from the previous one in exactly
// one position.
//
// The word graph is never built. Two words are adjacent when their Hamming
// distance is 1, and a breadth-first search discovers adjacency on the fly,
// so the first ladder found is a shortest one.
package ladder

import (
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/domino14/doublets/lexicon"
)

// Solver answers ladder queries against one lexicon. It holds no mutable
// state, so a single Solver may be used from many goroutines.
type Solver struct {
	lex  *lexicon.Lexicon
	opts Options
}

func NewSolver(lex *lexicon.Lexicon, opts ...Option) (*Solver, error) {
	if lex == nil {
		return nil, ErrNilLexicon
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Solver{lex: lex, opts: o}, nil
}

func (s *Solver) Lexicon() *lexicon.Lexicon {
	return s.lex
}

func (s *Solver) WordCount() int {
	return s.lex.Size()
}

func (s *Solver) IsWord(word string) bool {
	return s.lex.Contains(word)
}

// HammingDistance is HammingDistance on the normalized forms of a and b,
// so it agrees with lexicon membership on what counts as the same word.
func (s *Solver) HammingDistance(a, b string) int {
	return HammingDistance(lexicon.Normalize(a), lexicon.Normalize(b))
}

// Neighbors returns every lexicon word one character away from word, in
// sorted order. word itself need not be in the lexicon. Only words of the
// same length can be at distance 1, so only that length bucket is scanned.
func (s *Solver) Neighbors(word string) []string {
	word = lexicon.Normalize(word)
	var nbrs []string
	for _, cand := range s.lex.WordsOfLength(lexicon.Length(word)) {
		if HammingDistance(word, cand) == 1 {
			nbrs = append(nbrs, cand)
		}
	}
	return nbrs
}

// IsWordLadder reports whether seq is a valid ladder: every word is in the
// lexicon and each consecutive pair is one character apart. An empty
// sequence is never a ladder; a single word trivially is, since it has no
// pairs to check.
func (s *Solver) IsWordLadder(seq []string) bool {
	if len(seq) == 0 {
		return false
	}
	for i := 0; i+1 < len(seq); i++ {
		a, b := lexicon.Normalize(seq[i]), lexicon.Normalize(seq[i+1])
		if !s.lex.Contains(a) || !s.lex.Contains(b) {
			return false
		}
		if HammingDistance(a, b) != 1 {
			return false
		}
	}
	return true
}

// searchNode is an entry in the discovery tree. parent indexes the node
// that discovered it, or is -1 for the start word.
type searchNode struct {
	word   string
	parent int
}

// MinLadder returns a shortest ladder from start to end, both lowercased,
// or nil if there is none. When start and end are the same word the
// ladder is just that word, whether or not it is in the lexicon. Among
// several shortest ladders the one returned is decided by the sorted
// order of each word's neighbors.
func (s *Solver) MinLadder(start, end string) []string {
	start = lexicon.Normalize(start)
	end = lexicon.Normalize(end)

	if start == end {
		return []string{start}
	}
	if HammingDistance(start, end) == NotComparable {
		return nil
	}
	if !s.lex.Contains(start) || !s.lex.Contains(end) {
		return nil
	}

	// The arena doubles as the FIFO queue: nodes[head:] are waiting to be
	// expanded.
	nodes := []searchNode{{word: start, parent: -1}}
	visited := map[string]bool{start: true}
	found := -1

search:
	for head := 0; head < len(nodes); head++ {
		for _, nbr := range s.Neighbors(nodes[head].word) {
			if visited[nbr] {
				continue
			}
			if s.opts.MaxQueue > 0 && len(nodes) >= s.opts.MaxQueue {
				log.Debug().Str("start", start).Str("end", end).
					Int("max-queue", s.opts.MaxQueue).Msg("min-ladder-abandoned")
				return nil
			}
			visited[nbr] = true
			nodes = append(nodes, searchNode{word: nbr, parent: head})
			if nbr == end {
				found = len(nodes) - 1
				break search
			}
		}
	}

	if found < 0 {
		log.Debug().Str("start", start).Str("end", end).
			Int("nodes", len(nodes)).Msg("min-ladder-unreachable")
		return nil
	}

	var path []string
	for i := found; i >= 0; i = nodes[i].parent {
		path = append(path, nodes[i].word)
	}
	slices.Reverse(path)

	log.Debug().Str("start", start).Str("end", end).
		Int("nodes", len(nodes)).Int("length", len(path)).Msg("min-ladder")
	return path
}

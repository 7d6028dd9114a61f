// Package lexicon holds the fixed dictionary a word ladder is built from.
// A Lexicon is immutable once constructed and can be shared freely between
// goroutines.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"lukechampine.com/frand"
)

type Lexicon struct {
	name  string
	words map[string]struct{}
	// sorted holds every word in lexical order; buckets holds the same
	// words split up by length, each bucket still sorted.
	sorted  []string
	buckets map[int][]string
	lengths []int
}

// Normalize lowercases a word. Every word is normalized before it is
// stored, compared or returned.
func Normalize(word string) string {
	return cases.Lower(language.Und).String(word)
}

// Length is the number of characters in a word, which is what the ladder
// code compares, rather than its byte length.
func Length(word string) int {
	return utf8.RuneCountInString(word)
}

// New builds a lexicon from a list of words. Words are lowercased and
// deduplicated; empty words are dropped.
func New(name string, words []string) *Lexicon {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = Normalize(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	sorted := lo.Keys(set)
	slices.Sort(sorted)

	buckets := lo.GroupBy(sorted, Length)
	lengths := lo.Keys(buckets)
	slices.Sort(lengths)

	return &Lexicon{
		name:    name,
		words:   set,
		sorted:  sorted,
		buckets: buckets,
		lengths: lengths,
	}
}

// FromReader reads a word list. Only the first whitespace-delimited token
// on each line is a word; anything after it (definitions, scores) is
// ignored, as are blank lines. If the reader fails the whole lexicon is
// discarded.
func FromReader(name string, r io.Reader) (*Lexicon, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			words = append(words, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", name, err)
	}
	lex := New(name, words)
	log.Debug().Str("lexicon", name).Int("words", lex.Size()).
		Ints("lengths", lex.lengths).Msg("lexicon-loaded")
	return lex, nil
}

// Load reads a word list from a file. The lexicon is named after the file,
// minus its extension.
func Load(filename string) (*Lexicon, error) {
	log.Debug().Msgf("Loading %v ...", filename)
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	base := filepath.Base(filename)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return FromReader(name, f)
}

func (l *Lexicon) Name() string {
	return l.name
}

// Contains reports whether word is in the lexicon, ignoring case.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[Normalize(word)]
	return ok
}

func (l *Lexicon) Size() int {
	return len(l.words)
}

// Words returns every word in sorted order. The slice is a copy.
func (l *Lexicon) Words() []string {
	return slices.Clone(l.sorted)
}

// WordsOfLength returns the sorted words with exactly n characters.
// Callers must not modify the returned slice.
func (l *Lexicon) WordsOfLength(n int) []string {
	return l.buckets[n]
}

// Lengths returns the distinct word lengths present, ascending.
func (l *Lexicon) Lengths() []int {
	return slices.Clone(l.lengths)
}

// RandomWord picks a word with the given number of characters, or any
// word at all if length <= 0. It returns false if there is no such word.
func (l *Lexicon) RandomWord(length int) (string, bool) {
	pool := l.sorted
	if length > 0 {
		pool = l.buckets[length]
	}
	if len(pool) == 0 {
		return "", false
	}
	return pool[frand.Intn(len(pool))], true
}

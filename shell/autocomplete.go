package shell

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/doublets/config"
	"github.com/domino14/doublets/lexicon"
)

// maxWordCompletions caps how many lexicon words are offered at once.
const maxWordCompletions = 40

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options   []string // Available options for this command (e.g., "-maxqueue")
	Args      []string // Possible argument values (for non-option arguments)
	WordsArgs bool     // Arguments are lexicon words
}

var commandMetadata = map[string]CommandMetadata{
	"ladder": {
		Options:   []string{"-maxqueue"},
		WordsArgs: true,
	},
	"isword":    {WordsArgs: true},
	"neighbors": {WordsArgs: true},
	"hamming":   {WordsArgs: true},
	"check":     {WordsArgs: true},
	"help": {
		Args: []string{"ladder", "load"},
	},
}

// Common command names for command completion
var commandNames = []string{
	"help", "load", "count", "isword", "hamming", "neighbors", "ladder",
	"check", "random", "exit",
}

// Do implements the readline.AutoComplete interface
// It provides context-aware autocomplete based on what's been typed
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// If we can't parse, fall back to simple space splitting
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		metadata := commandMetadata[cmdName]
		switch {
		case cmdName == "load":
			completions = c.lexiconNames()
		case strings.HasPrefix(prefix, "-"):
			completions = metadata.Options
		case len(metadata.Args) > 0:
			completions = metadata.Args
		case metadata.WordsArgs:
			completions = c.wordsWithPrefix(lexicon.Normalize(prefix))
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len([]rune(prefix))
}

// lexiconNames lists the lexicons that `load` can find by name.
func (c *ShellCompleter) lexiconNames() []string {
	dir := c.sc.config.GetString(config.ConfigLexiconPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != lexicon.FileExtension {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), lexicon.FileExtension))
	}
	return names
}

func (c *ShellCompleter) wordsWithPrefix(prefix string) []string {
	if c.sc.solver == nil || prefix == "" {
		return nil
	}
	words := c.sc.solver.Lexicon().Words()
	i := sort.SearchStrings(words, prefix)
	var out []string
	for ; i < len(words) && strings.HasPrefix(words[i], prefix); i++ {
		out = append(out, words[i])
		if len(out) == maxWordCompletions {
			break
		}
	}
	return out
}

package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/doublets/config"
	"github.com/domino14/doublets/ladder"
	"github.com/domino14/doublets/lexicon"
)

var (
	errNoData            = errors.New("no data in command")
	errWrongOptionSyntax = errors.New("wrong format for option")
	errNoLexicon         = errors.New("please load a lexicon first with the `load` command")
	errUnknownCommand    = errors.New("command not recognized")
	errWrongArgs         = errors.New("wrong number of arguments")
)

type ShellController struct {
	l      *readline.Instance
	config *config.Config
	out    io.Writer

	solver *ladder.Solver
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController creates a controller that writes command output to
// out. The readline instance is only created when Loop starts, so one-shot
// commands never touch the terminal.
func NewShellController(cfg *config.Config, out io.Writer) *ShellController {
	return &ShellController{config: cfg, out: out}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a command line with shell quoting rules. Fields that
// start with a dash are options and take the following field as a value.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}

	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") && len(fields[idx]) > 1 {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{
		cmd:     cmd,
		args:    args,
		options: options,
	}, nil
}

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "help":
		return sc.help(cmd)
	case "load":
		return sc.load(cmd)
	case "count":
		return sc.count(cmd)
	case "isword":
		return sc.isWord(cmd)
	case "hamming":
		return sc.hamming(cmd)
	case "neighbors":
		return sc.neighbors(cmd)
	case "ladder":
		return sc.ladder(cmd)
	case "check":
		return sc.check(cmd)
	case "random":
		return sc.random(cmd)
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownCommand, cmd.cmd)
	}
}

// execute runs a single command line and shows its result. It returns
// true if the line asked the shell to exit.
func (sc *ShellController) execute(line string) bool {
	cmd, err := extractFields(line)
	if err != nil {
		if err != errNoData {
			sc.showError(err)
		}
		return false
	}
	if cmd.cmd == "exit" {
		return true
	}
	resp, err := sc.dispatch(cmd)
	if err != nil {
		sc.showError(err)
		return false
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return false
}

// Execute runs one command line, for use outside the interactive loop.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	if sc.execute(line) {
		sig <- syscall.SIGINT
	}
}

// LoadLexicon loads a lexicon by name or path and makes it current.
func (sc *ShellController) LoadLexicon(nameOrPath string) error {
	var lex *lexicon.Lexicon
	var err error
	if isLexiconFile(nameOrPath) {
		lex, err = lexicon.Load(nameOrPath)
	} else {
		lex, err = lexicon.Get(sc.config, nameOrPath)
	}
	if err != nil {
		return err
	}
	solver, err := ladder.NewSolver(lex, ladder.WithMaxQueue(sc.config.GetInt(config.ConfigMaxQueue)))
	if err != nil {
		return err
	}
	sc.solver = solver
	log.Info().Str("lexicon", lex.Name()).Int("words", lex.Size()).Msg("lexicon-loaded")
	return nil
}

func isLexiconFile(nameOrPath string) bool {
	if !strings.ContainsRune(nameOrPath, os.PathSeparator) && !strings.Contains(nameOrPath, ".") {
		return false
	}
	fi, err := os.Stat(nameOrPath)
	return err == nil && !fi.IsDir()
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mdoublets>\033[0m ",
		HistoryFile:     sc.config.GetString(config.ConfigHistoryFile),
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Error().Err(err).Msg("could not start readline")
		sig <- syscall.SIGINT
		return
	}
	sc.l = l
	sc.out = l.Stdout()
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if sc.execute(line) {
			sig <- syscall.SIGINT
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

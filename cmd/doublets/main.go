package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/doublets/config"
	"github.com/domino14/doublets/shell"
)

var (
	GitVersion string
)

func main() {
	// Determine the directory of the executable. We will use this
	// directory to find the lexica if an absolute path is not
	// provided for them.
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.AdjustRelativePaths(exPath)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
	log.Debug().Str("version", GitVersion).Str("executable-path", exPath).
		Interface("settings", cfg.AllSettings()).Msg("loaded config")

	sc := shell.NewShellController(cfg, os.Stdout)
	if lex := cfg.GetString(config.ConfigDefaultLexicon); lex != "" {
		if err := sc.LoadLexicon(lex); err != nil {
			log.Fatal().Err(err).Str("lexicon", lex).Msg("could not load lexicon")
		}
	}

	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Debug().Msg("got quit signal...")
		close(done)
	}()

	if args := cfg.Args(); len(args) == 0 {
		go sc.Loop(sig)
	} else {
		sc.Execute(sig, shellquote.Join(args...))
		select {
		case sig <- syscall.SIGINT:
		default:
		}
	}

	<-done
}

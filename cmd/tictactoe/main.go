package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/IlikeChooros/go-minimax/pkg/config"
	"github.com/IlikeChooros/go-minimax/pkg/logging"
	"github.com/IlikeChooros/go-minimax/pkg/shell"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func completer() *readline.PrefixCompleter {
	items := lo.Map(shell.CommandNames(), func(name string, _ int) readline.PrefixCompleterInterface {
		return readline.PcItem(name)
	})
	return readline.NewPrefixCompleter(items...)
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logging.Setup(os.Stderr, cfg.GetBool(config.KeyDebug))
	log.Debug().Interface("config", cfg.SanitizedSettings()).Msg("loaded config")

	// validated by Load
	human, _ := cfg.HumanMark()

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mtictactoe>\033[0m ",
		HistoryFile:     cfg.GetString(config.KeyHistoryFile),
		AutoComplete:    completer(),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not start readline")
	}
	defer l.Close()

	session := shell.NewSession(l.Stdout(), termenv.NewOutput(os.Stdout), shell.Options{
		HumanMark:  human,
		HumanFirst: cfg.GetBool(config.KeyHumanFirst),
		Pruning:    cfg.GetBool(config.KeyPruning),
	})
	session.Start()

	for !session.Quitting() {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		if err := session.Execute(strings.TrimSpace(line)); err != nil {
			fmt.Fprintln(l.Stderr(), "Error: "+err.Error())
		}
	}
	log.Debug().Msg("Exiting readline loop...")
}

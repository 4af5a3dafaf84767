// Package main runs a two-player reversi game on the console.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"reversi/internal/cli"
	"reversi/internal/config"
	"reversi/internal/logging"
	clitransport "reversi/internal/transport/cli"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	cfg := config.Default()

	flag.StringVar(&cfg.Theme, "theme", "", "Board color theme: off, green or gray (default: green on a terminal)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	flag.StringVar(&cfg.LogFile, "log-file", "", "Append JSON logs to this file instead of stderr")
	flag.StringVar(&cfg.HistoryFile, "history", "", "Path to keep input history in (interactive only)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(cfg, os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	var (
		input  cli.LineReader
		output io.Writer = os.Stdout
	)
	if interactive {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "> ",
			HistoryFile:     cfg.HistoryFile,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
		if err != nil {
			logger.Error().Err(err).Msg("readline unavailable")
			fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
			os.Exit(1)
		}
		defer rl.Close()
		input = rl
		output = rl.Stdout()
	} else {
		input = cli.NewScannerReader(os.Stdin, os.Stdout)
	}

	view := cli.New(input, output)

	theme := cli.ColorTheme(cfg.Theme)
	if theme == "" {
		theme = cli.ThemeOff
		if interactive {
			theme = cli.ThemeGreen
		}
	}
	if err := view.SetTheme(theme); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	logger.Debug().
		Bool("interactive", interactive).
		Str("theme", string(theme)).
		Msg("console ready")

	handler := clitransport.New(view, logger)
	handler.Run() // All game loop logic is in the handler
}

package cli

import (
	"errors"
	"fmt"

	"reversi/internal/cli"
	"reversi/internal/core"
	"reversi/internal/game"
	"reversi/internal/transport"

	"github.com/rs/zerolog"
)

type CLIHandler struct {
	view transport.View
	log  zerolog.Logger
	game *game.Game
}

func New(view transport.View, logger zerolog.Logger) *CLIHandler {
	return &CLIHandler{
		view: view,
		log:  logger,
	}
}

// Main game loop - simple command processing
func (h *CLIHandler) Run() {
	h.view.ShowWelcome()
	h.startGame()

	for {
		h.view.SetPrompt(h.getPrompt())

		// Get command (blocking)
		cmd, err := h.view.GetCommand()
		if err != nil {
			h.log.Error().Err(err).Msg("reading input failed")
			break
		}

		// Process command - returns false to exit
		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

func (h *CLIHandler) startGame() {
	h.game = game.New(h.log)
	h.view.DisplayBoard(h.game.Board())
}

// Generates the appropriate command prompt
func (h *CLIHandler) getPrompt() string {
	if h.game.State() != core.StateOngoing {
		return "> "
	}
	return cli.PlayerPrompt(h.game.Turn())
}

// Handles user commands - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		return true

	case cli.CmdNew:
		h.startGame()

	case cli.CmdMove:
		h.handleMove(cmd)

	case cli.CmdHint:
		if h.game.State() != core.StateOngoing {
			h.view.ShowMessage("Game is over.")
			return true
		}
		turn := h.game.Turn()
		h.view.ShowHint(turn, h.game.Board().LegalMoves(turn))

	case cli.CmdScore:
		h.view.ShowScore(h.game.Score())

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|green|gray>")
			return true
		}

		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
			h.view.DisplayBoard(h.game.Board())
		}

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) handleMove(cmd *cli.Command) {
	if h.game.State() != core.StateOngoing {
		h.view.ShowMessage("Game is over. Start a new game with 'new', or 'quit'.")
		return
	}

	x, y, err := cli.ParseCoordinates(cmd.Args)
	if err != nil {
		h.log.Debug().Str("input", cmd.Raw).Err(err).Msg("unparseable move")
		h.view.ShowMessage("input failed")
		return
	}

	result, err := h.game.Play(x, y)
	switch {
	case errors.Is(err, game.ErrOutOfField):
		h.view.ShowMessage("input failed")
		return
	case errors.Is(err, game.ErrIllegalMove):
		h.view.ShowMessage("cannot place there. input another place")
		return
	case err != nil:
		h.view.ShowError(err)
		return
	}

	h.view.DisplayBoard(h.game.Board())

	if result.Passed != nil {
		h.view.ShowPass(*result.Passed)
	}
	if result.GameState != core.StateOngoing {
		black, white := h.game.Score()
		h.view.ShowGameOver(result.GameState, black, white)
	}
}

package transport

import (
	"reversi/internal/board"
	"reversi/internal/cli"
	"reversi/internal/core"
)

// View abstracts input and display operations of the game loop
type View interface {
	GetCommand() (*cli.Command, error)
	SetPrompt(prompt string)
	SetTheme(theme cli.ColorTheme) error
	DisplayBoard(b *board.Board)
	ShowMessage(msg string)
	ShowError(err error)
	ShowPass(player core.Player)
	ShowHint(player core.Player, moves []board.Position)
	ShowScore(black, white int)
	ShowGameOver(state core.State, black, white int)
	ShowHelp()
	ShowWelcome()
}

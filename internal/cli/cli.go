package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reversi/internal/board"
	"reversi/internal/core"

	"github.com/chzyer/readline"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdMove
	CmdHint
	CmdScore
	CmdColor
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// LineReader is the line source the CLI prompts through. *readline.Instance
// satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	bg    string
	black string
	white string
	reset string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeGreen: {
		bg:    "\033[48;5;28m", // Felt green
		black: "\033[30m",
		white: "\033[97m",
		reset: "\033[0m",
	},
	ThemeGray: {
		bg:    "\033[48;5;245m",
		black: "\033[30m",
		white: "\033[97m",
		reset: "\033[0m",
	},
}

const (
	blackGlyph = "●"
	whiteGlyph = "○"
)

type CLI struct {
	input  LineReader
	output io.Writer
	theme  ColorTheme
}

func New(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:  input,
		output: output,
		theme:  ThemeOff,
	}
}

// Reads a command synchronously
func (c *CLI) GetCommand() (*Command, error) {
	line, err := c.input.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return &Command{Type: CmdQuit}, nil
		}
		return nil, err
	}

	input := strings.TrimSpace(line)
	if input == "" {
		return &Command{Type: CmdNone}, nil
	}

	return c.parseCommand(input), nil
}

func (c *CLI) parseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew}
	case "hint":
		return &Command{Type: CmdHint}
	case "score":
		return &Command{Type: CmdScore}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		// Anything else is read as coordinates
		return &Command{Type: CmdMove, Args: parts, Raw: input}
	}
}

// ParseCoordinates reads the 1-based "x y" pair a player types and returns it
// as 0-based board coordinates. Range is not checked here.
func ParseCoordinates(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected x and y separated by whitespace, got %d values", len(args))
	}

	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y %q", args[1])
	}

	return x - 1, y - 1, nil
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) SetPrompt(prompt string) {
	c.input.SetPrompt(prompt)
}

// PlayerPrompt names the side to move with its glyph
func PlayerPrompt(player core.Player) string {
	return fmt.Sprintf("%s(%s) x y > ", player, Glyph(player))
}

func Glyph(player core.Player) string {
	if player == core.PlayerBlack {
		return blackGlyph
	}
	return whiteGlyph
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

func (c *CLI) DisplayBoard(b *board.Board) {
	theme := themes[c.theme]
	var sb strings.Builder

	separator := "  " + strings.Repeat("----", board.Size) + "-\n"

	sb.WriteString("\n   ")
	for x := 0; x < board.Size; x++ {
		sb.WriteString(fmt.Sprintf(" %d  ", x+1))
	}
	sb.WriteString("\n")
	sb.WriteString(separator)

	for y := 0; y < board.Size; y++ {
		sb.WriteString(fmt.Sprintf("%d |", y+1))
		for x := 0; x < board.Size; x++ {
			glyph := " "
			color := ""
			switch b.At(x, y) {
			case core.CellBlack:
				glyph, color = blackGlyph, theme.black
			case core.CellWhite:
				glyph, color = whiteGlyph, theme.white
			}

			if c.theme == ThemeOff {
				sb.WriteString(fmt.Sprintf(" %s |", glyph))
			} else {
				sb.WriteString(fmt.Sprintf("%s%s %s %s|", theme.bg, color, glyph, theme.reset))
			}
		}
		sb.WriteString("\n")
		sb.WriteString(separator)
	}

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowPass(player core.Player) {
	c.ShowMessage(fmt.Sprintf("%s passed.", player))
}

func (c *CLI) ShowHint(player core.Player, moves []board.Position) {
	if len(moves) == 0 {
		c.ShowMessage(fmt.Sprintf("%s has no legal move.", player))
		return
	}

	cells := make([]string, 0, len(moves))
	for _, m := range moves {
		cells = append(cells, fmt.Sprintf("%d %d", m.X+1, m.Y+1))
	}
	c.ShowMessage(fmt.Sprintf("%s can place at: %s", player, strings.Join(cells, ", ")))
}

func (c *CLI) ShowScore(black, white int) {
	c.ShowMessage(fmt.Sprintf("%s: %d", core.PlayerBlack, black))
	c.ShowMessage(fmt.Sprintf("%s: %d", core.PlayerWhite, white))
}

func (c *CLI) ShowGameOver(state core.State, black, white int) {
	c.ShowMessage("game end!")
	c.ShowScore(black, white)
	c.ShowMessage(state.String())
	c.ShowMessage("Start a new game with 'new', or 'quit'.")
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  <x> <y>          - Place a disc, x is the column and y the row, both 1~8 (e.g., 3 5)
  hint             - List the cells the side to move can place on
  score            - Show disc counts
  new              - Start a new game
  color <theme>    - Set board color theme (off|green|gray)
  quit/exit        - Exit the program
  help/?           - Show this help message`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Let's play reversi!")
	c.ShowMessage("Input x(1~8) and y(1~8) separated by whitespace (ex. \"3 5\"). Type 'help' for commands.")
}

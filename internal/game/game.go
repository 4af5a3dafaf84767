package game

import (
	"errors"
	"fmt"

	"reversi/internal/board"
	"reversi/internal/core"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrOutOfField  = errors.New("coordinates out of field")
	ErrIllegalMove = errors.New("cannot place there")
)

// MoveResult tracks the outcome of a move
type MoveResult struct {
	X       int
	Y       int
	Player  core.Player
	Flipped int
	// Passed is the side that had no legal reply and lost its turn, if any
	Passed    *core.Player
	GameState core.State
}

type Game struct {
	id     string
	board  *board.Board
	turn   core.Player
	state  core.State
	log    zerolog.Logger
	result *MoveResult
}

// New starts a game on the opening layout with black to move
func New(logger zerolog.Logger) *Game {
	b := board.New()
	b.Start()
	return newGame(b, core.PlayerBlack, logger)
}

func newGame(b *board.Board, turn core.Player, logger zerolog.Logger) *Game {
	id := uuid.New().String()
	g := &Game{
		id:    id,
		board: b,
		turn:  turn,
		state: core.StateOngoing,
		log:   logger.With().Str("game", id).Logger(),
	}
	g.log.Info().Stringer("turn", turn).Msg("game started")

	switch {
	case b.IsAbleToPlaceAnywhere(turn):
	case b.IsAbleToPlaceAnywhere(turn.Enemy()):
		g.turn = turn.Enemy()
	default:
		g.finish()
	}
	return g
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Turn() core.Player {
	return g.turn
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) LastResult() *MoveResult {
	return g.result
}

func (g *Game) Score() (black, white int) {
	return g.board.CountOf(core.PlayerBlack), g.board.CountOf(core.PlayerWhite)
}

// Play places a disc for the side to move at 0-based (x, y), then hands the
// turn over, skipping a side that has no legal move and ending the game when
// neither side can move.
func (g *Game) Play(x, y int) (*MoveResult, error) {
	if g.state != core.StateOngoing {
		return nil, ErrGameOver
	}
	if !board.IsInField(x, y) {
		return nil, fmt.Errorf("(%d,%d): %w", x, y, ErrOutOfField)
	}

	mover := g.turn
	before := g.board.CountOf(mover.Enemy())
	if !g.board.Place(mover, x, y) {
		g.log.Debug().Stringer("player", mover).Int("x", x).Int("y", y).Msg("illegal move rejected")
		return nil, fmt.Errorf("%s at (%d,%d): %w", mover, x, y, ErrIllegalMove)
	}

	result := &MoveResult{
		X:       x,
		Y:       y,
		Player:  mover,
		Flipped: before - g.board.CountOf(mover.Enemy()),
	}
	g.log.Debug().
		Stringer("player", mover).
		Int("x", x).
		Int("y", y).
		Int("flipped", result.Flipped).
		Msg("move applied")

	next := mover.Enemy()
	switch {
	case g.board.IsAbleToPlaceAnywhere(next):
		g.turn = next
	case g.board.IsAbleToPlaceAnywhere(mover):
		result.Passed = &next
		g.turn = mover
		g.log.Info().Stringer("player", next).Msg("passed")
	default:
		result.Passed = &next
		g.finish()
	}

	result.GameState = g.state
	g.result = result
	return result, nil
}

func (g *Game) finish() {
	black, white := g.Score()
	g.state = core.Winner(black, white)
	g.log.Info().
		Int("black", black).
		Int("white", white).
		Stringer("result", g.state).
		Msg("game end")
	g.log.Debug().Msg("final position\n" + g.board.ToASCII())
}

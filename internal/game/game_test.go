package game

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"reversi/internal/board"
	"reversi/internal/core"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func fromRows(t *testing.T, turn core.Player, rows ...string) *Game {
	t.Helper()
	b, err := board.Parse(strings.Join(rows, "/"))
	require.NoError(t, err)
	return newGame(b, turn, zerolog.Nop())
}

func TestNewGame(t *testing.T) {
	g := New(zerolog.Nop())

	require.Equal(t, core.PlayerBlack, g.Turn())
	require.Equal(t, core.StateOngoing, g.State())
	require.Nil(t, g.LastResult())

	black, white := g.Score()
	require.Equal(t, 2, black)
	require.Equal(t, 2, white)

	_, err := uuid.Parse(g.ID())
	require.NoError(t, err, "game ID should be a UUID")
}

func TestPlayOpeningMove(t *testing.T) {
	g := New(zerolog.Nop())

	result, err := g.Play(2, 4)
	require.NoError(t, err)
	require.Equal(t, &MoveResult{
		X:         2,
		Y:         4,
		Player:    core.PlayerBlack,
		Flipped:   1,
		GameState: core.StateOngoing,
	}, result)
	require.Equal(t, result, g.LastResult())
	require.Equal(t, core.PlayerWhite, g.Turn())

	black, white := g.Score()
	require.Equal(t, 4, black)
	require.Equal(t, 1, white)
}

func TestPlayRejectsWithoutAdvancing(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		err  error
	}{
		{"occupied", 3, 3, ErrIllegalMove},
		{"no capture", 0, 0, ErrIllegalMove},
		{"white's move", 2, 3, ErrIllegalMove},
		{"negative", -1, 2, ErrOutOfField},
		{"past the edge", 8, 2, ErrOutOfField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(zerolog.Nop())
			before := *g.Board()

			result, err := g.Play(tt.x, tt.y)
			require.Nil(t, result)
			require.True(t, errors.Is(err, tt.err), "got %v", err)
			require.Equal(t, core.PlayerBlack, g.Turn())
			require.Equal(t, before, *g.Board())
			require.Nil(t, g.LastResult())
		})
	}
}

func TestPassKeepsTurn(t *testing.T) {
	g := fromRows(t, core.PlayerBlack,
		"XOO.....",
		"........",
		"........",
		"........",
		"........",
		"XOO.....",
		"........",
		"........",
	)

	result, err := g.Play(3, 0)
	require.NoError(t, err)
	require.NotNil(t, result.Passed)
	require.Equal(t, core.PlayerWhite, *result.Passed)
	require.Equal(t, core.StateOngoing, result.GameState)
	require.Equal(t, core.PlayerBlack, g.Turn(), "white has no reply so black moves again")

	t.Run("double pass ends the game", func(t *testing.T) {
		result, err := g.Play(3, 5)
		require.NoError(t, err)
		require.NotNil(t, result.Passed)
		require.Equal(t, core.PlayerWhite, *result.Passed)
		require.Equal(t, core.StateBlackWins, result.GameState)
		require.Equal(t, core.StateBlackWins, g.State())

		black, white := g.Score()
		require.Equal(t, 8, black)
		require.Equal(t, 0, white)

		_, err = g.Play(0, 1)
		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestGameEndsInDraw(t *testing.T) {
	g := fromRows(t, core.PlayerBlack,
		"XO......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"OOO.....",
	)

	result, err := g.Play(2, 0)
	require.NoError(t, err)
	require.Equal(t, 1, result.Flipped)
	require.Equal(t, core.StateDraw, result.GameState)

	black, white := g.Score()
	require.Equal(t, black, white)
}

func TestNewGameSkipsSideWithoutMoves(t *testing.T) {
	g := fromRows(t, core.PlayerWhite,
		"XOO.....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	require.Equal(t, core.PlayerBlack, g.Turn())
	require.Equal(t, core.StateOngoing, g.State())
}

func TestNewGameWithoutMovesIsOver(t *testing.T) {
	g := fromRows(t, core.PlayerBlack,
		"XXX..OOO",
		"XXX..OOO",
		"XXX..OOO",
		"XXX..OOO",
		"XXX..OOO",
		"XXX..OOO",
		"XXX..OOO",
		"XXX..OOO",
	)
	require.Equal(t, core.StateDraw, g.State())

	_, err := g.Play(3, 0)
	require.ErrorIs(t, err, ErrGameOver)
}

func TestRandomGamesTerminate(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := New(zerolog.Nop())

		for plies := 0; g.State() == core.StateOngoing; plies++ {
			require.Less(t, plies, 60, "seed %d: a game cannot outlast the empty cells", seed)

			moves := g.Board().LegalMoves(g.Turn())
			require.NotEmpty(t, moves, "seed %d: side to move must have a move while ongoing", seed)

			move := moves[rng.Intn(len(moves))]
			result, err := g.Play(move.X, move.Y)
			require.NoError(t, err)
			require.Positive(t, result.Flipped)
		}

		require.False(t, g.Board().IsAbleToPlaceAnywhere(core.PlayerBlack))
		require.False(t, g.Board().IsAbleToPlaceAnywhere(core.PlayerWhite))

		black, white := g.Score()
		require.Equal(t, core.Winner(black, white), g.State(), "seed %d", seed)
	}
}

func TestGameLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	b, err := board.Parse("XO....../......../......../......../......../......../......../OOO.....")
	require.NoError(t, err)
	g := newGame(b, core.PlayerBlack, logger)

	_, err = g.Play(0, 7)
	require.Error(t, err)
	_, err = g.Play(2, 0)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `"game":"`+g.ID()+`"`)
	require.Contains(t, out, "game started")
	require.Contains(t, out, "illegal move rejected")
	require.Contains(t, out, `"flipped":1`)
	require.Contains(t, out, "game end")
	require.Contains(t, out, `"result":"DRAW"`)
}

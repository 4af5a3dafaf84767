package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayerEnemy(t *testing.T) {
	require.Equal(t, PlayerWhite, PlayerBlack.Enemy())
	require.Equal(t, PlayerBlack, PlayerWhite.Enemy())
	require.Equal(t, PlayerBlack, PlayerBlack.Enemy().Enemy())
}

func TestPlayerCellRoundTrip(t *testing.T) {
	for _, p := range []Player{PlayerBlack, PlayerWhite} {
		require.NotEqual(t, CellEmpty, p.Cell(), "%s should map to an occupant", p)
		require.Equal(t, p, p.Cell().Player())
		require.NotEqual(t, p.Cell(), p.Enemy().Cell())
	}
}

func TestEmptyCellPlayerPanics(t *testing.T) {
	require.Panics(t, func() { _ = CellEmpty.Player() })
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name  string
		black int
		white int
		want  State
	}{
		{"black ahead", 40, 24, StateBlackWins},
		{"white ahead", 10, 54, StateWhiteWins},
		{"equal counts", 32, 32, StateDraw},
		{"wipeout", 13, 0, StateBlackWins},
		{"empty board", 0, 0, StateDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Winner(tt.black, tt.white))
		})
	}
}

func TestStateString(t *testing.T) {
	require.Equal(t, "BLACK wins!", StateBlackWins.String())
	require.Equal(t, "WHITE wins!", StateWhiteWins.String())
	require.Equal(t, "DRAW", StateDraw.String())
	require.Equal(t, "Ongoing", StateOngoing.String())
}

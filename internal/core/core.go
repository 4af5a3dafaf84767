package core

type State int

const (
	StateOngoing State = iota
	StateBlackWins
	StateWhiteWins
	StateDraw
)

func (s State) String() string {
	switch s {
	case StateBlackWins:
		return "BLACK wins!"
	case StateWhiteWins:
		return "WHITE wins!"
	case StateDraw:
		return "DRAW"
	default:
		return "Ongoing"
	}
}

// Winner decides the final state from the disc counts of both sides
func Winner(black, white int) State {
	switch {
	case black > white:
		return StateBlackWins
	case white > black:
		return StateWhiteWins
	default:
		return StateDraw
	}
}

type Player int

const (
	PlayerBlack Player = iota + 1
	PlayerWhite
)

func (p Player) String() string {
	if p == PlayerBlack {
		return "BLACK"
	}
	return "WHITE"
}

// Enemy returns the opposing player
func (p Player) Enemy() Player {
	if p == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

// Cell returns the occupant value a disc of this player leaves on the board
func (p Player) Cell() Cell {
	if p == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}

type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "BLACK"
	case CellWhite:
		return "WHITE"
	default:
		return "EMPTY"
	}
}

// Player returns the owner of an occupied cell. An empty cell has no owner and
// asking for one is a programming error.
func (c Cell) Player() Player {
	switch c {
	case CellBlack:
		return PlayerBlack
	case CellWhite:
		return PlayerWhite
	}
	panic("core: empty cell cannot convert to player")
}

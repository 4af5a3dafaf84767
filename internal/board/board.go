package board

import (
	"fmt"
	"strings"

	"reversi/internal/core"
)

const Size = 8

// Position is a 0-based board coordinate
type Position struct {
	X int
	Y int
}

// The eight compass offsets a capture can run along
var directions = [8][2]int{
	{0, 1}, {1, 0}, {1, 1}, {1, -1},
	{-1, 1}, {-1, 0}, {0, -1}, {-1, -1},
}

// Board is the 8x8 grid, stored row-major as cells[y][x]
type Board struct {
	cells [Size][Size]core.Cell
}

// New returns a board with every cell empty
func New() *Board {
	return &Board{}
}

// Start resets the grid to the opening layout
func (b *Board) Start() {
	var cells [Size][Size]core.Cell
	cells[3][3] = core.CellBlack
	cells[4][4] = core.CellBlack
	cells[3][4] = core.CellWhite
	cells[4][3] = core.CellWhite

	b.cells = cells
}

// Parse builds a board from a layout of eight '/'-separated rows, top row first,
// using 'X' for black, 'O' for white and '.' for empty cells.
func Parse(layout string) (*Board, error) {
	rows := strings.Split(layout, "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("invalid layout: expected %d rows, got %d", Size, len(rows))
	}

	b := New()
	for y, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("invalid layout: row %d has %d cells", y+1, len(row))
		}
		for x, ch := range row {
			switch ch {
			case 'X':
				b.set(core.CellBlack, x, y)
			case 'O':
				b.set(core.CellWhite, x, y)
			case '.':
			default:
				return nil, fmt.Errorf("invalid layout: unexpected %q in row %d", ch, y+1)
			}
		}
	}
	return b, nil
}

func IsInField(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// At returns the cell at (x, y). Coordinates must satisfy IsInField.
func (b *Board) At(x, y int) core.Cell {
	return b.cells[y][x]
}

func (b *Board) set(cell core.Cell, x, y int) {
	b.cells[y][x] = cell
}

// scanCaptures walks from (x, y) along (dx, dy), origin excluded, and reports
// whether an unbroken enemy run ends on one of the player's own discs.
func (b *Board) scanCaptures(player core.Player, x, y, dx, dy int) bool {
	own := player.Cell()
	foundEnemy := false

	for cx, cy := x+dx, y+dy; IsInField(cx, cy); cx, cy = cx+dx, cy+dy {
		switch b.At(cx, cy) {
		case core.CellEmpty:
			return false
		case own:
			return foundEnemy
		default:
			foundEnemy = true
		}
	}
	return false
}

// IsAbleToPlace reports whether player may put a disc on (x, y)
func (b *Board) IsAbleToPlace(player core.Player, x, y int) bool {
	if !IsInField(x, y) || b.At(x, y) != core.CellEmpty {
		return false
	}

	for _, d := range directions {
		if b.scanCaptures(player, x, y, d[0], d[1]) {
			return true
		}
	}
	return false
}

// IsAbleToPlaceAnywhere reports whether player has at least one legal move
func (b *Board) IsAbleToPlaceAnywhere(player core.Player) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.At(x, y) == core.CellEmpty && b.IsAbleToPlace(player, x, y) {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists every cell player may place on, in row-major order
func (b *Board) LegalMoves(player core.Player) []Position {
	var moves []Position
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.IsAbleToPlace(player, x, y) {
				moves = append(moves, Position{X: x, Y: y})
			}
		}
	}
	return moves
}

// Place puts a disc for player on (x, y) and flips every captured run.
// It returns false and leaves the board untouched when the move is illegal.
func (b *Board) Place(player core.Player, x, y int) bool {
	if !b.IsAbleToPlace(player, x, y) {
		return false
	}

	b.set(player.Cell(), x, y)

	// Rays from the origin never share a cell, so flipping one direction
	// cannot change the scan of another.
	for _, d := range directions {
		if b.scanCaptures(player, x, y, d[0], d[1]) {
			b.flip(player, x, y, d[0], d[1])
		}
	}
	return true
}

// flip converts the enemy run starting one step from (x, y) along (dx, dy).
// The caller has already checked that the run ends on an own disc.
func (b *Board) flip(player core.Player, x, y, dx, dy int) {
	own := player.Cell()
	enemy := player.Enemy().Cell()

	for cx, cy := x+dx, y+dy; IsInField(cx, cy) && b.At(cx, cy) == enemy; cx, cy = cx+dx, cy+dy {
		b.set(own, cx, cy)
	}
}

// CountOf returns how many discs player has on the board
func (b *Board) CountOf(player core.Player) int {
	cell := player.Cell()
	count := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.At(x, y) == cell {
				count++
			}
		}
	}
	return count
}

// ToASCII creates a plain text representation of the board with 1-based labels
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  1 2 3 4 5 6 7 8\n")

	for y := 0; y < Size; y++ {
		sb.WriteString(fmt.Sprintf("%d ", y+1))
		for x := 0; x < Size; x++ {
			switch b.At(x, y) {
			case core.CellBlack:
				sb.WriteString("X ")
			case core.CellWhite:
				sb.WriteString("O ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString(fmt.Sprintf("%d\n", y+1))
	}
	sb.WriteString("  1 2 3 4 5 6 7 8")

	return sb.String()
}

package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 10

	EmptyCell = ""
)

// Move is a validated position on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("%d,%d", that.Row, that.Col)
}

// Board is a square grid of player marks. It never changes size after creation.
type Board struct {
	size  int
	cells [][]string
}

// NewBoard - creates an empty size x size board.
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidSize, size)
	}

	cells := make([][]string, size)
	for row := range cells {
		cells[row] = make([]string, size)
	}

	return &Board{size: size, cells: cells}, nil
}

// NewBoardFromRows - builds a board from a square snapshot of rows.
func NewBoardFromRows(rows [][]string) (*Board, error) {
	board, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}

	for row, cells := range rows {
		if len(cells) != board.size {
			return nil, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidSize, row, len(cells))
		}
		copy(board.cells[row], cells)
	}

	return board, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Get(row, col int) string {
	that.mustBeInside(row, col)
	return that.cells[row][col]
}

// Set overwrites the cell. Occupancy is the caller's concern.
func (that *Board) Set(row, col int, mark string) {
	that.mustBeInside(row, col)
	that.cells[row][col] = mark
}

func (that *Board) IsOccupied(row, col int) bool {
	return that.Get(row, col) != EmptyCell
}

func (that *Board) IsFull() bool {
	for _, cells := range that.cells {
		for _, cell := range cells {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Inside reports whether (row, col) lies on the board.
func (that *Board) Inside(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// FreeCells - returns every unoccupied position in row-major order.
func (that *Board) FreeCells() []Move {
	free := make([]Move, 0, that.size*that.size)
	for row, cells := range that.cells {
		for col, cell := range cells {
			if cell == EmptyCell {
				free = append(free, Move{Row: row, Col: col})
			}
		}
	}

	return free
}

// Rows - returns a copy of the grid.
func (that *Board) Rows() [][]string {
	rows := make([][]string, that.size)
	for row, cells := range that.cells {
		rows[row] = append([]string(nil), cells...)
	}

	return rows
}

func (that *Board) mustBeInside(row, col int) {
	if !that.Inside(row, col) {
		panic(fmt.Sprintf("board: position (%d,%d) outside %dx%d grid", row, col, that.size, that.size))
	}
}

package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// CheckWinner - scans the board row by row for three equal marks in a line and
// returns the mark of the first one found.
//
// Every occupied cell except the four corners is tried as the middle of a
// triple. Cells on the top and bottom rows are only checked horizontally,
// cells on the left and right columns only vertically, and inner cells in all
// four directions. Three in a row wins on any board size.
func CheckWinner(board *entity.Board) (string, bool) {
	last := board.Size() - 1

	for row := 0; row <= last; row++ {
		for col := 0; col <= last; col++ {
			if !board.IsOccupied(row, col) {
				continue
			}

			onTopOrBottom := row == 0 || row == last
			onLeftOrRight := col == 0 || col == last

			var won bool
			switch {
			case onTopOrBottom && onLeftOrRight:
				continue
			case onTopOrBottom:
				won = horizontalTriple(board, row, col)
			case onLeftOrRight:
				won = verticalTriple(board, row, col)
			default:
				won = horizontalTriple(board, row, col) ||
					verticalTriple(board, row, col) ||
					diagonalTriple(board, row, col)
			}

			if won {
				return board.Get(row, col), true
			}
		}
	}

	return "", false
}

// CheckFull - the board has no free cell left.
func CheckFull(board *entity.Board) bool {
	return board.IsFull()
}

func horizontalTriple(board *entity.Board, row, col int) bool {
	return sameAround(board, row, col, 0, 1)
}

func verticalTriple(board *entity.Board, row, col int) bool {
	return sameAround(board, row, col, 1, 0)
}

func diagonalTriple(board *entity.Board, row, col int) bool {
	return sameAround(board, row, col, 1, 1) || sameAround(board, row, col, 1, -1)
}

// sameAround compares the cell with both neighbours along (dRow, dCol).
func sameAround(board *entity.Board, row, col, dRow, dCol int) bool {
	mark := board.Get(row, col)

	return board.Get(row-dRow, col-dCol) == mark && board.Get(row+dRow, col+dCol) == mark
}

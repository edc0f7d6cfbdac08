package service

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type BotService interface {
	ChooseMove(board *entity.Board, mark string) entity.Move
}

type direction struct {
	dRow, dCol int
}

var (
	// Lines running through the candidate cell, checked on both sides of it.
	throughLines = []direction{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal
		{1, -1}, // anti-diagonal
	}

	// Lines starting next to the candidate cell, checked two cells ahead.
	aheadLines = []direction{
		{-1, 0},  // above
		{1, 0},   // below
		{0, -1},  // left
		{0, 1},   // right
		{-1, -1}, // top-left
		{-1, 1},  // top-right
		{1, -1},  // bottom-left
		{1, 1},   // bottom-right
	}
)

type botService struct {
	rnd *rand.Rand
}

func NewBotService(rnd *rand.Rand) BotService {
	return &botService{rnd: rnd}
}

// ChooseMove - takes the first free cell that completes or blocks three in a
// row, whichever mark the neighbouring pair belongs to. Without such a cell it
// falls back to a random free one. The board must not be full.
func (that *botService) ChooseMove(board *entity.Board, _ string) entity.Move {
	if move, ok := that.decide(board); ok {
		return move
	}

	free := board.FreeCells()

	return free[that.rnd.Intn(len(free))]
}

func (that *botService) decide(board *entity.Board) (entity.Move, bool) {
	rows := that.rnd.Perm(board.Size())
	cols := that.rnd.Perm(board.Size())

	for _, row := range rows {
		for _, col := range cols {
			if board.IsOccupied(row, col) {
				continue
			}

			if completesLine(board, row, col) {
				return entity.Move{Row: row, Col: col}, true
			}
		}
	}

	return entity.Move{}, false
}

// completesLine applies every pair check that fits on the board from (row, col).
// Corners only see the lines running away from them, edge cells the line along
// the edge plus what is at least two cells from a wall, and inner cells all of it.
func completesLine(board *entity.Board, row, col int) bool {
	for _, dir := range throughLines {
		if samePair(board, row-dir.dRow, col-dir.dCol, row+dir.dRow, col+dir.dCol) {
			return true
		}
	}

	for _, dir := range aheadLines {
		if samePair(board, row+dir.dRow, col+dir.dCol, row+2*dir.dRow, col+2*dir.dCol) {
			return true
		}
	}

	return false
}

// samePair - both cells exist, are taken and hold the same mark.
func samePair(board *entity.Board, row1, col1, row2, col2 int) bool {
	if !board.Inside(row1, col1) || !board.Inside(row2, col2) {
		return false
	}

	first := board.Get(row1, col1)

	return first != entity.EmptyCell && first == board.Get(row2, col2)
}

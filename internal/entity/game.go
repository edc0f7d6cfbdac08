package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the state owned by the game loop: the board, the fixed turn order
// and the round/turn counters.
type Game struct {
	ID             string
	Board          *Board
	Players        []*Player
	Round          int
	Turn           int
	CompletedTurns int
	Status         string
	Winner         string
	Draw           bool
}

// NewGame - creates an ongoing game. Players keep the given order.
func NewGame(id string, board *Board, players []*Player) *Game {
	return &Game{
		ID:      id,
		Board:   board,
		Players: players,
		Round:   1,
		Turn:    1,
		Status:  StatusOngoing,
	}
}

// CurrentPlayer - the player whose turn it is within the round.
func (that *Game) CurrentPlayer() *Player {
	return that.Players[that.Turn-1]
}

// ApplyMove places the mark and counts the turn as completed.
func (that *Game) ApplyMove(player *Player, move Move) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	that.Board.Set(move.Row, move.Col, player.Mark)
	that.CompletedTurns++

	return nil
}

// NextPlayer moves the turn on, wrapping into a new round after the last player.
func (that *Game) NextPlayer() {
	that.Turn++
	if that.Turn > len(that.Players) {
		that.Turn = 1
		that.Round++
	}
}

func (that *Game) FinishWithWinner(mark string) {
	that.Winner = mark
	that.Draw = false
	that.Status = StatusFinished
}

func (that *Game) FinishWithDraw() {
	that.Winner = ""
	that.Draw = true
	that.Status = StatusFinished
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Draw
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Result - summary of a finished game.
func (that *Game) Result(finishedAt time.Time) *GameResult {
	marks := make([]string, 0, len(that.Players))
	for _, player := range that.Players {
		marks = append(marks, player.Mark)
	}

	result := &GameResult{
		ID:             that.ID,
		BoardSize:      that.Board.Size(),
		Players:        marks,
		Draw:           that.IsDraw(),
		CompletedTurns: that.CompletedTurns,
		Rounds:         that.Round,
		Board:          that.Board.Rows(),
		FinishedAt:     finishedAt.UTC(),
	}
	if !result.Draw {
		result.Winner = that.Winner
	}

	return result
}

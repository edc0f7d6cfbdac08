package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type botService interface {
	ChooseMove(board *entity.Board, mark string) entity.Move
}

type lineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type gameView interface {
	Render(board *entity.Board) error
	Printf(format string, args ...any)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.GameResult) error
}

// GameManager runs the turn loop: ask the current player for a move, let the
// referee validate it, apply it and check for a winner or a full board.
type GameManager struct {
	logger *slog.Logger
	bot    botService
	input  lineReader
	view   gameView

	// optional, nil when results are not recorded
	resultRepo resultRepo

	rnd *rand.Rand
	now func() time.Time
}

func NewGameManager(
	logger *slog.Logger,
	bot botService,
	input lineReader,
	view gameView,
	resultRepo resultRepo,
	rnd *rand.Rand,
) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		bot:        bot,
		input:      input,
		view:       view,
		resultRepo: resultRepo,
		rnd:        rnd,
		now:        time.Now,
	}
}

// CreateGame - builds the board and fixes a random turn order for the players.
func (that *GameManager) CreateGame(size int, players []*entity.Player) (*entity.Game, error) {
	board, err := entity.NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	order := append([]*entity.Player(nil), players...)
	that.rnd.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	game := entity.NewGame(uuid.NewString(), board, order)

	that.logger.Info("game created", "gameID", game.ID, "size", size, "players", len(order))

	return game, nil
}

// Run - plays turns until somebody wins or the board is full, then announces
// and records the result.
func (that *GameManager) Run(ctx context.Context, game *entity.Game) (*entity.GameResult, error) {
	for !game.IsFinished() {
		if err := that.PlayTurn(ctx, game); err != nil {
			return nil, err
		}
	}

	that.announce(game)

	result := game.Result(that.now())
	that.saveResult(ctx, result)

	return result, nil
}

// PlayTurn - one completed turn of the current player. Rejected input is
// reported and asked for again without counting a turn.
func (that *GameManager) PlayTurn(ctx context.Context, game *entity.Game) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("game interrupted: %w", err)
	}

	log := that.logger.With("method", "PlayTurn", "gameID", game.ID, "round", game.Round, "turn", game.Turn)
	player := game.CurrentPlayer()

	that.view.Printf("\nRound %d, Turn %d:\n", game.Round, game.Turn)
	if err := that.view.Render(game.Board); err != nil {
		return err
	}
	that.view.Printf("Player %s: ", player.Mark)

	move, err := that.awaitValidMove(ctx, game, player)
	if err != nil {
		return err
	}

	if err = game.ApplyMove(player, move); err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	log.Debug("move applied", "player", player.Mark, "move", move.String(), "completedTurns", game.CompletedTurns)

	if winner, ok := tictactoe.CheckWinner(game.Board); ok {
		game.FinishWithWinner(winner)
		log.Info("game won", "winner", winner, "completedTurns", game.CompletedTurns)

		return nil
	}

	if tictactoe.CheckFull(game.Board) {
		game.FinishWithDraw()
		log.Info("grid full", "completedTurns", game.CompletedTurns)

		return nil
	}

	game.NextPlayer()

	return nil
}

func (that *GameManager) awaitValidMove(ctx context.Context, game *entity.Game, player *entity.Player) (entity.Move, error) {
	log := that.logger.With("method", "awaitValidMove", "player", player.Mark)

	for {
		input, err := that.nextInput(ctx, game, player)
		if err != nil {
			return entity.Move{}, err
		}

		move, err := tictactoe.ValidateMove(input, game.Board)
		if err == nil {
			that.view.Printf("Referee says: \"OK! Player %s takes position (%d,%d).\"\n", player.Mark, move.Row, move.Col)

			return move, nil
		}

		if !apperror.IsInvalidMove(err) {
			return entity.Move{}, err
		}

		if player.IsBot() {
			return entity.Move{}, fmt.Errorf("%w: %w", apperror.ErrBotInvalidMove, err)
		}

		log.Debug("move rejected", "input", input, "error", err)
		that.view.Printf("Referee says: \"Nope! %s\"\nTry again: ", refereeReason(err))
	}
}

func (that *GameManager) nextInput(ctx context.Context, game *entity.Game, player *entity.Player) (string, error) {
	if player.IsBot() {
		input := that.bot.ChooseMove(game.Board, player.Mark).String()
		that.view.Printf("%s\n", input)

		return input, nil
	}

	input, err := that.input.ReadLine(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read move of player %s: %w", player.Mark, err)
	}

	return input, nil
}

func (that *GameManager) announce(game *entity.Game) {
	_ = that.view.Render(game.Board)

	if game.IsDraw() {
		that.view.Printf("YOU ARE ALL LOSERS!\n\nGrid full. Game finished in %d turns.\n", game.CompletedTurns)
		return
	}

	that.view.Printf("%s IS THE WINNER!\n\nGame finished in %d turns.\n", game.Winner, game.CompletedTurns)
}

func (that *GameManager) saveResult(ctx context.Context, result *entity.GameResult) {
	if that.resultRepo == nil {
		return
	}

	log := that.logger.With("method", "saveResult", "gameID", result.ID)

	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)
		return
	}

	log.Info("result saved")
}

func refereeReason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrMalformedInput):
		return `You must provide input in "<row>,<col>" format.`
	case errors.Is(err, apperror.ErrOutOfRange):
		return "You must provide values which fit on the grid."
	default:
		return "This position is already taken."
	}
}

package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

const banner = "=======================\nTic-Tac-Toe: Remastered\n=======================\n"

var (
	ErrAddrNotFound    = errors.New("redis address string is empty")
	ErrHistoryDisabled = errors.New("results are not recorded, enable redis in the config")
)

// RunApp - plays one game on the console and returns once it is won or drawn.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	view := console.NewView(out)
	view.Printf("%s", banner)

	var results repository.ResultRepository
	if conf.Redis.Enabled {
		redisStorage, err := connectRedis(ctx, conf)
		if err != nil {
			return err
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		results = repository.NewResultRepository(redisStorage.Connection)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game randomness only

	gameManager := usecase.NewGameManager(
		logger,
		service.NewBotService(rnd),
		console.NewLineReader(in),
		view,
		results,
		rnd,
	)

	game, err := gameManager.CreateGame(conf.Grid.Size, conf.ResolvedPlayers())
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	for _, player := range game.Players {
		log.Debug("player ready", "mark", player.Mark, "ai", player.IsBot())
	}

	result, err := gameManager.Run(ctx, game)
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	log.Info("game finished", "gameID", result.ID, "winner", result.Winner, "draw", result.Draw, "turns", result.CompletedTurns)

	return nil
}

// PrintHistory - prints the most recent recorded results.
func PrintHistory(logger *slog.Logger, conf *config.Config, out io.Writer, limit int) error {
	if !conf.Redis.Enabled {
		return ErrHistoryDisabled
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisStorage, err := connectRedis(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			logger.Error("could not close redis storage", "error", err)
		}
	}()

	results, err := repository.NewResultRepository(redisStorage.Connection).ListRecent(ctx, limit)
	if err != nil {
		return fmt.Errorf("could not list results: %w", err)
	}

	writeHistory(out, results)

	return nil
}

func connectRedis(ctx context.Context, conf *config.Config) (*storage.RedisStorage, error) {
	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return redisStorage, nil
}

func writeHistory(out io.Writer, results []*entity.GameResult) {
	if len(results) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		return
	}

	for _, result := range results {
		outcome := result.Winner + " won"
		if result.Draw {
			outcome = "draw"
		}

		fmt.Fprintf(out, "%s  %dx%d  players %v  %s in %d turns\n",
			result.FinishedAt.Local().Format(time.DateTime),
			result.BoardSize, result.BoardSize,
			result.Players,
			outcome,
			result.CompletedTurns,
		)
	}
}

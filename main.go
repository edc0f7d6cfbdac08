package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

const historyLimit = 10

var (
	configPath  = flag.String("config", "config.json", "Path to the json or yaml game config")
	showHistory = flag.Bool("history", false, "Print the most recent recorded games and exit")
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	flag.Parse()

	conf := config.MustLoad(*configPath)
	logger := initLogger(conf)

	if *showHistory {
		if err := app.PrintHistory(logger, conf, os.Stdout, historyLimit); err != nil {
			panic(fmt.Errorf("history failed: %w", err))
		}
		return
	}

	if err := app.RunApp(logger, conf, os.Stdin, os.Stdout); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

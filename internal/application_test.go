package application

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func boolPtr(value bool) *bool {
	return &value
}

func TestRunApp(t *testing.T) {
	t.Run("Bots play a full game", func(t *testing.T) {
		// Given: a config with three AI players and no result storage
		conf := &config.Config{
			Grid: config.Grid{Size: 3},
			Players: map[string]config.Player{
				"p1": {Char: "X", AI: boolPtr(true)},
				"p2": {Char: "O", AI: boolPtr(true)},
				"p3": {Char: "@", AI: boolPtr(true)},
			},
		}

		var out bytes.Buffer

		// When: the app runs
		err := RunApp(discardLogger(), conf, strings.NewReader(""), &out)

		// Then: the game finishes and the summary is printed
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Tic-Tac-Toe: Remastered")
		assert.Contains(t, out.String(), "Game finished in")
	})

	t.Run("Human input ends before the game does", func(t *testing.T) {
		conf := &config.Config{
			Grid: config.Grid{Size: 3},
			Players: map[string]config.Player{
				"p1": {Char: "X"},
				"p2": {Char: "O"},
			},
		}

		err := RunApp(discardLogger(), conf, strings.NewReader("1,1\n"), io.Discard)

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestRunApp_RecordsResult(t *testing.T) {
	_, st := suite.New(t)

	// Given: two bots and result storage enabled
	conf := &config.Config{
		Grid: config.Grid{Size: 4},
		Players: map[string]config.Player{
			"p1": {Char: "-", AI: boolPtr(true)},
			"p2": {Char: "X", AI: boolPtr(true)},
		},
		Redis: st.Redis,
	}

	// When: a game is played and the history printed
	require.NoError(t, RunApp(st.Logger, conf, strings.NewReader(""), io.Discard))

	var out bytes.Buffer
	require.NoError(t, PrintHistory(st.Logger, conf, &out, 10))

	// Then: exactly that game is listed
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "4x4  players [")
	assert.Regexp(t, `(- won|X won|draw) in \d+ turns$`, lines[0])
}

func TestPrintHistory_Disabled(t *testing.T) {
	err := PrintHistory(discardLogger(), &config.Config{}, io.Discard, 10)

	require.ErrorIs(t, err, ErrHistoryDisabled)
}

func TestWriteHistory(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var out bytes.Buffer

		writeHistory(&out, nil)

		assert.Equal(t, "No games recorded yet.\n", out.String())
	})

	t.Run("Results", func(t *testing.T) {
		finishedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		var out bytes.Buffer

		writeHistory(&out, []*entity.GameResult{
			{BoardSize: 3, Players: []string{"X", "O"}, Winner: "X", CompletedTurns: 5, FinishedAt: finishedAt},
			{BoardSize: 4, Players: []string{"X", "O", "@"}, Draw: true, CompletedTurns: 16, FinishedAt: finishedAt},
		})

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "3x3  players [X O]  X won in 5 turns")
		assert.Contains(t, lines[1], "4x4  players [X O @]  draw in 16 turns")
	})
}

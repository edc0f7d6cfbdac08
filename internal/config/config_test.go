package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = `{
	"grid": {"size": 3},
	"players": {
		"player1": {"char": "X", "ai": false},
		"player2": {"char": "O", "ai": true},
		"player3": {"char": "@"}
	}
}`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Example config", func(t *testing.T) {
		// Given: a valid json config
		path := writeConfig(t, "config.json", exampleConfig)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: every value is available and defaults are applied
		require.NoError(t, err)
		assert.Equal(t, 3, conf.Grid.Size)
		assert.Len(t, conf.Players, 3)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Yaml config", func(t *testing.T) {
		path := writeConfig(t, "config.yml", `
log-level: debug
grid:
  size: 10
players:
  a:
    char: "#"
    ai: true
  b:
    char: "%"
redis:
  enabled: true
  host: cache
  port: "6380"
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 10, conf.Grid.Size)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Config which doesn't exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

		require.ErrorIs(t, err, ErrConfigRead)
	})

	t.Run("Config with syntax error", func(t *testing.T) {
		path := writeConfig(t, "config.json", `{"grid": {"size": 3}, "players": {`)

		_, err := Load(path)

		require.ErrorIs(t, err, ErrConfigRead)
	})

	t.Run("Config with invalid ai", func(t *testing.T) {
		path := writeConfig(t, "config.json", `{
			"grid": {"size": 3},
			"players": {"p1": {"char": "X", "ai": "yes"}, "p2": {"char": "O"}}
		}`)

		_, err := Load(path)

		require.ErrorIs(t, err, ErrConfigRead)
	})

	t.Run("Config with invalid grid", func(t *testing.T) {
		for _, size := range []string{"2", "11", "0"} {
			path := writeConfig(t, "config.json", `{
				"grid": {"size": `+size+`},
				"players": {"p1": {"char": "X"}, "p2": {"char": "O"}}
			}`)

			_, err := Load(path)

			require.ErrorIs(t, err, ErrInvalidGridSize, size)
		}
	})

	t.Run("Config with quoted grid size", func(t *testing.T) {
		path := writeConfig(t, "config.json", `{
			"grid": {"size": "3"},
			"players": {"p1": {"char": "X"}, "p2": {"char": "O"}}
		}`)

		_, err := Load(path)

		require.ErrorIs(t, err, ErrConfigRead)
	})

	t.Run("Config without grid", func(t *testing.T) {
		path := writeConfig(t, "config.json", `{"players": {"p1": {"char": "X"}, "p2": {"char": "O"}}}`)

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidGridSize)
	})
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "config.json", `{"grid": {"size": 42}}`)

	assert.Panics(t, func() { MustLoad(path) })
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Grid: Grid{Size: 3},
			Players: map[string]Player{
				"p1": {Char: "X"},
				"p2": {Char: "O"},
			},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("Not enough players", func(t *testing.T) {
		conf := valid()
		delete(conf.Players, "p2")

		require.ErrorIs(t, conf.Validate(), ErrNotEnoughPlayers)
	})

	t.Run("Invalid char", func(t *testing.T) {
		for _, char := range []string{"", "   ", "XX", "ab "} {
			conf := valid()
			conf.Players["p2"] = Player{Char: char}

			require.ErrorIs(t, conf.Validate(), ErrInvalidPlayerChar, char)
		}
	})

	t.Run("Surrounding whitespace is ignored", func(t *testing.T) {
		conf := valid()
		conf.Players["p2"] = Player{Char: " Ö "}

		require.NoError(t, conf.Validate())
	})

	t.Run("Duplicate char", func(t *testing.T) {
		conf := valid()
		conf.Players["p3"] = Player{Char: " X"}

		require.ErrorIs(t, conf.Validate(), ErrDuplicatePlayerChar)
	})
}

func TestConfig_ResolvedPlayers(t *testing.T) {
	ai := true
	human := false
	conf := &Config{
		Grid: Grid{Size: 3},
		Players: map[string]Player{
			"c": {Char: "@"},
			"a": {Char: " X ", AI: &human},
			"b": {Char: "O", AI: &ai},
		},
	}

	players := conf.ResolvedPlayers()

	assert.Equal(t, []*entity.Player{
		{Mark: "X", AI: false},
		{Mark: "O", AI: true},
		{Mark: "@", AI: false},
	}, players)
}

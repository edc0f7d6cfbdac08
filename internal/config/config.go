package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const minPlayers = 2

var (
	ErrConfigRead          = errors.New("couldn't load config file")
	ErrInvalidGridSize     = errors.New("grid size must be between 3 and 10")
	ErrNotEnoughPlayers    = errors.New("you need at least two players to play the game")
	ErrInvalidPlayerChar   = errors.New("a player character needs to be a single character")
	ErrDuplicatePlayerChar = errors.New("characters need to be unique between players")
)

type Config struct {
	LogLevel string            `json:"log-level" yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Grid     Grid              `json:"grid" yaml:"grid"`
	Players  map[string]Player `json:"players" yaml:"players"`
	Redis    Redis             `json:"redis" yaml:"redis"`
}

type Grid struct {
	Size int `json:"size" yaml:"size"`
}

// Player - a player entry. AI is optional and means a human player when absent.
type Player struct {
	Char string `json:"char" yaml:"char"`
	AI   *bool  `json:"ai" yaml:"ai"`
}

type Redis struct {
	Enabled bool   `json:"enabled" yaml:"enabled" env:"REDIS_ENABLED"`
	Host    string `json:"host" yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `json:"port" yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Load - reads the config file (json or yaml, by extension) and validates it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConfigRead, path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in the config file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	if that.Grid.Size < entity.MinBoardSize || that.Grid.Size > entity.MaxBoardSize {
		return fmt.Errorf("%w: got %d", ErrInvalidGridSize, that.Grid.Size)
	}

	if len(that.Players) < minPlayers {
		return fmt.Errorf("%w: got %d", ErrNotEnoughPlayers, len(that.Players))
	}

	seen := make(map[string]string, len(that.Players))
	for _, key := range that.playerKeys() {
		char := strings.TrimSpace(that.Players[key].Char)
		if utf8.RuneCountInString(char) != 1 {
			return fmt.Errorf("%w: player %q has %q", ErrInvalidPlayerChar, key, that.Players[key].Char)
		}

		if other, ok := seen[char]; ok {
			return fmt.Errorf("%w: %q used by players %q and %q", ErrDuplicatePlayerChar, char, other, key)
		}
		seen[char] = key
	}

	return nil
}

// ResolvedPlayers - players ordered by their config key, with marks trimmed
// and the AI flag defaulted to false.
func (that *Config) ResolvedPlayers() []*entity.Player {
	players := make([]*entity.Player, 0, len(that.Players))
	for _, key := range that.playerKeys() {
		settings := that.Players[key]
		players = append(players, entity.NewPlayer(
			strings.TrimSpace(settings.Char),
			settings.AI != nil && *settings.AI,
		))
	}

	return players
}

func (that *Config) playerKeys() []string {
	keys := make([]string, 0, len(that.Players))
	for key := range that.Players {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

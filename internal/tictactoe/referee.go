package tictactoe

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Only single-digit coordinates are accepted, which is enough for boards up to 10x10.
var movePattern = regexp.MustCompile(`^(\d),(\d)$`)

// ValidateMove - parses a raw "<row>,<col>" line and checks it against the board.
// The board is never modified.
func ValidateMove(input string, board *entity.Board) (entity.Move, error) {
	cleaned := stripSpaces(input)

	groups := movePattern.FindStringSubmatch(cleaned)
	if groups == nil {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, input)
	}

	move := entity.Move{
		Row: int(groups[1][0] - '0'),
		Col: int(groups[2][0] - '0'),
	}

	if !board.Inside(move.Row, move.Col) {
		return entity.Move{}, fmt.Errorf("%w: %s on %dx%d grid", apperror.ErrOutOfRange, move, board.Size(), board.Size())
	}

	if board.IsOccupied(move.Row, move.Col) {
		return entity.Move{}, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	return move, nil
}

func stripSpaces(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
}

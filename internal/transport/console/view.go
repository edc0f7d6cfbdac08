package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const cellWidth = 5

// View writes the board and referee messages to a terminal.
type View struct {
	out io.Writer
}

func NewView(out io.Writer) *View {
	return &View{out: out}
}

// Render - draws the board as a bordered table with row and column indices.
func (that *View) Render(board *entity.Board) error {
	size := board.Size()
	border := "    +" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", size) + "\n"

	var sb strings.Builder

	sb.WriteString("\n     ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(&sb, "%s ", center(fmt.Sprint(col)))
	}
	sb.WriteString("\n")
	sb.WriteString(border)

	for row := 0; row < size; row++ {
		fmt.Fprintf(&sb, "%3d |", row)
		for col := 0; col < size; col++ {
			fmt.Fprintf(&sb, "%s|", center(board.Get(row, col)))
		}
		sb.WriteString("\n")
		sb.WriteString(border)
	}
	sb.WriteString("\n")

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func (that *View) Printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func center(value string) string {
	width := len([]rune(value))
	if width >= cellWidth {
		return value
	}

	left := (cellWidth - width) / 2

	return strings.Repeat(" ", left) + value + strings.Repeat(" ", cellWidth-width-left)
}

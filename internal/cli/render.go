package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	cellGap   = " | "
	boardGap  = " || "
	bandGap   = "===="
	emptyMark = "."
)

var (
	cellSep = strings.Repeat("-", 3)
	rowSep  = strings.Join([]string{cellSep, cellSep, cellSep}, " + ")
)

// Renderer draws the nine sub-boards as one 9x9 grid.
type Renderer struct {
	output *termenv.Output
}

// NewRenderer - styles marks with the terminal's color profile, plain text when color is false.
func NewRenderer(w io.Writer, color bool) *Renderer {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{output: termenv.NewOutput(w, opts...)}
}

func (that *Renderer) Render(game *tictactoe.UltimateGame) string {
	var sb strings.Builder

	innerSep := strings.Join([]string{rowSep, rowSep, rowSep}, boardGap)
	band := strings.Repeat("=", len(rowSep))
	bandSep := strings.Join([]string{band, band, band}, bandGap)

	for boardRow := 0; boardRow < entity.Size; boardRow++ {
		if boardRow > 0 {
			sb.WriteString(bandSep)
			sb.WriteString("\n")
		}

		for row := 0; row < entity.Size; row++ {
			if row > 0 {
				sb.WriteString(innerSep)
				sb.WriteString("\n")
			}

			boards := make([]string, 0, entity.Size)
			for boardCol := 0; boardCol < entity.Size; boardCol++ {
				sub := game.SubBoard(entity.Coord{Row: boardRow, Col: boardCol})

				marks := make([]string, 0, entity.Size)
				for col := 0; col < entity.Size; col++ {
					marks = append(marks, " "+that.mark(sub[row][col])+" ")
				}

				boards = append(boards, strings.Join(marks, cellGap))
			}

			sb.WriteString(strings.Join(boards, boardGap))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Summary - the move count and every decided sub-board, one-based.
func (that *Renderer) Summary(game *tictactoe.UltimateGame) string {
	decided := make([]string, 0, entity.Cells)
	for index := 0; index < entity.Cells; index++ {
		board, _ := entity.CoordFromIndex(index)
		if outcome := game.Outcome(board); outcome.IsSet() {
			decided = append(decided, fmt.Sprintf("%d,%d=%s", board.Row+1, board.Col+1, outcome))
		}
	}

	summary := fmt.Sprintf("Moves: %d", game.Moves())
	if len(decided) > 0 {
		summary += " | Decided: " + strings.Join(decided, " ")
	}

	return summary + "\n"
}

func (that *Renderer) mark(cell entity.Cell) string {
	switch cell {
	case entity.X:
		return that.output.String(cell.String()).Foreground(that.output.Color("1")).Bold().String()
	case entity.O:
		return that.output.String(cell.String()).Foreground(that.output.Color("4")).Bold().String()
	default:
		return emptyMark
	}
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	msgInvalidInput   = "Invalid input. Try again."
	msgBoardNotActive = "That board is not active. Try again."
	msgIllegalMove    = "Illegal move. Try again."
	msgTie            = "Game over: tie."

	banner = "Ultimate Tic-Tac-Toe\n" +
		"Input: board_row board_col cell_row cell_col (1-3).\n" +
		"If a board is forced, you may enter just cell_row cell_col.\n" +
		"Type 'q' to quit.\n\n"
)

var errLineTooLong = errors.New("line too long")

// Session - a two-player game of ultimate tic-tac-toe over a line-based terminal.
type Session struct {
	logger   *slog.Logger
	game     *tictactoe.UltimateGame
	renderer *Renderer
	in       *bufio.Reader
	out      io.Writer
}

func NewSession(logger *slog.Logger, in io.Reader, out io.Writer, color bool) *Session {
	return &Session{
		logger:   logger.With("component", "cli"),
		game:     tictactoe.NewUltimateGame(),
		renderer: NewRenderer(out, color),
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run - plays until the game is over, the player quits, or the input ends.
func (that *Session) Run(ctx context.Context) error {
	redraw := true

	fmt.Fprint(that.out, banner)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if redraw {
			fmt.Fprint(that.out, that.renderer.Render(that.game))
			fmt.Fprint(that.out, that.renderer.Summary(that.game))
			redraw = false
		}

		if that.game.IsOver() {
			that.printResult()
			return nil
		}

		fmt.Fprint(that.out, that.prompt())

		text, err := that.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(that.out)
			return nil
		}

		if err != nil && !errors.Is(err, apperror.ErrInvalidInput) {
			return fmt.Errorf("failed to read move: %w", err)
		}

		var move Move
		if err == nil {
			active, hasActive := that.game.ActiveBoard()
			move, err = ParseMove(text, active, hasActive)
		}

		if errors.Is(err, ErrQuit) {
			return nil
		}

		if err != nil {
			that.logger.Debug("bad input", "error", err)
			fmt.Fprintln(that.out, msgInvalidInput)
			continue
		}

		if err = that.game.Place(move.Board, move.Cell); err != nil {
			that.logger.Debug("move rejected", "board", move.Board, "cell", move.Cell, "error", err)

			if errors.Is(err, apperror.ErrBoardNotActive) {
				fmt.Fprintln(that.out, msgBoardNotActive)
			} else {
				fmt.Fprintln(that.out, msgIllegalMove)
			}

			continue
		}

		redraw = true
	}
}

// readLine - returns one line without its terminator. An overlong line is
// consumed up to its end and reported as invalid input.
func (that *Session) readLine() (string, error) {
	line, isPrefix, err := that.in.ReadLine()
	if err != nil {
		return "", err
	}

	if !isPrefix {
		return string(line), nil
	}

	for isPrefix {
		if _, isPrefix, err = that.in.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return "", err
		}
	}

	return "", fmt.Errorf("%w: %w", apperror.ErrInvalidInput, errLineTooLong)
}

func (that *Session) prompt() string {
	player := that.game.CurrentPlayer()

	if active, ok := that.game.ActiveBoard(); ok {
		return fmt.Sprintf("Player %s move (board %d,%d): ", player, active.Row+1, active.Col+1)
	}

	return fmt.Sprintf("Player %s move (any board): ", player)
}

func (that *Session) printResult() {
	if winner, _, ok := that.game.GlobalWinner(); ok {
		fmt.Fprintf(that.out, "Winner: %s\n", winner)
		return
	}

	fmt.Fprintln(that.out, msgTie)
}

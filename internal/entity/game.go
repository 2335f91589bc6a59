package entity

const (
	StatusInProgress = "in_progress"
	StatusWin        = "win"
	StatusTie        = "tie"
)

// Board is a fixed 3x3 grid, indexed [row][col].
type Board [Size][Size]Cell

func (that *Board) At(c Coord) Cell {
	return that[c.Row][c.Col]
}

// Outcome is the result of a finished (or unfinished) sub-board.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeX
	OutcomeO
	OutcomeTie
)

// OutcomeOf - converts a winning mark into an outcome.
func OutcomeOf(winner Cell) Outcome {
	switch winner {
	case X:
		return OutcomeX
	case O:
		return OutcomeO
	default:
		return OutcomeNone
	}
}

// Cell - returns the mark that owns the outcome; None and Tie map to Empty.
func (that Outcome) Cell() Cell {
	switch that {
	case OutcomeX:
		return X
	case OutcomeO:
		return O
	default:
		return Empty
	}
}

func (that Outcome) IsSet() bool {
	return that != OutcomeNone
}

func (that Outcome) String() string {
	switch that {
	case OutcomeX:
		return markX
	case OutcomeO:
		return markO
	case OutcomeTie:
		return "T"
	default:
		return ""
	}
}

// Snapshot is the public view of a classic game.
type Snapshot struct {
	GameID        string  `json:"game_id"`
	Board         Board   `json:"board"`
	CurrentPlayer Cell    `json:"current_player"`
	FirstPlayer   Cell    `json:"first_player"`
	Winner        Cell    `json:"winner"`
	WinningLine   *[3]int `json:"winning_line"`
	Locked        bool    `json:"locked"`
	Moves         int     `json:"moves"`
	Status        string  `json:"status"`
	StatusMessage string  `json:"status_message"`
}

func (that *Snapshot) IsFinished() bool {
	return that.Status != StatusInProgress
}

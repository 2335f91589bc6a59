package entity

const (
	EventMove      = "game:move"
	EventReset     = "game:reset"
	EventSwapFirst = "game:swap-first"
)

// Event is emitted after every successful state change of the classic game.
type Event struct {
	Action string    `json:"action"`
	Game   *Snapshot `json:"game"`
}

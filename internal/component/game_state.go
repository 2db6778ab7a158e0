package component

// GameState is the overall run state.
type GameState int

const (
	Running GameState = iota
	GameOver
	Victory
)

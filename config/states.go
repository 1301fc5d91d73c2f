package config

// GameStateID identifies the top-level flow state of a run.
type GameStateID int

const (
	StateMenu GameStateID = iota
	StatePlaying
	StateStageClear
	StateLevelClear
	StateGameOver
)

func (s GameStateID) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateStageClear:
		return "StageClear"
	case StateLevelClear:
		return "LevelClear"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// EnemyKind names an enemy variant. It selects speed, damage, health formula
// and color from Enemy.Types.
type EnemyKind string

const (
	KindFudmonster EnemyKind = "fudmonster"
	KindMiniboss   EnemyKind = "miniboss"
	KindBoss       EnemyKind = "boss"
)

// Direction constants for actor facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

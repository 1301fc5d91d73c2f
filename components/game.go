package components

import (
	"github.com/automoto/coop-brawl/config"
	"github.com/yohamta/donburi"
)

// GameData stores the flow state of the run
type GameData struct {
	State config.GameStateID

	// MessageTimer counts down while a transition screen is shown; dismissal
	// input is ignored until it reaches 0.
	MessageTimer int
}

// Game is the singleton component for game flow state
var Game = donburi.NewComponentType[GameData]()

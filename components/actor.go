package components

import "github.com/yohamta/donburi"

// ActorData is the state shared by every fighting character.
type ActorData struct {
	Facing float64 // config.DirectionLeft or config.DirectionRight

	// Walk animation
	IsMoving        bool
	WalkFrame       int
	WalkAnimCounter int
}

var Actor = donburi.NewComponentType[ActorData]()

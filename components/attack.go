package components

import "github.com/yohamta/donburi"

// AttackData tracks a melee swing. Frame counts up while IsAttacking and
// drives both the active hit window and the swing animation.
type AttackData struct {
	IsAttacking bool
	Frame       int
}

var Attack = donburi.NewComponentType[AttackData]()

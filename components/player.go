package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	AttackCooldown int // frames until the next attack may start
}

var Player = donburi.NewComponentType[PlayerData]()

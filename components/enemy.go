package components

import (
	"github.com/automoto/coop-brawl/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind       config.EnemyKind
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	// Knockback is the remaining forced displacement; while it is non-zero
	// the enemy slides by KnockbackVx per frame and does not chase or attack.
	Knockback   float64
	KnockbackVx float64
}

// KnockedBack reports whether a knockback impulse is still active.
func (e *EnemyData) KnockedBack() bool {
	return e.Knockback != 0
}

var Enemy = donburi.NewComponentType[EnemyData]()

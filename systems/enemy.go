package systems

import (
	"math"

	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/shared/gamemath"
	"github.com/automoto/coop-brawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ecs *ecs.ECS) {
	playerEntry, ok := GetPlayer(ecs)
	if !ok {
		return
	}
	target := components.Object.Get(playerEntry).Rect()

	tags.Enemy.Each(ecs.World, func(enemyEntry *donburi.Entry) {
		if components.Health.Get(enemyEntry).Defeated() {
			return
		}
		updateEnemyAI(enemyEntry, target)
	})
}

func updateEnemyAI(enemyEntry *donburi.Entry, target gamemath.Rect) {
	enemy := components.Enemy.Get(enemyEntry)
	obj := components.Object.Get(enemyEntry)

	// A knocked back enemy only slides until the impulse dies out.
	if enemy.KnockedBack() {
		applyKnockback(enemy, obj)
		return
	}

	actor := components.Actor.Get(enemyEntry)
	attack := components.Attack.Get(enemyEntry)
	physics := components.Physics.Get(enemyEntry)

	dx := target.X - obj.X
	dy := target.Y - obj.Y
	actor.Facing = gamemath.Direction(dx)

	speed := cfg.Enemy.Speed * enemySpeedMultiplier(enemy)

	actor.IsMoving = false
	if !attack.IsAttacking && math.Abs(dx) > cfg.Enemy.StoppingDistance {
		obj.X += speed * actor.Facing
		actor.IsMoving = true
	}

	if math.Abs(dy) > cfg.Enemy.VerticalThreshold {
		obj.Y += gamemath.Direction(dy) * speed * cfg.Enemy.VerticalSpeedScale
	}

	if !attack.IsAttacking && math.Abs(dx) < cfg.Enemy.AttackRangeX && math.Abs(dy) < cfg.Enemy.AttackRangeY {
		attack.IsAttacking = true
		attack.Frame = 0
	}

	if attack.IsAttacking {
		attack.Frame++
		if attack.Frame > cfg.Enemy.AttackDuration {
			attack.IsAttacking = false
			attack.Frame = 0
		}
	}

	// Enemies have no gravity; the floor only bounds them from below.
	if landOnFloor(obj) {
		physics.SpeedY = 0
	}
	clampToScreen(obj)

	// The shuffle animation runs even while standing still.
	actor.WalkAnimCounter++
	if actor.WalkAnimCounter >= cfg.Enemy.WalkAnimSpeed {
		actor.WalkAnimCounter = 0
		actor.WalkFrame = (actor.WalkFrame + 1) % cfg.Enemy.WalkFrames
	}
}

func applyKnockback(enemy *components.EnemyData, obj *components.ObjectData) {
	obj.X += enemy.KnockbackVx

	var done bool
	enemy.Knockback, done = gamemath.Decay(enemy.Knockback, cfg.Combat.KnockbackDecay, cfg.Combat.KnockbackCutoff)
	enemy.KnockbackVx *= cfg.Combat.KnockbackDecay
	if done {
		enemy.Knockback = 0
		enemy.KnockbackVx = 0
	}
	clampToScreen(obj)
}

func enemySpeedMultiplier(enemy *components.EnemyData) float64 {
	if enemy.TypeConfig != nil {
		return enemy.TypeConfig.SpeedMultiplier
	}
	return cfg.EnemyType(enemy.Kind).SpeedMultiplier
}

func enemyDamage(enemy *components.EnemyData) int {
	if enemy.TypeConfig != nil {
		return enemy.TypeConfig.Damage
	}
	return cfg.EnemyType(enemy.Kind).Damage
}

// EnemyAttackBox returns the enemy's swing region, or false unless the enemy
// is alive and attacking.
func EnemyAttackBox(enemyEntry *donburi.Entry) (gamemath.Rect, bool) {
	attack := components.Attack.Get(enemyEntry)
	if !attack.IsAttacking || components.Health.Get(enemyEntry).Defeated() {
		return gamemath.Rect{}, false
	}
	return attackBox(
		components.Object.Get(enemyEntry).Rect(),
		components.Actor.Get(enemyEntry).Facing,
		cfg.Enemy.AttackBox,
	), true
}

package factory

import (
	"github.com/automoto/coop-brawl/archetypes"
	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy of the given kind. Unknown kinds become
// fudmonsters. Health below 1 is raised to 1 so a fresh enemy is never
// already defeated.
func CreateEnemy(ecs *ecs.ECS, pos math.Vec2, kind cfg.EnemyKind, health int) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[kind]
	if !exists {
		kind = cfg.KindFudmonster
		enemyType = cfg.Enemy.Types[kind]
	}
	if health < 1 {
		health = 1
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(pos.X, pos.Y, cfg.Enemy.Size, cfg.Enemy.Size)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:       kind,
		TypeConfig: &enemyType,
	})
	components.Actor.SetValue(enemy, components.ActorData{
		Facing: cfg.DirectionLeft, // Start facing left
	})
	components.Physics.SetValue(enemy, components.PhysicsData{})
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})

	return enemy
}

// EnemyFloorY is the y an enemy stands at on the floor.
func EnemyFloorY() float64 {
	return cfg.C.FloorY - cfg.Enemy.Size
}

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

// PlayerStart is where a fresh player, or a player entering a new scene, stands.
func PlayerStart() math.Vec2 {
	return math.Vec2{X: cfg.Player.StartX, Y: cfg.C.FloorY - cfg.Player.Size}
}

func CreatePlayer(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(pos.X, pos.Y, cfg.Player.Size, cfg.Player.Size)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	obj.Data = player
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		AttackCooldown: 0,
	})
	components.Actor.SetValue(player, components.ActorData{
		Facing: cfg.DirectionRight,
	})
	// Not grounded until the first floor contact.
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		OnGround: false,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	return player
}

package archetypes

import (
	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
		components.Actor,
		components.Attack,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
		components.Actor,
		components.Attack,
	)
	Space = newArchetype(
		components.Space,
	)
	Game = newArchetype(
		components.Game,
		components.Progression,
		components.Input,
		components.Random,
		components.Frame,
		components.Banner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

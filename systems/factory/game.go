package factory

import (
	"github.com/automoto/coop-brawl/archetypes"
	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the singleton entity holding flow state, progression
// counters, input buffers, the random source and the frame snapshot.
func CreateGame(ecs *ecs.ECS, rng components.RandomSource) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)

	components.Game.SetValue(game, components.GameData{
		State: cfg.StateMenu,
	})
	components.Progression.SetValue(game, components.ProgressionData{
		Scene: 1,
		Stage: 1,
		Level: 1,
	})
	components.Random.SetValue(game, components.RandomData{
		Source: rng,
	})

	return game
}

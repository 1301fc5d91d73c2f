package systems

import (
	"github.com/automoto/coop-brawl/components"
	"github.com/automoto/coop-brawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetGame returns the game flow singleton, or nil before the game entity exists.
func GetGame(ecs *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}

// GetProgression returns the scene/stage/level counters, or nil if missing.
func GetProgression(ecs *ecs.ECS) *components.ProgressionData {
	entry, ok := components.Progression.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Progression.Get(entry)
}

// GetPlayer returns the player entity if one is alive in the world.
func GetPlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

// getRandom returns the injected random source. Without one every draw is 0.
func getRandom(ecs *ecs.ECS) components.RandomSource {
	entry, ok := components.Random.First(ecs.World)
	if !ok {
		return zeroRandom{}
	}
	if src := components.Random.Get(entry).Source; src != nil {
		return src
	}
	return zeroRandom{}
}

type zeroRandom struct{}

func (zeroRandom) Float64() float64 { return 0 }

func getSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// removeActor destroys an actor entity and drops its collision object.
func removeActor(ecs *ecs.ECS, e *donburi.Entry) {
	if space := getSpace(ecs); space != nil && e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

// enemyEntries snapshots the live enemy entries so callers can remove
// entities while walking the result.
func enemyEntries(ecs *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	return entries
}

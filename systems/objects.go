package systems

import (
	"github.com/automoto/coop-brawl/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every moved collision object with the space.
// Must run after movement and before UpdateCombat.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

package systems

import (
	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/shared/gamemath"
	"github.com/automoto/coop-brawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves sword hits on enemies, then enemy swings on the
// player, then removes defeated enemies. It is the only place enemies are
// destroyed.
func UpdateCombat(ecs *ecs.ECS) {
	playerEntry, ok := GetPlayer(ecs)
	if !ok {
		return
	}
	space := getSpace(ecs)

	resolvePlayerAttack(ecs, space, playerEntry)
	resolveEnemyAttacks(ecs, space, playerEntry)
	removeDefeatedEnemies(ecs)
}

func resolvePlayerAttack(ecs *ecs.ECS, space *resolv.Space, playerEntry *donburi.Entry) {
	box, ok := PlayerAttackBox(playerEntry)
	if !ok {
		return
	}
	facing := components.Actor.Get(playerEntry).Facing

	for _, enemyEntry := range overlappingActors(ecs, space, box, tags.ResolvEnemy) {
		health := components.Health.Get(enemyEntry)
		if health.Defeated() {
			continue
		}
		health.Current = gamemath.ClampInt(health.Current-cfg.Combat.PlayerDamage, 0, health.Max)

		// A hit cancels the enemy's swing and knocks it away from the player.
		components.Attack.Get(enemyEntry).IsAttacking = false
		enemy := components.Enemy.Get(enemyEntry)
		enemy.Knockback = cfg.Combat.KnockbackDistance * facing
		enemy.KnockbackVx = cfg.Combat.KnockbackVelocity * facing
	}
}

func resolveEnemyAttacks(ecs *ecs.ECS, space *resolv.Space, playerEntry *donburi.Entry) {
	playerHealth := components.Health.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry)

	for _, enemyEntry := range enemyEntries(ecs) {
		if playerHealth.Defeated() {
			return
		}
		box, ok := EnemyAttackBox(enemyEntry)
		if !ok {
			continue
		}
		if !boxHits(space, box, playerObj, tags.ResolvPlayer) {
			continue
		}

		enemy := components.Enemy.Get(enemyEntry)
		playerHealth.Current = gamemath.ClampInt(playerHealth.Current-enemyDamage(enemy), 0, playerHealth.Max)

		facing := components.Actor.Get(enemyEntry).Facing
		playerObj.X -= cfg.Combat.PlayerPushback * facing
		clampToScreen(playerObj)
		playerObj.Update()

		if playerHealth.Defeated() {
			SetGameState(ecs, cfg.StateGameOver, cfg.Progression.GameOverTimer)
		}
	}
}

func removeDefeatedEnemies(ecs *ecs.ECS) {
	for _, enemyEntry := range enemyEntries(ecs) {
		if components.Health.Get(enemyEntry).Defeated() {
			removeActor(ecs, enemyEntry)
		}
	}
}

// overlappingActors returns the actors tagged tag whose bounds strictly
// overlap box. The resolv space narrows the candidates when one exists.
func overlappingActors(ecs *ecs.ECS, space *resolv.Space, box gamemath.Rect, tag string) []*donburi.Entry {
	var hits []*donburi.Entry
	for _, entry := range candidates(ecs, space, box, tag) {
		if gamemath.Overlaps(box, components.Object.Get(entry).Rect()) {
			hits = append(hits, entry)
		}
	}
	return hits
}

func candidates(ecs *ecs.ECS, space *resolv.Space, box gamemath.Rect, tag string) []*donburi.Entry {
	if space == nil {
		if tag == tags.ResolvPlayer {
			if p, ok := GetPlayer(ecs); ok {
				return []*donburi.Entry{p}
			}
			return nil
		}
		return enemyEntries(ecs)
	}

	probe := broadPhaseProbe(box)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var entries []*donburi.Entry
	for _, obj := range check.Objects {
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
			entries = append(entries, entry)
		}
	}
	return entries
}

func boxHits(space *resolv.Space, box gamemath.Rect, target *components.ObjectData, tag string) bool {
	if space != nil {
		probe := broadPhaseProbe(box)
		space.Add(probe)
		defer space.Remove(probe)
		if probe.Check(0, 0, tag) == nil {
			return false
		}
	}
	return gamemath.Overlaps(box, target.Rect())
}

// broadPhaseProbe builds the resolv object used to query the space around
// box. resolv maps the far edge to cells through X+W-1, so an unpadded probe
// misses actors that box overlaps by less than a pixel across a cell
// boundary. Overlaps makes the final call.
func broadPhaseProbe(box gamemath.Rect) *resolv.Object {
	return resolv.NewObject(box.X-1, box.Y-1, box.W+2, box.H+2)
}

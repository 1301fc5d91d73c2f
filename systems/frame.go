package systems

import (
	"github.com/automoto/coop-brawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrame rebuilds the render snapshot. Must be the last system of the
// frame so the renderer sees the settled state.
func UpdateFrame(ecs *ecs.ECS) {
	entry, ok := components.Frame.First(ecs.World)
	if !ok {
		return
	}
	frame := components.Frame.Get(entry)
	BuildFrame(ecs, frame)
}

// BuildFrame fills frame from the current world state, reusing its enemy
// slice.
func BuildFrame(ecs *ecs.ECS, frame *components.FrameData) {
	frame.Tick++

	if game := GetGame(ecs); game != nil {
		frame.State = game.State
		frame.MessageTimer = game.MessageTimer
	}
	frame.BannerAlpha = 1
	if entry, ok := components.Banner.First(ecs.World); ok {
		frame.BannerAlpha = components.Banner.Get(entry).Alpha
	}
	if prog := GetProgression(ecs); prog != nil {
		frame.Scene = prog.Scene
		frame.Stage = prog.Stage
		frame.Level = prog.Level
	}

	frame.HasPlayer = false
	frame.Player = components.ActorView{}
	if playerEntry, ok := GetPlayer(ecs); ok {
		frame.HasPlayer = true
		frame.Player = actorView(playerEntry)
		frame.Player.AttackBox, frame.Player.HasAttackBox = PlayerAttackBox(playerEntry)
	}

	frame.Enemies = frame.Enemies[:0]
	for _, enemyEntry := range enemyEntries(ecs) {
		enemy := components.Enemy.Get(enemyEntry)
		view := components.EnemyView{
			ActorView: actorView(enemyEntry),
			Kind:      enemy.Kind,
		}
		view.AttackBox, view.HasAttackBox = EnemyAttackBox(enemyEntry)
		if enemy.TypeConfig != nil {
			view.Color = enemy.TypeConfig.Color
			view.ShowHealthBar = enemy.TypeConfig.ShowHealthBar
		}
		frame.Enemies = append(frame.Enemies, view)
	}
}

func actorView(e *donburi.Entry) components.ActorView {
	health := components.Health.Get(e)
	actor := components.Actor.Get(e)
	attack := components.Attack.Get(e)
	return components.ActorView{
		Rect:        components.Object.Get(e).Rect(),
		Facing:      actor.Facing,
		Health:      health.Current,
		MaxHealth:   health.Max,
		IsAttacking: attack.IsAttacking,
		AttackFrame: attack.Frame,
		IsMoving:    actor.IsMoving,
		WalkFrame:   actor.WalkFrame,
	}
}

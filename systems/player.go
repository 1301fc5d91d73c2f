package systems

import (
	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := GetPlayer(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	updateSinglePlayer(input, playerEntry)
}

func updateSinglePlayer(input *components.InputData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	actor := components.Actor.Get(playerEntry)
	attack := components.Attack.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	handleMovementInput(input, physics, actor)
	updateWalkAnimation(actor, cfg.Player.WalkAnimSpeed, cfg.Player.WalkFrames)
	handleJumpInput(input, physics)
	handleAttackInput(input, player, attack)

	physics.SpeedY += physics.Gravity
	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY

	if landOnFloor(obj) {
		physics.SpeedY = 0
		physics.OnGround = true
	}
	clampToScreen(obj)

	if player.AttackCooldown > 0 {
		player.AttackCooldown--
	}
	if attack.IsAttacking {
		attack.Frame++
		if attack.Frame > cfg.Player.AttackDuration {
			attack.IsAttacking = false
		}
	}
}

// handleMovementInput applies horizontal intent. Left wins when both
// directions are held.
func handleMovementInput(input *components.InputData, physics *components.PhysicsData, actor *components.ActorData) {
	wasMoving := actor.IsMoving
	switch {
	case GetAction(input, cfg.ActionMoveLeft).Pressed:
		physics.SpeedX = -cfg.Player.Speed
		actor.Facing = cfg.DirectionLeft
		actor.IsMoving = true
	case GetAction(input, cfg.ActionMoveRight).Pressed:
		physics.SpeedX = cfg.Player.Speed
		actor.Facing = cfg.DirectionRight
		actor.IsMoving = true
	default:
		physics.SpeedX = 0
		actor.IsMoving = false
	}

	// Back to the idle frame when stopping
	if wasMoving && !actor.IsMoving {
		actor.WalkFrame = 0
		actor.WalkAnimCounter = 0
	}
}

func handleJumpInput(input *components.InputData, physics *components.PhysicsData) {
	if GetAction(input, cfg.ActionJump).Pressed && physics.OnGround {
		physics.SpeedY = cfg.Player.JumpSpeed
		physics.OnGround = false
	}
}

func handleAttackInput(input *components.InputData, player *components.PlayerData, attack *components.AttackData) {
	if !GetAction(input, cfg.ActionAttack).Pressed {
		return
	}
	if attack.IsAttacking || player.AttackCooldown > 0 {
		return
	}
	attack.IsAttacking = true
	attack.Frame = 0
	player.AttackCooldown = cfg.Player.AttackCooldown
}

// updateWalkAnimation advances the walk cycle while the actor moves.
func updateWalkAnimation(actor *components.ActorData, speed, frames int) {
	if !actor.IsMoving || frames <= 0 {
		return
	}
	actor.WalkAnimCounter++
	if actor.WalkAnimCounter >= speed {
		actor.WalkAnimCounter = 0
		actor.WalkFrame = (actor.WalkFrame + 1) % frames
	}
}

// landOnFloor snaps obj onto the floor if it sank below it.
func landOnFloor(obj *components.ObjectData) bool {
	if obj.Y+obj.H <= cfg.C.FloorY {
		return false
	}
	obj.Y = cfg.C.FloorY - obj.H
	return true
}

func clampToScreen(obj *components.ObjectData) {
	obj.X = gamemath.Clamp(obj.X, 0, float64(cfg.C.Width)-obj.W)
}

// PlayerAttackBox returns the sword hit region, or false when the player is
// not swinging.
func PlayerAttackBox(playerEntry *donburi.Entry) (gamemath.Rect, bool) {
	attack := components.Attack.Get(playerEntry)
	if !attack.IsAttacking {
		return gamemath.Rect{}, false
	}
	return attackBox(
		components.Object.Get(playerEntry).Rect(),
		components.Actor.Get(playerEntry).Facing,
		cfg.Player.AttackBox,
	), true
}

func attackBox(owner gamemath.Rect, facing float64, box cfg.AttackBoxConfig) gamemath.Rect {
	x := owner.X - box.BackReach
	if facing == cfg.DirectionRight {
		x = owner.Right() - box.FrontInset
	}
	return gamemath.Rect{
		X: x,
		Y: owner.Y + box.OffsetY,
		W: box.Width,
		H: box.Height,
	}
}

package systems

import (
	"testing"

	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepPlayer(g *testGame) {
	g.sample()
	UpdatePlayer(g.ecs)
}

func TestCreatePlayerDefaults(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)

	obj := components.Object.Get(p)
	assert.Equal(t, 60.0, obj.X)
	assert.Equal(t, cfg.C.FloorY-36, obj.Y)
	assert.Equal(t, 36.0, obj.W)
	assert.Equal(t, 8, components.Health.Get(p).Current)
	assert.Equal(t, 8, components.Health.Get(p).Max)
	assert.Equal(t, cfg.DirectionRight, components.Actor.Get(p).Facing)
	assert.False(t, components.Physics.Get(p).OnGround, "grounded only after first floor contact")
}

func TestPlayerJump(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	physics := components.Physics.Get(p)
	obj := components.Object.Get(p)

	// First frame lands the player on the floor.
	stepPlayer(g)
	require.True(t, physics.OnGround)
	assert.Equal(t, 0.0, physics.SpeedY)
	assert.Equal(t, cfg.C.FloorY-36, obj.Y)

	g.input.Hold(cfg.ActionJump)
	stepPlayer(g)
	assert.False(t, physics.OnGround)
	assert.InDelta(t, -7.68, physics.SpeedY, 1e-9)
	assert.InDelta(t, cfg.C.FloorY-36-7.68, obj.Y, 1e-9)

	// Holding jump in the air does nothing more than gravity.
	stepPlayer(g)
	assert.InDelta(t, -7.36, physics.SpeedY, 1e-9)
	g.input.Release(cfg.ActionJump)
	stepPlayer(g)
	assert.InDelta(t, -7.04, physics.SpeedY, 1e-9)

	// Eventually the player lands again.
	for i := 0; i < 100 && !physics.OnGround; i++ {
		stepPlayer(g)
	}
	assert.True(t, physics.OnGround)
	assert.Equal(t, cfg.C.FloorY-36, obj.Y)
}

func TestPlayerMovement(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	obj := components.Object.Get(p)
	actor := components.Actor.Get(p)

	g.input.Hold(cfg.ActionMoveRight)
	stepPlayer(g)
	assert.Equal(t, 63.5, obj.X)
	assert.Equal(t, cfg.DirectionRight, actor.Facing)
	assert.True(t, actor.IsMoving)

	// Left wins when both are held.
	g.input.Hold(cfg.ActionMoveLeft)
	stepPlayer(g)
	assert.Equal(t, 60.0, obj.X)
	assert.Equal(t, cfg.DirectionLeft, actor.Facing)

	g.input.ReleaseAll()
	stepPlayer(g)
	assert.Equal(t, 60.0, obj.X)
	assert.False(t, actor.IsMoving)
	assert.Equal(t, 0, actor.WalkFrame)
	assert.Equal(t, cfg.DirectionLeft, actor.Facing, "facing is kept when stopping")
}

func TestPlayerClampedToScreen(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	obj := components.Object.Get(p)

	g.input.Hold(cfg.ActionMoveLeft)
	for i := 0; i < 30; i++ {
		stepPlayer(g)
		assert.GreaterOrEqual(t, obj.X, 0.0)
	}
	assert.Equal(t, 0.0, obj.X)

	g.input.ReleaseAll()
	g.input.Hold(cfg.ActionMoveRight)
	for i := 0; i < 300; i++ {
		stepPlayer(g)
		assert.LessOrEqual(t, obj.X, float64(cfg.C.Width)-36)
	}
	assert.Equal(t, float64(cfg.C.Width)-36, obj.X)
}

func TestPlayerWalkAnimation(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	actor := components.Actor.Get(p)

	g.input.Hold(cfg.ActionMoveRight)
	for i := 0; i < 6; i++ {
		stepPlayer(g)
	}
	assert.Equal(t, 1, actor.WalkFrame)

	for i := 0; i < 6*4; i++ {
		stepPlayer(g)
	}
	assert.Equal(t, 0, actor.WalkFrame, "five frames wrap around")
}

func TestPlayerAttackCooldown(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	attack := components.Attack.Get(p)
	player := components.Player.Get(p)

	g.input.Hold(cfg.ActionAttack)
	stepPlayer(g)
	require.True(t, attack.IsAttacking)
	assert.Equal(t, 1, attack.Frame)
	assert.Equal(t, 15, player.AttackCooldown)

	for frame := 2; frame <= 10; frame++ {
		stepPlayer(g)
		assert.True(t, attack.IsAttacking, "frame %d", frame)
	}

	// Frame 11 ends the swing.
	stepPlayer(g)
	assert.False(t, attack.IsAttacking)

	// Holding attack cannot restart before the cooldown has run out.
	for frame := 12; frame <= 16; frame++ {
		stepPlayer(g)
		assert.False(t, attack.IsAttacking, "frame %d", frame)
	}
	assert.Equal(t, 0, player.AttackCooldown)

	stepPlayer(g)
	assert.True(t, attack.IsAttacking)
	assert.Equal(t, 1, attack.Frame)
}

func TestPlayerAttackBox(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)

	_, ok := PlayerAttackBox(p)
	assert.False(t, ok, "no box unless attacking")

	components.Attack.Get(p).IsAttacking = true
	box, ok := PlayerAttackBox(p)
	require.True(t, ok)
	assert.Equal(t, gamemath.Rect{X: 60 + 36 - 4, Y: cfg.C.FloorY - 36 + 8, W: 22, H: 20}, box)

	components.Actor.Get(p).Facing = cfg.DirectionLeft
	box, _ = PlayerAttackBox(p)
	assert.Equal(t, 42.0, box.X)
}

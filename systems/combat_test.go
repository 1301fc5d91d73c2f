package systems

import (
	"testing"

	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/shared/gamemath"
	"github.com/automoto/coop-brawl/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerHitKnocksEnemyBack(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	components.Attack.Get(p).IsAttacking = true

	// Player box spans x 92..114; the enemy at 100 overlaps it.
	e := g.spawn(cfg.KindFudmonster, 100, 3)
	components.Attack.Get(e).IsAttacking = true

	UpdateCombat(g.ecs)

	enemy := components.Enemy.Get(e)
	assert.Equal(t, 2, components.Health.Get(e).Current)
	assert.False(t, components.Attack.Get(e).IsAttacking, "a hit cancels the enemy swing")
	assert.Equal(t, 10.0, enemy.Knockback)
	assert.Equal(t, 4.0, enemy.KnockbackVx)

	// Knockback slides the enemy and suspends its AI.
	facing := components.Actor.Get(e).Facing
	UpdateEnemies(g.ecs)
	assert.Equal(t, 104.0, components.Object.Get(e).X)
	assert.InDelta(t, 7.0, enemy.Knockback, 1e-9)
	assert.InDelta(t, 2.8, enemy.KnockbackVx, 1e-9)
	assert.Equal(t, facing, components.Actor.Get(e).Facing)
	assert.False(t, components.Attack.Get(e).IsAttacking)

	// 10 * 0.7^7 < 1: the impulse is gone after seven frames.
	for i := 0; i < 6; i++ {
		UpdateEnemies(g.ecs)
	}
	assert.Equal(t, 0.0, enemy.Knockback)
	assert.Equal(t, 0.0, enemy.KnockbackVx)
	assert.False(t, enemy.KnockedBack())
}

func TestKnockbackFollowsPlayerFacing(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	placeActor(p, 300, cfg.C.FloorY-36)
	components.Actor.Get(p).Facing = cfg.DirectionLeft
	components.Attack.Get(p).IsAttacking = true

	// Facing left the box spans x 282..304.
	e := g.spawn(cfg.KindFudmonster, 260, 3)
	UpdateCombat(g.ecs)

	enemy := components.Enemy.Get(e)
	assert.Equal(t, -10.0, enemy.Knockback)
	assert.Equal(t, -4.0, enemy.KnockbackVx)
}

func TestKnockbackClampsToScreen(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	placeActor(p, 20, cfg.C.FloorY-36)
	components.Actor.Get(p).Facing = cfg.DirectionLeft
	components.Attack.Get(p).IsAttacking = true

	e := g.spawn(cfg.KindFudmonster, 0, 3)
	UpdateCombat(g.ecs)
	for i := 0; i < 10; i++ {
		UpdateEnemies(g.ecs)
		assert.GreaterOrEqual(t, components.Object.Get(e).X, 0.0)
	}
}

func TestEdgeTouchingBoxesDoNotHit(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	components.Attack.Get(p).IsAttacking = true

	box, ok := PlayerAttackBox(p)
	require.True(t, ok)

	// Enemy starts exactly at the box's right edge.
	e := g.spawn(cfg.KindFudmonster, box.Right(), 3)
	require.False(t, gamemath.Overlaps(box, components.Object.Get(e).Rect()))

	UpdateCombat(g.ecs)
	assert.Equal(t, 3, components.Health.Get(e).Current)
	assert.False(t, components.Enemy.Get(e).KnockedBack())
}

func TestSubPixelOverlapAcrossCellEdgeHits(t *testing.T) {
	t.Run("player swing", func(t *testing.T) {
		g := newTestGame(t)
		p := g.start(t)
		placeActor(p, 10.5, cfg.C.FloorY-36)
		components.Attack.Get(p).IsAttacking = true

		// Box spans x 42.5..64.5; the enemy starts just past the cell
		// boundary at 64.
		box, ok := PlayerAttackBox(p)
		require.True(t, ok)
		require.Equal(t, 64.5, box.Right())
		e := g.spawn(cfg.KindFudmonster, 64.2, 3)
		require.True(t, gamemath.Overlaps(box, components.Object.Get(e).Rect()))

		UpdateCombat(g.ecs)
		assert.Equal(t, 2, components.Health.Get(e).Current)
		assert.True(t, components.Enemy.Get(e).KnockedBack())
	})

	t.Run("enemy swing", func(t *testing.T) {
		g := newTestGame(t)
		p := g.start(t)
		placeActor(p, 64.2, cfg.C.FloorY-36)

		// Facing left the box spans x 44.5..64.5.
		e := g.spawn(cfg.KindFudmonster, 60.5, 3)
		components.Attack.Get(e).IsAttacking = true
		components.Actor.Get(e).Facing = cfg.DirectionLeft
		box, ok := EnemyAttackBox(e)
		require.True(t, ok)
		require.True(t, gamemath.Overlaps(box, components.Object.Get(p).Rect()))

		UpdateCombat(g.ecs)
		assert.Equal(t, 7, components.Health.Get(p).Current)
	})
}

func TestEnemyHitDamagesAndPushesPlayer(t *testing.T) {
	cases := []struct {
		kind   cfg.EnemyKind
		damage int
	}{
		{cfg.KindFudmonster, 1},
		{cfg.KindMiniboss, 2},
		{cfg.KindBoss, 3},
	}
	for _, c := range cases {
		t.Run(string(c.kind), func(t *testing.T) {
			g := newTestGame(t)
			p := g.start(t)
			placeActor(p, 200, cfg.C.FloorY-36)

			// Enemy right of the player, facing left: box spans x 214..234.
			e := g.spawn(c.kind, 230, 10)
			components.Attack.Get(e).IsAttacking = true
			components.Actor.Get(e).Facing = cfg.DirectionLeft

			UpdateCombat(g.ecs)

			assert.Equal(t, 8-c.damage, components.Health.Get(p).Current)
			// x -= 12 * facing with facing -1 moves the player right.
			assert.Equal(t, 212.0, components.Object.Get(p).X)
			assert.Equal(t, cfg.StatePlaying, g.game().State)
		})
	}
}

func TestPlayerPushClampedToScreen(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	placeActor(p, 5, cfg.C.FloorY-36)

	e := g.spawn(cfg.KindFudmonster, 0, 3)
	components.Attack.Get(e).IsAttacking = true
	components.Actor.Get(e).Facing = cfg.DirectionRight

	UpdateCombat(g.ecs)
	assert.Equal(t, 7, components.Health.Get(p).Current)
	assert.Equal(t, 0.0, components.Object.Get(p).X)
}

func TestPlayerDeathIsGameOverSameFrame(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	components.Health.Get(p).Current = 1

	// Boss right next to the player: it starts swinging this frame.
	g.spawn(cfg.KindBoss, 90, 18)

	g.sample()
	UpdatePlayer(g.ecs)
	UpdateEnemies(g.ecs)
	UpdateObjects(g.ecs)
	UpdateCombat(g.ecs)

	assert.Equal(t, 0, components.Health.Get(p).Current, "health is floored at zero")
	assert.Equal(t, cfg.StateGameOver, g.game().State)
	assert.Equal(t, 140, g.game().MessageTimer)

	// The rest of the frame starts the countdown.
	WithPlayingCheck(UpdateProgression)(g.ecs)
	UpdateGameState(g.ecs)
	UpdateBanner(g.ecs)
	UpdateFrame(g.ecs)
	frame := g.frame(t)
	assert.Equal(t, cfg.StateGameOver, frame.State)
	assert.Equal(t, 139, frame.MessageTimer)

	// The simulation is frozen while the game over screen is up.
	x := components.Object.Get(p).X
	g.step(5)
	assert.Equal(t, x, components.Object.Get(p).X)
	assert.Equal(t, 134, g.game().MessageTimer)
}

func TestDefeatedEnemiesAreRemoved(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	components.Attack.Get(p).IsAttacking = true

	e := g.spawn(cfg.KindFudmonster, 100, 1)
	obj := components.Object.Get(e).Object
	UpdateCombat(g.ecs)

	assert.False(t, e.Valid())
	assert.Empty(t, enemyEntries(g.ecs))
	assert.Empty(t, candidates(g.ecs, getSpace(g.ecs), gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, tags.ResolvEnemy),
		"removed enemies leave the collision space")
}

func TestDeadEnemyCannotBeHitAgain(t *testing.T) {
	g := newTestGame(t)
	p := g.start(t)
	components.Attack.Get(p).IsAttacking = true

	e := g.spawn(cfg.KindFudmonster, 100, 3)
	components.Health.Get(e).Current = 0
	resolvePlayerAttack(g.ecs, getSpace(g.ecs), p)

	assert.Equal(t, 0, components.Health.Get(e).Current)
	assert.False(t, components.Enemy.Get(e).KnockedBack())
}

package scenes

import (
	"math/rand"
	"testing"

	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrawlSceneStartsAtMenu(t *testing.T) {
	input := systems.NewScriptedSource()
	bs := NewBrawlScene(Options{Input: input, Random: rand.New(rand.NewSource(1))})

	bs.Step(10)
	frame := bs.Frame()
	require.NotNil(t, frame)
	assert.Equal(t, cfg.StateMenu, frame.State)
	assert.False(t, frame.HasPlayer)

	input.Hold(cfg.ActionConfirm)
	bs.Step(1)
	input.ReleaseAll()

	frame = bs.Frame()
	assert.Equal(t, cfg.StatePlaying, frame.State)
	assert.True(t, frame.HasPlayer)
	assert.NotEmpty(t, frame.Enemies)
}

func TestBrawlSceneSkipMenu(t *testing.T) {
	bs := NewBrawlScene(Options{
		Input:      systems.NewScriptedSource(),
		Random:     rand.New(rand.NewSource(1)),
		StartState: cfg.StatePlaying,
	})

	frame := bs.Frame()
	require.NotNil(t, frame)
	assert.Equal(t, cfg.StatePlaying, frame.State, "the snapshot is ready before the first update")
	assert.Equal(t, 60.0, frame.Player.Rect.X)
}

func TestBrawlSceneIsDeterministic(t *testing.T) {
	run := func() *components.FrameData {
		input := systems.NewScriptedSource()
		bs := NewBrawlScene(Options{
			Input:      input,
			Random:     rand.New(rand.NewSource(42)),
			StartState: cfg.StatePlaying,
		})
		input.Hold(cfg.ActionMoveRight, cfg.ActionAttack)
		bs.Step(240)
		input.ReleaseAll()
		input.Hold(cfg.ActionJump)
		bs.Step(60)
		return bs.Frame()
	}

	a, b := run(), run()
	assert.Equal(t, a.Tick, b.Tick)
	assert.Equal(t, a.State, b.State)
	assert.Equal(t, a.Player, b.Player)
	assert.Equal(t, [3]int{a.Scene, a.Stage, a.Level}, [3]int{b.Scene, b.Stage, b.Level})
	assert.ElementsMatch(t, a.Enemies, b.Enemies)
}

func TestBrawlSceneWorldsAreIndependent(t *testing.T) {
	a := NewBrawlScene(Options{Input: systems.NewScriptedSource(), StartState: cfg.StatePlaying})
	b := NewBrawlScene(Options{Input: systems.NewScriptedSource()})

	a.Step(1)
	b.Step(1)

	assert.Equal(t, cfg.StatePlaying, systems.GetGame(a.ECS()).State)
	assert.Equal(t, cfg.StateMenu, systems.GetGame(b.ECS()).State)
}

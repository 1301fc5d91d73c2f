package systems

import (
	"testing"

	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// scriptedRandom replays values in order, wrapping around at the end.
type scriptedRandom struct {
	values []float64
	next   int
	draws  int
}

func (r *scriptedRandom) Float64() float64 {
	r.draws++
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

type testGame struct {
	ecs   *ecs.ECS
	input *ScriptedSource
	rng   *scriptedRandom
}

// newTestGame builds a world wired in the same order as the brawl scene.
func newTestGame(t *testing.T, values ...float64) *testGame {
	t.Helper()
	g := &testGame{
		input: NewScriptedSource(),
		rng:   &scriptedRandom{values: values},
	}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(NewUpdateInput(g.input))
	e.AddSystem(WithPlayingCheck(UpdatePlayer))
	e.AddSystem(WithPlayingCheck(UpdateEnemies))
	e.AddSystem(WithPlayingCheck(UpdateObjects))
	e.AddSystem(WithPlayingCheck(UpdateCombat))
	e.AddSystem(WithPlayingCheck(UpdateProgression))
	e.AddSystem(UpdateGameState)
	e.AddSystem(UpdateBanner)
	e.AddSystem(UpdateFrame)
	g.ecs = e

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateGame(e, g.rng)
	return g
}

func (g *testGame) step(n int) {
	for i := 0; i < n; i++ {
		g.ecs.Update()
	}
}

// start begins a run and removes the spawned wave so tests can place
// their own enemies.
func (g *testGame) start(t *testing.T) *donburi.Entry {
	t.Helper()
	StartGame(g.ecs)
	g.clearEnemies()
	p, ok := GetPlayer(g.ecs)
	if !ok {
		t.Fatal("StartGame did not create a player")
	}
	return p
}

func (g *testGame) clearEnemies() {
	for _, e := range enemyEntries(g.ecs) {
		removeActor(g.ecs, e)
	}
}

func (g *testGame) spawn(kind cfg.EnemyKind, x float64, health int) *donburi.Entry {
	return factory.CreateEnemy(g.ecs, dmath.Vec2{X: x, Y: factory.EnemyFloorY()}, kind, health)
}

func (g *testGame) game() *components.GameData {
	return GetGame(g.ecs)
}

func (g *testGame) progression() *components.ProgressionData {
	return GetProgression(g.ecs)
}

// sample polls the scripted input into the Input singleton without running
// any other system.
func (g *testGame) sample() {
	UpdateInput(g.ecs, g.input)
}

func (g *testGame) frame(t *testing.T) *components.FrameData {
	t.Helper()
	entry, ok := components.Frame.First(g.ecs.World)
	if !ok {
		t.Fatal("no frame singleton")
	}
	return components.Frame.Get(entry)
}

func placeActor(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X, obj.Y = x, y
	obj.Update()
}

func withEdgeTriggeredDismiss(t *testing.T, on bool) {
	t.Helper()
	prev := cfg.Input.EdgeTriggeredDismiss
	cfg.Input.EdgeTriggeredDismiss = on
	t.Cleanup(func() { cfg.Input.EdgeTriggeredDismiss = prev })
}

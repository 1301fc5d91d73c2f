package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/render"
	"github.com/automoto/coop-brawl/systems"
	"github.com/automoto/coop-brawl/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a BrawlScene. Zero values pick the interactive defaults.
type Options struct {
	Input    systems.InputSource     // defaults to the keyboard
	Random   components.RandomSource // defaults to a time-seeded *rand.Rand
	Renderer *render.Renderer        // defaults to primitive shapes, no sprites

	// StartState is StateMenu or StatePlaying; Playing starts a run at once.
	StartState cfg.GameStateID
}

// BrawlScene owns one run of the game. Every frame runs the same fixed
// system order; nothing outside the scene's world holds game state.
type BrawlScene struct {
	ecs  *ecs.ECS
	opts Options
	once sync.Once
}

func NewBrawlScene(opts Options) *BrawlScene {
	return &BrawlScene{opts: opts}
}

func (bs *BrawlScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()
}

// Step advances the simulation n frames without drawing.
func (bs *BrawlScene) Step(n int) {
	for i := 0; i < n; i++ {
		bs.Update()
	}
}

func (bs *BrawlScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

// ECS returns the scene's ECS, configuring it on first use.
func (bs *BrawlScene) ECS() *ecs.ECS {
	bs.once.Do(bs.configure)
	return bs.ecs
}

func (bs *BrawlScene) World() donburi.World {
	return bs.ECS().World
}

// Frame returns the snapshot built at the end of the last update.
func (bs *BrawlScene) Frame() *components.FrameData {
	entry, ok := components.Frame.First(bs.World())
	if !ok {
		return nil
	}
	return components.Frame.Get(entry)
}

func (bs *BrawlScene) configure() {
	input := bs.opts.Input
	if input == nil {
		input = systems.NewKeyboardSource()
	}
	rng := bs.opts.Random
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	renderer := bs.opts.Renderer
	if renderer == nil {
		renderer = render.NewRenderer(nil)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.NewUpdateInput(input))

	// Simulation only runs while playing
	ecs.AddSystem(systems.WithPlayingCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateCombat))
	ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateProgression))

	// Screen flow runs every frame
	ecs.AddSystem(systems.UpdateGameState)

	// Snapshot for the renderer
	ecs.AddSystem(systems.UpdateBanner)
	ecs.AddSystem(systems.UpdateFrame)

	ecs.AddRenderer(cfg.Default, renderer.System())

	bs.ecs = ecs

	factory.CreateSpace(bs.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateGame(bs.ecs, rng)

	if bs.opts.StartState == cfg.StatePlaying {
		systems.StartGame(bs.ecs)
	}
	systems.UpdateFrame(bs.ecs)
}

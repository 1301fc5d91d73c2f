package main

import (
	"flag"
	"image"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/coop-brawl/assets"
	"github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/fonts"
	"github.com/automoto/coop-brawl/render"
	"github.com/automoto/coop-brawl/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.SettingsWatcher
}

func NewGame(opts scenes.Options, watcher *config.SettingsWatcher) *Game {
	return &Game{
		bounds:  image.Rectangle{},
		scene:   scenes.NewBrawlScene(opts),
		watcher: watcher,
	}
}

func (g *Game) Update() error {
	g.applySettingsUpdates()
	g.scene.Update()
	return nil
}

// applySettingsUpdates drains hot-reloaded settings between frames.
func (g *Game) applySettingsUpdates() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case s, ok := <-g.watcher.Updates:
			if !ok {
				g.watcher = nil
				return
			}
			s.Apply()
			setWindowSize()
			log.Printf("Settings reloaded (scale %.2f, hitboxes %t)", config.C.Scale, config.Debug.ShowHitboxes)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Warning: settings reload failed: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func setWindowSize() {
	ebiten.SetWindowSize(int(float64(config.C.Width)*config.C.Scale), int(float64(config.C.Height)*config.C.Scale))
}

func main() {
	configPath := flag.String("config", "settings.yaml", "Path to the optional YAML settings file")
	watch := flag.Bool("watch", false, "Reload the settings file when it changes")
	seed := flag.Int64("seed", 0, "Random seed for enemy waves (0 = settings file or time)")
	skipMenu := flag.Bool("skipmenu", false, "Skip the menu and start playing")
	scale := flag.Float64("scale", 0, "Window scale factor (0 = settings file or 1)")
	spriteDir := flag.String("sprites", "", "Directory holding walk_*.png player frames")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	}
	settings.Apply()

	// Flags override the settings file
	if *skipMenu {
		config.Debug.SkipMenu = true
	}
	if *scale != 0 {
		if *scale < config.MinScale || *scale > config.MaxScale {
			log.Fatalf("scale %.2f out of range [%.1f, %.1f]", *scale, config.MinScale, config.MaxScale)
		}
		config.C.Scale = *scale
	}

	runSeed := time.Now().UnixNano()
	if settings != nil && settings.Seed != nil {
		runSeed = *settings.Seed
	}
	if *seed != 0 {
		runSeed = *seed
	}
	log.Printf("Starting run with seed %d", runSeed)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var sprites *assets.SpriteSet
	if *spriteDir != "" {
		sprites, err = assets.NewSpriteLoader(os.DirFS(*spriteDir)).LoadWalkCycle("walk_*.png")
		if err != nil {
			log.Printf("Warning: Could not load sprites, using shapes: %v", err)
			sprites = nil
		}
	}

	var watcher *config.SettingsWatcher
	if *watch {
		watcher, err = config.WatchSettings(*configPath)
		if err != nil {
			log.Printf("Warning: Could not watch settings: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	opts := scenes.Options{
		Random:     rand.New(rand.NewSource(runSeed)),
		Renderer:   render.NewRenderer(sprites),
		StartState: config.StateMenu,
	}
	if config.Debug.SkipMenu {
		opts.StartState = config.StatePlaying
	}

	setWindowSize()
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(opts, watcher)); err != nil {
		log.Fatal(err)
	}
}

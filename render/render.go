package render

import (
	"image/color"
	"math"

	"github.com/automoto/coop-brawl/assets"
	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Renderer draws a FrameData snapshot. It never reads the world directly.
type Renderer struct {
	Sprites *assets.SpriteSet

	spriteOp ebiten.DrawImageOptions
}

func NewRenderer(sprites *assets.SpriteSet) *Renderer {
	return &Renderer{Sprites: sprites}
}

// System adapts the renderer to an ecs renderer reading the Frame singleton.
func (r *Renderer) System() func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		entry, ok := components.Frame.First(e.World)
		if !ok {
			return
		}
		r.Draw(screen, components.Frame.Get(entry))
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, frame *components.FrameData) {
	drawBackground(screen)

	if frame.State == cfg.StateMenu {
		drawMenu(screen)
		return
	}

	if frame.HasPlayer {
		drawHealthPips(screen, frame.Player)
	}
	drawFloor(screen)

	if frame.HasPlayer {
		r.drawPlayer(screen, frame.Player)
	}
	barY := cfg.UI.BarY
	for i := range frame.Enemies {
		enemy := &frame.Enemies[i]
		drawEnemy(screen, enemy)
		if enemy.ShowHealthBar {
			drawHealthBar(screen, enemy, cfg.UI.BarX, barY)
			barY += cfg.UI.BarSpacing
		}
	}

	drawProgressLabel(screen, frame)
	drawTransition(screen, frame)

	if cfg.Debug.ShowHitboxes {
		drawHitboxes(screen, frame)
	}
}

func drawBackground(screen *ebiten.Image) {
	w := float32(cfg.C.Width)
	h := float32(cfg.C.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, cfg.UI.SkyColor, false)

	// Distant hills
	for i := 0; i < 4; i++ {
		vector.DrawFilledCircle(screen, float32(120+i*180), h-86, 90, withAlpha(cfg.UI.HillColor, 0.35), true)
	}
	// Closer hills
	for i := 0; i < 3; i++ {
		vector.DrawFilledCircle(screen, float32(80+i*240), h-46, 60, withAlpha(cfg.UI.NearHillColor, 0.18), true)
	}
}

func drawFloor(screen *ebiten.Image) {
	floorY := float32(cfg.C.FloorY)
	vector.DrawFilledRect(screen, 0, floorY, float32(cfg.C.Width), float32(cfg.C.Height)-floorY, cfg.UI.FloorColor, false)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p components.ActorView) {
	walkFrame := 0
	if p.IsMoving {
		walkFrame = p.WalkFrame
	}

	if img := r.Sprites.Frame(p.Facing, walkFrame); img != nil {
		// Sprites are padded around the hit box
		x, y := p.Rect.X-6, p.Rect.Y-2
		w, h := p.Rect.W+12, p.Rect.H+6
		b := img.Bounds()
		r.spriteOp.GeoM.Reset()
		r.spriteOp.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		r.spriteOp.GeoM.Translate(x, y)
		screen.DrawImage(img, &r.spriteOp)
	} else {
		drawPlayerShape(screen, p)
	}

	if p.IsAttacking {
		drawSwing(screen, p, math.Pi/7, 12, cfg.UI.SwordColor)
	}
}

func drawPlayerShape(screen *ebiten.Image, p components.ActorView) {
	cx := float32(p.Rect.X + p.Rect.W/2)
	cy := float32(p.Rect.Y + p.Rect.H/2)
	vector.DrawFilledCircle(screen, cx, cy, float32(p.Rect.W/2), cfg.UI.PlayerColor, true)

	// Eyes
	vector.DrawFilledCircle(screen, cx-7, cy-4, 3, cfg.UI.OutlineColor, true)
	vector.DrawFilledCircle(screen, cx+7, cy-4, 3, cfg.UI.OutlineColor, true)

	// Bandana
	top := float32(p.Rect.Y)
	vector.StrokeLine(screen, cx, top+7, cx+11, top+2, 4, cfg.UI.BandanaColor, true)
	vector.StrokeLine(screen, cx+11, top+2, cx+8, top+11, 3, cfg.UI.BandanaColor, true)
}

func drawEnemy(screen *ebiten.Image, e *components.EnemyView) {
	cx := float32(e.Rect.X + e.Rect.W/2)
	cy := float32(e.Rect.Y + e.Rect.H/2)
	body := e.Color
	if body.A == 0 {
		body = cfg.EnemyType(e.Kind).Color
	}
	vector.DrawFilledCircle(screen, cx, cy, float32(e.Rect.W/2), body, true)

	// Eyes
	vector.DrawFilledCircle(screen, cx-6, cy-7, 3, cfg.UI.OutlineColor, true)
	vector.DrawFilledCircle(screen, cx+6, cy-7, 3, cfg.UI.OutlineColor, true)

	// Mouth
	vector.StrokeLine(screen, cx-5, cy+4, cx, cy+8, 2, cfg.UI.OutlineColor, true)
	vector.StrokeLine(screen, cx, cy+8, cx+5, cy+4, 2, cfg.UI.OutlineColor, true)

	// Only the wind-up half of the swing is drawn
	if e.IsAttacking && e.AttackFrame < 10 {
		drawSwing(screen, e.ActorView, math.Pi/6, 10, cfg.UI.EnemySwingColor)
	}
}

// drawSwing draws a 16px blade tilted down by angle, starting reach pixels
// from the actor's center on its facing side.
func drawSwing(screen *ebiten.Image, a components.ActorView, angle, reach float64, clr color.RGBA) {
	cx := a.Rect.X + a.Rect.W/2
	cy := a.Rect.Y + a.Rect.H/2
	dx := a.Facing * math.Cos(angle)
	dy := math.Sin(angle)
	x0, y0 := cx+dx*reach, cy+dy*reach
	x1, y1 := cx+dx*(reach+16), cy+dy*(reach+16)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 4, clr, true)
}

// withAlpha scales a premultiplied color by alpha.
func withAlpha(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

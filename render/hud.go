package render

import (
	"fmt"

	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawHealthPips renders one pip per max health point, filled up to the
// current health.
func drawHealthPips(screen *ebiten.Image, p components.ActorView) {
	for i := 0; i < p.MaxHealth; i++ {
		x := float32(cfg.UI.PipX + float64(i)*cfg.UI.PipSpacing)
		y := float32(cfg.UI.PipY)
		fill := cfg.UI.PipEmptyColor
		if i < p.Health {
			fill = cfg.UI.PipFullColor
		}
		vector.DrawFilledCircle(screen, x, y, float32(cfg.UI.PipRadius), fill, true)
		vector.StrokeCircle(screen, x, y, float32(cfg.UI.PipRadius), 2, cfg.UI.OutlineColor, true)
	}
}

func drawHealthBar(screen *ebiten.Image, e *components.EnemyView, x, y float64) {
	top := float32(y - 8)
	w := float32(cfg.UI.BarWidth)
	h := float32(cfg.UI.BarHeight)
	vector.DrawFilledRect(screen, float32(x), top, w, h, cfg.UI.BarBackColor, false)

	ratio := float32(0)
	if e.MaxHealth > 0 {
		ratio = float32(e.Health) / float32(e.MaxHealth)
	}
	vector.DrawFilledRect(screen, float32(x), top, w*ratio, h, e.Color, false)
	vector.StrokeRect(screen, float32(x), top, w, h, 2, cfg.White, false)
}

func drawProgressLabel(screen *ebiten.Image, frame *components.FrameData) {
	label := fmt.Sprintf("Level %d - Stage %d - Scene %d", frame.Level, frame.Stage, frame.Scene)
	drawText(screen, label, fonts.Label, int(cfg.UI.LabelX), int(cfg.UI.LabelY), withAlpha(cfg.UI.OutlineColor, cfg.UI.LabelAlpha))
}

func drawHitboxes(screen *ebiten.Image, frame *components.FrameData) {
	if frame.HasPlayer && frame.Player.HasAttackBox {
		b := frame.Player.AttackBox
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, cfg.UI.HitboxColor, false)
	}
	for i := range frame.Enemies {
		if !frame.Enemies[i].HasAttackBox {
			continue
		}
		b := frame.Enemies[i].AttackBox
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, cfg.UI.HitboxColor, false)
	}
}

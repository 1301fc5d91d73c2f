package render

import (
	"image/color"

	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

func drawMenu(screen *ebiten.Image) {
	drawCentered(screen, cfg.Menu.Title, fonts.Title, cfg.Menu.TitleY, cfg.Menu.TitleColor)
	drawCentered(screen, cfg.Menu.Subtitle, fonts.Subtitle, cfg.Menu.SubtitleY, cfg.Menu.TitleColor)
	drawCentered(screen, cfg.Menu.Controls, fonts.Label, cfg.Menu.ControlsY, cfg.Menu.HintColor)
	drawCentered(screen, cfg.Menu.StartHint, fonts.Label, cfg.Menu.StartHintY, cfg.Menu.StartColor)
}

// drawTransition renders the clear/loss banner. Only the title fades; the
// hint stays opaque.
func drawTransition(screen *ebiten.Image, frame *components.FrameData) {
	var t cfg.TransitionText
	switch frame.State {
	case cfg.StateStageClear:
		t = cfg.Transition.StageClear
	case cfg.StateLevelClear:
		t = cfg.Transition.LevelClear
	case cfg.StateGameOver:
		t = cfg.Transition.GameOver
	default:
		return
	}

	mid := float64(cfg.C.Height) / 2
	drawCentered(screen, t.Title, fonts.Banner, mid+t.TitleOffset, withAlpha(cfg.Transition.TextColor, frame.BannerAlpha))
	drawCentered(screen, t.Hint, fonts.Label, mid+t.HintOffset, cfg.Transition.TextColor)
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, y float64, clr color.Color) {
	if !fonts.Loaded(name) {
		return
	}
	face := name.Get()
	bounds := text.BoundString(face, s)
	x := (cfg.C.Width - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, int(y), clr)
}

func drawText(screen *ebiten.Image, s string, name fonts.FontName, x, y int, clr color.Color) {
	if !fonts.Loaded(name) {
		return
	}
	text.Draw(screen, s, name.Get(), x, y, clr)
}

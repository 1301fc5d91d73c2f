package systems

import (
	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBanner computes the transition title opacity, min(1, timer/fade),
// by sampling a linear tween at the remaining message time.
func UpdateBanner(ecs *ecs.ECS) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	game := GetGame(ecs)
	if game == nil {
		return
	}

	text, ok := transitionText(game.State)
	if !ok || text.FadeFrames <= 0 {
		banner.State = game.State
		banner.Fade = nil
		banner.Alpha = 1
		return
	}

	if banner.Fade == nil || banner.State != game.State {
		banner.Fade = gween.New(0, 1, float32(text.FadeFrames), ease.Linear)
		banner.State = game.State
	}

	t := game.MessageTimer
	if t > text.FadeFrames {
		t = text.FadeFrames
	}
	banner.Alpha, _ = banner.Fade.Set(float32(t))
}

func transitionText(state cfg.GameStateID) (cfg.TransitionText, bool) {
	switch state {
	case cfg.StateStageClear:
		return cfg.Transition.StageClear, true
	case cfg.StateLevelClear:
		return cfg.Transition.LevelClear, true
	case cfg.StateGameOver:
		return cfg.Transition.GameOver, true
	}
	return cfg.TransitionText{}, false
}

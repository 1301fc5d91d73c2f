package systems

import (
	"log"

	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameState runs the non-playing screens: it counts message timers
// down and handles confirm/retry once they reach zero. It runs after the
// simulation, so a timer armed this frame already counts down once and a
// dismissed screen resumes play on the next frame.
func UpdateGameState(ecs *ecs.ECS) {
	game := GetGame(ecs)
	if game == nil {
		return
	}
	input := getOrCreateInput(ecs)

	if game.State == cfg.StateMenu {
		if dismissed(input, cfg.ActionConfirm) {
			StartGame(ecs)
		}
		return
	}

	// Dismissal input is ignored while a transition message is still up.
	if game.MessageTimer > 0 {
		game.MessageTimer--
		return
	}

	switch game.State {
	case cfg.StateStageClear:
		if dismissed(input, cfg.ActionConfirm) {
			SetGameState(ecs, cfg.StatePlaying, 0)
			NextScene(ecs)
		}
	case cfg.StateLevelClear:
		if dismissed(input, cfg.ActionConfirm) {
			StartNextLevel(ecs)
		}
	case cfg.StateGameOver:
		if dismissed(input, cfg.ActionRetry) {
			StartGame(ecs)
		}
	}
}

// dismissed reports whether action should advance a transition screen. By
// default a held key counts every frame; cfg.Input.EdgeTriggeredDismiss
// restricts it to the frame the key goes down.
func dismissed(input *components.InputData, action cfg.ActionID) bool {
	state := GetAction(input, action)
	if cfg.Input.EdgeTriggeredDismiss {
		return state.JustPressed
	}
	return state.Pressed
}

// SetGameState switches the flow state and arms the message timer.
func SetGameState(ecs *ecs.ECS, state cfg.GameStateID, messageTimer int) {
	game := GetGame(ecs)
	if game == nil {
		return
	}
	if cfg.Debug.LogTransitions && game.State != state {
		if prog := GetProgression(ecs); prog != nil {
			log.Printf("game state %s -> %s (level %d, stage %d, scene %d)",
				game.State, state, prog.Level, prog.Stage, prog.Scene)
		} else {
			log.Printf("game state %s -> %s", game.State, state)
		}
	}
	game.State = state
	game.MessageTimer = messageTimer
}

// IsPlaying reports whether the simulation systems should run this frame.
func IsPlaying(ecs *ecs.ECS) bool {
	game := GetGame(ecs)
	return game != nil && game.State == cfg.StatePlaying
}

// WithPlayingCheck wraps a system so it only runs while the game is in the
// Playing state.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsPlaying(e) {
			return
		}
		system(e)
	}
}

package systems

import (
	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports whether a logical action is currently held.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
}

// KeyboardSource reads the keyboard and standard-layout gamepads through
// ebiten using cfg.Input.Bindings.
type KeyboardSource struct {
	gamepadIDs []ebiten.GamepadID
}

func NewKeyboardSource() *KeyboardSource {
	return &KeyboardSource{}
}

func (k *KeyboardSource) Pressed(action cfg.ActionID) bool {
	binding, ok := cfg.Input.Bindings[action]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}

	// Reusable slice for gamepad IDs to avoid allocations
	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])
	for _, gpID := range k.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// ScriptedSource is an InputSource driven by code. Tests and tools hold and
// release actions on it between frames.
type ScriptedSource struct {
	held map[cfg.ActionID]bool
}

func NewScriptedSource() *ScriptedSource {
	return &ScriptedSource{held: make(map[cfg.ActionID]bool)}
}

func (s *ScriptedSource) Pressed(action cfg.ActionID) bool {
	return s.held[action]
}

// Hold marks actions as held until released.
func (s *ScriptedSource) Hold(actions ...cfg.ActionID) {
	for _, a := range actions {
		s.held[a] = true
	}
}

func (s *ScriptedSource) Release(actions ...cfg.ActionID) {
	for _, a := range actions {
		delete(s.held, a)
	}
}

// ReleaseAll drops every held action.
func (s *ScriptedSource) ReleaseAll() {
	clear(s.held)
}

// NewUpdateInput returns a system that samples src into the Input singleton.
// Must run BEFORE every other system in the frame.
func NewUpdateInput(src InputSource) ecs.System {
	return func(ecs *ecs.ECS) {
		UpdateInput(ecs, src)
	}
}

// UpdateInput swaps the input buffers and polls every action from src.
func UpdateInput(ecs *ecs.ECS, src InputSource) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	if src == nil {
		return
	}
	for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
		input.Current[id] = src.Pressed(id)
	}
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

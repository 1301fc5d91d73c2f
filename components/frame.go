package components

import (
	"image/color"

	"github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ActorView is the render-facing description of one actor.
type ActorView struct {
	Rect      gamemath.Rect
	Facing    float64
	Health    int
	MaxHealth int

	IsAttacking  bool
	AttackFrame  int
	HasAttackBox bool
	AttackBox    gamemath.Rect

	IsMoving  bool
	WalkFrame int
}

// EnemyView adds the enemy-only visual data.
type EnemyView struct {
	ActorView
	Kind          config.EnemyKind
	Color         color.RGBA
	ShowHealthBar bool
}

// FrameData is rebuilt at the end of every update and is the only thing the
// renderer reads.
type FrameData struct {
	Tick         uint64
	State        config.GameStateID
	MessageTimer int
	BannerAlpha  float32 // title opacity on transition screens

	Scene int
	Stage int
	Level int

	HasPlayer bool
	Player    ActorView
	Enemies   []EnemyView
}

var Frame = donburi.NewComponentType[FrameData]()

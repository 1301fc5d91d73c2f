package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int

	// FloorY is the y coordinate actors stand on.
	FloorY float64

	// Window scale factor applied by main (1 = 640x400 window)
	Scale float64

	// Simulation ticks per second
	TPS int
}

// AttackBoxConfig describes a melee hit region relative to its owner.
// Facing right the box starts FrontInset pixels inside the owner's right edge;
// facing left it starts BackReach pixels left of the owner's x.
type AttackBoxConfig struct {
	FrontInset float64
	BackReach  float64
	OffsetY    float64
	Width      float64
	Height     float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed     float64
	JumpSpeed float64 // negative = up
	Gravity   float64

	// Combat
	Health         int
	AttackCooldown int // frames between attack starts
	AttackDuration int // attack ends once the attack frame exceeds this
	AttackBox      AttackBoxConfig

	// Spawn
	StartX float64

	// Dimensions
	Size float64

	// Walk animation
	WalkAnimSpeed int // ticks per frame
	WalkFrames    int
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name            string
	SpeedMultiplier float64
	Damage          int

	// Health = BaseHealth + HealthPerLevel*level + floor(r*RandomHealth)
	BaseHealth     int
	HealthPerLevel int
	RandomHealth   int

	// Fixed spawn x for single-enemy waves
	SpawnX float64

	// Visual
	Color         color.RGBA
	ShowHealthBar bool
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig

	// Chase behavior
	Speed              float64
	StoppingDistance   float64 // no horizontal approach within this |dx|
	VerticalThreshold  float64 // vertical adjustment only beyond this |dy|
	VerticalSpeedScale float64

	// Attack behavior
	AttackRangeX   float64
	AttackRangeY   float64
	AttackDuration int
	AttackBox      AttackBoxConfig

	// Dimensions
	Size float64

	// Walk animation
	WalkAnimSpeed int
	WalkFrames    int

	// Fudmonster waves: count = BaseCount + floor(r*CountRandom + level*CountPerLevel)
	BaseCount     int
	CountRandom   float64
	CountPerLevel float64
	SpawnMinX     float64
	SpawnRangeX   float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	PlayerDamage int // damage of one sword hit

	// Knockback applied to enemies hit by the player
	KnockbackDistance float64
	KnockbackVelocity float64
	KnockbackDecay    float64
	KnockbackCutoff   float64

	// Displacement applied to the player when an enemy hits
	PlayerPushback float64
}

// ProgressionConfig contains scene/stage/level flow configuration values
type ProgressionConfig struct {
	ScenesPerStage int
	StagesPerLevel int

	// Empty-wave grace period; the wave counts as cleared once the
	// scene timer exceeds this many frames.
	SceneClearDelay int

	// Message timers (frames) for transition screens
	StageClearTimer int
	LevelClearTimer int
	GameOverTimer   int
}

// UIConfig contains HUD layout and palette values
type UIConfig struct {
	// Player health pips
	PipX, PipY    float64
	PipSpacing    float64
	PipRadius     float64
	PipFullColor  color.RGBA
	PipEmptyColor color.RGBA

	// Boss health bars
	BarX, BarY   float64
	BarSpacing   float64
	BarWidth     float64
	BarHeight    float64
	BarBackColor color.RGBA

	// Progress label
	LabelX, LabelY float64
	LabelAlpha     float32

	// Palette
	PlayerColor     color.RGBA
	SkyColor        color.RGBA
	HillColor       color.RGBA
	NearHillColor   color.RGBA
	FloorColor      color.RGBA
	OutlineColor    color.RGBA
	SwordColor      color.RGBA
	EnemySwingColor color.RGBA
	BandanaColor    color.RGBA
	HitboxColor     color.RGBA
}

// MenuConfig contains main menu text and layout
type MenuConfig struct {
	Title      string
	Subtitle   string
	Controls   string
	StartHint  string
	TitleY     float64
	SubtitleY  float64
	ControlsY  float64
	StartHintY float64
	TitleColor color.RGBA
	HintColor  color.RGBA
	StartColor color.RGBA
}

// TransitionText describes one full-screen transition banner
type TransitionText struct {
	Title       string
	Hint        string
	FadeFrames  int // title alpha = min(1, timer/FadeFrames)
	TitleOffset float64
	HintOffset  float64
}

// TransitionConfig contains the clear/loss banners
type TransitionConfig struct {
	StageClear TransitionText
	LevelClear TransitionText
	GameOver   TransitionText
	TextColor  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu       bool // Skip menu and go directly to game
	LogTransitions bool // log.Printf every game state change
	ShowHitboxes   bool // outline attack boxes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Progression ProgressionConfig
var UI UIConfig
var Menu MenuConfig
var Transition TransitionConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 0xff, G: 0xe0, B: 0x66, A: 255}
	Coral      = color.RGBA{R: 0xe1, G: 0x70, B: 0x55, A: 255}
	Lavender   = color.RGBA{R: 0xa2, G: 0x9b, B: 0xfe, A: 255}
	Mint       = color.RGBA{R: 0x00, G: 0xb8, B: 0x94, A: 255}
	Silver     = color.RGBA{R: 0xb2, G: 0xbe, B: 0xc3, A: 255}
	Charcoal   = color.RGBA{R: 0x2d, G: 0x34, B: 0x36, A: 255}
	NearBlack  = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}
	DarkGray   = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	Pumpkin    = color.RGBA{R: 0xd3, G: 0x54, B: 0x00, A: 255}
	Cobalt     = color.RGBA{R: 0x19, G: 0x76, B: 0xd2, A: 255}
	Sky        = color.RGBA{R: 0xca, G: 0xd3, B: 0xc8, A: 255}
	Stone      = color.RGBA{R: 0xaa, G: 0xa6, B: 0x9d, A: 255}
	Slate      = color.RGBA{R: 0x22, G: 0x2f, B: 0x3e, A: 255}
	HitboxPink = color.RGBA{R: 255, G: 0, B: 255, A: 160}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 400,
		FloorY: 400 - 48,
		Scale:  1,
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:     3.5,
		JumpSpeed: -8,
		Gravity:   0.32,

		Health:         8,
		AttackCooldown: 16,
		AttackDuration: 10,
		AttackBox: AttackBoxConfig{
			FrontInset: 4,
			BackReach:  18,
			OffsetY:    8,
			Width:      22,
			Height:     20,
		},

		StartX: 60,
		Size:   36,

		WalkAnimSpeed: 6,
		WalkFrames:    5,
	}

	Enemy = EnemyConfig{
		Types: map[EnemyKind]EnemyTypeConfig{
			KindFudmonster: {
				Name:            "Fudmonster",
				SpeedMultiplier: 1,
				Damage:          1,
				BaseHealth:      2,
				HealthPerLevel:  1,
				RandomHealth:    2,
				Color:           Coral,
			},
			KindMiniboss: {
				Name:            "Miniboss",
				SpeedMultiplier: 1.15,
				Damage:          2,
				BaseHealth:      8,
				HealthPerLevel:  1,
				SpawnX:          440,
				Color:           Lavender,
				ShowHealthBar:   true,
			},
			KindBoss: {
				Name:            "Boss",
				SpeedMultiplier: 1.3,
				Damage:          3,
				BaseHealth:      16,
				HealthPerLevel:  2,
				SpawnX:          400,
				Color:           Mint,
				ShowHealthBar:   true,
			},
		},

		Speed:              1.2, // slower than the player
		StoppingDistance:   24,
		VerticalThreshold:  10,
		VerticalSpeedScale: 0.66,

		AttackRangeX:   36,
		AttackRangeY:   20,
		AttackDuration: 18,
		AttackBox: AttackBoxConfig{
			FrontInset: 8,
			BackReach:  16,
			OffsetY:    10,
			Width:      20,
			Height:     18,
		},

		Size: 32,

		WalkAnimSpeed: 8,
		WalkFrames:    4,

		BaseCount:     1,
		CountRandom:   2,
		CountPerLevel: 0.3,
		SpawnMinX:     330,
		SpawnRangeX:   180,
	}

	Combat = CombatConfig{
		PlayerDamage:      1,
		KnockbackDistance: 10,
		KnockbackVelocity: 4,
		KnockbackDecay:    0.7,
		KnockbackCutoff:   1,
		PlayerPushback:    12,
	}

	Progression = ProgressionConfig{
		ScenesPerStage:  10,
		StagesPerLevel:  10,
		SceneClearDelay: 38,
		StageClearTimer: 80,
		LevelClearTimer: 120,
		GameOverTimer:   140,
	}

	UI = UIConfig{
		PipX:          30,
		PipY:          30,
		PipSpacing:    20,
		PipRadius:     8,
		PipFullColor:  Mint,
		PipEmptyColor: Silver,

		BarX:         640 - 130,
		BarY:         26,
		BarSpacing:   22,
		BarWidth:     100,
		BarHeight:    12,
		BarBackColor: DarkGray,

		LabelX:     30,
		LabelY:     40,
		LabelAlpha: 0.12,

		PlayerColor:     Yellow,
		SkyColor:        Sky,
		HillColor:       Stone,
		NearHillColor:   Slate,
		FloorColor:      Charcoal,
		OutlineColor:    NearBlack,
		SwordColor:      Silver,
		EnemySwingColor: Pumpkin,
		BandanaColor:    Cobalt,
		HitboxColor:     HitboxPink,
	}

	Menu = MenuConfig{
		Title:      "Coop vs Fudmonsters",
		Subtitle:   "A side-scrolling beat 'em up",
		Controls:   "Arrows/WASD: Move  |  Z/Up: Jump  |  X/Space: Attack",
		StartHint:  "Space: Start",
		TitleY:     108,
		SubtitleY:  146,
		ControlsY:  205,
		StartHintY: 235,
		TitleColor: White,
		HintColor:  Coral,
		StartColor: Mint,
	}

	Transition = TransitionConfig{
		StageClear: TransitionText{
			Title:       "Stage Cleared!",
			Hint:        "Press [Space] to continue",
			FadeFrames:  40,
			TitleOffset: -18,
			HintOffset:  18,
		},
		LevelClear: TransitionText{
			Title:       "Level Completed!",
			Hint:        "Press [Space] for Next Level",
			FadeFrames:  40,
			TitleOffset: -16,
			HintOffset:  18,
		},
		GameOver: TransitionText{
			Title:       "GAME OVER",
			Hint:        "Press [R] to Retry",
			FadeFrames:  60,
			TitleOffset: -10,
			HintOffset:  20,
		},
		TextColor: White,
	}

	// Debug Config (defaults, can be overridden by CLI flags or the settings file)
	Debug = DebugConfig{
		SkipMenu:       false,
		LogTransitions: false,
		ShowHitboxes:   false,
	}
}

// EnemyType returns the configuration for kind, falling back to fudmonster
// for unknown kinds.
func EnemyType(kind EnemyKind) EnemyTypeConfig {
	if t, ok := Enemy.Types[kind]; ok {
		return t
	}
	return Enemy.Types[KindFudmonster]
}

package systems

import (
	"math"

	"github.com/automoto/coop-brawl/components"
	cfg "github.com/automoto/coop-brawl/config"
	"github.com/automoto/coop-brawl/systems/factory"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// StartGame begins a fresh run at level 1, stage 1, scene 1.
func StartGame(ecs *ecs.ECS) {
	prog := GetProgression(ecs)
	if prog == nil {
		return
	}
	SetGameState(ecs, cfg.StatePlaying, 0)
	prog.Scene, prog.Stage, prog.Level = 1, 1, 1
	prog.SceneTimer = 0

	respawnPlayer(ecs)
	SpawnEnemies(ecs)
}

// StartNextLevel moves to the next level with a brand-new player.
func StartNextLevel(ecs *ecs.ECS) {
	prog := GetProgression(ecs)
	if prog == nil {
		return
	}
	SetGameState(ecs, cfg.StatePlaying, 0)
	prog.Scene, prog.Stage = 1, 1
	prog.Level++
	prog.SceneTimer = 0

	respawnPlayer(ecs)
	SpawnEnemies(ecs)
}

// NextScene advances one scene, rolling scenes into stages and stages into
// levels, puts the player back at the start and spawns the next wave.
func NextScene(ecs *ecs.ECS) {
	prog := GetProgression(ecs)
	if prog == nil {
		return
	}
	prog.Scene++
	if prog.Scene > cfg.Progression.ScenesPerStage {
		prog.Scene = 1
		prog.Stage++
		if prog.Stage > cfg.Progression.StagesPerLevel {
			prog.Stage = 1
			prog.Level++
		}
	}
	prog.SceneTimer = 0

	if playerEntry, ok := GetPlayer(ecs); ok {
		start := factory.PlayerStart()
		obj := components.Object.Get(playerEntry)
		obj.X, obj.Y = start.X, start.Y
		obj.Update()
	} else {
		respawnPlayer(ecs)
	}
	SpawnEnemies(ecs)
}

// SpawnEnemies replaces the current wave with the one for the current
// scene: the boss on the last scene of the last stage, a miniboss on the
// last scene of other stages, fudmonsters everywhere else.
func SpawnEnemies(ecs *ecs.ECS) {
	prog := GetProgression(ecs)
	if prog == nil {
		return
	}
	for _, e := range enemyEntries(ecs) {
		removeActor(ecs, e)
	}

	y := factory.EnemyFloorY()
	lastScene := prog.Scene == cfg.Progression.ScenesPerStage
	lastStage := prog.Stage == cfg.Progression.StagesPerLevel

	switch {
	case lastScene && lastStage:
		spawnFixed(ecs, cfg.KindBoss, y, prog.Level)
	case lastScene:
		spawnFixed(ecs, cfg.KindMiniboss, y, prog.Level)
	default:
		spawnWave(ecs, y, prog.Level)
	}
}

func spawnFixed(ecs *ecs.ECS, kind cfg.EnemyKind, y float64, level int) {
	t := cfg.EnemyType(kind)
	health := t.BaseHealth + t.HealthPerLevel*level
	factory.CreateEnemy(ecs, dmath.Vec2{X: t.SpawnX, Y: y}, kind, health)
}

// spawnWave draws the wave size first, then x and health for each enemy in
// turn.
func spawnWave(ecs *ecs.ECS, y float64, level int) {
	rng := getRandom(ecs)
	t := cfg.EnemyType(cfg.KindFudmonster)

	count := cfg.Enemy.BaseCount + int(math.Floor(rng.Float64()*cfg.Enemy.CountRandom+float64(level)*cfg.Enemy.CountPerLevel))
	for i := 0; i < count; i++ {
		x := cfg.Enemy.SpawnMinX + rng.Float64()*cfg.Enemy.SpawnRangeX
		health := t.BaseHealth + t.HealthPerLevel*level + int(math.Floor(rng.Float64()*float64(t.RandomHealth)))
		factory.CreateEnemy(ecs, dmath.Vec2{X: x, Y: y}, cfg.KindFudmonster, health)
	}
}

// UpdateProgression advances the run once the wave has been empty for
// longer than the scene clear delay.
func UpdateProgression(ecs *ecs.ECS) {
	prog := GetProgression(ecs)
	if prog == nil {
		return
	}
	if len(enemyEntries(ecs)) > 0 {
		return
	}

	prog.SceneTimer++
	if prog.SceneTimer <= cfg.Progression.SceneClearDelay {
		return
	}
	prog.SceneTimer = 0

	lastScene := prog.Scene == cfg.Progression.ScenesPerStage
	lastStage := prog.Stage == cfg.Progression.StagesPerLevel
	switch {
	case lastScene && lastStage:
		SetGameState(ecs, cfg.StateLevelClear, cfg.Progression.LevelClearTimer)
	case lastScene:
		SetGameState(ecs, cfg.StateStageClear, cfg.Progression.StageClearTimer)
	default:
		NextScene(ecs)
	}
}

func respawnPlayer(ecs *ecs.ECS) {
	if playerEntry, ok := GetPlayer(ecs); ok {
		removeActor(ecs, playerEntry)
	}
	factory.CreatePlayer(ecs, factory.PlayerStart())
}

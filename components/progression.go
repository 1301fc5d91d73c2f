package components

import "github.com/yohamta/donburi"

// ProgressionData holds the scene/stage/level counters of a run.
type ProgressionData struct {
	Scene int // 1..ScenesPerStage
	Stage int // 1..StagesPerLevel
	Level int // 1..

	// SceneTimer counts frames spent with no enemies left.
	SceneTimer int
}

var Progression = donburi.NewComponentType[ProgressionData]()

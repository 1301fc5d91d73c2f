package components

import (
	"github.com/automoto/coop-brawl/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData fades the transition title out as the message timer runs down.
type BannerData struct {
	State config.GameStateID // state the fade was built for
	Fade  *gween.Tween
	Alpha float32
}

var Banner = donburi.NewComponentType[BannerData]()

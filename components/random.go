package components

import "github.com/yohamta/donburi"

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type RandomData struct {
	Source RandomSource
}

var Random = donburi.NewComponentType[RandomData]()

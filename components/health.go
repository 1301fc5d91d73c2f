package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Defeated reports whether the actor has run out of health.
func (h *HealthData) Defeated() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()

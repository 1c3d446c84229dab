package mathbreak

import (
	"github.com/vovakirdan/mathbreak/internal/config"
	"github.com/vovakirdan/mathbreak/internal/core"
)

// PowerUpManager handles power-up spawning, falling and collection.
type PowerUpManager struct {
	Config   config.PowerUpConfig
	PowerUps []*PowerUp // Active falling power-ups
	rng      *core.RNG  // Shared session RNG
}

// NewPowerUpManager creates a power-up manager drawing from rng.
func NewPowerUpManager(cfg config.PowerUpConfig, rng *core.RNG) *PowerUpManager {
	return &PowerUpManager{
		Config:   cfg,
		PowerUps: make([]*PowerUp, 0),
		rng:      rng,
	}
}

// TrySpawn rolls the spawn chance and, on success, drops a power-up centered
// on (cx, cy). Returns true if a power-up was spawned.
func (pm *PowerUpManager) TrySpawn(cx, cy int) bool {
	// Roll for spawn chance
	if pm.rng.Intn(100) >= pm.Config.SpawnChance {
		return false
	}

	size := pm.Config.Size
	pm.PowerUps = append(pm.PowerUps, &PowerUp{
		Rect: core.NewRect(cx-size/2, cy-size/2, size, size),
		VY:   pm.Config.FallSpeed,
	})
	return true
}

// Update moves all power-ups and drops the ones that left the field.
func (pm *PowerUpManager) Update(fieldH int) {
	active := pm.PowerUps[:0]
	for _, p := range pm.PowerUps {
		p.Move()
		if p.Y < fieldH {
			active = append(active, p)
		}
	}
	clear(pm.PowerUps[len(active):])
	pm.PowerUps = active
}

// Collect removes every power-up touching the paddle and returns how many
// were collected.
func (pm *PowerUpManager) Collect(paddle core.Rect) int {
	collected := 0
	active := pm.PowerUps[:0]
	for _, p := range pm.PowerUps {
		if p.Touches(paddle) {
			collected++
			continue
		}
		active = append(active, p)
	}
	clear(pm.PowerUps[len(active):])
	pm.PowerUps = active
	return collected
}

// Clear removes all falling power-ups.
func (pm *PowerUpManager) Clear() {
	clear(pm.PowerUps)
	pm.PowerUps = pm.PowerUps[:0]
}

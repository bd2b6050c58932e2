package battle

import (
	"sync"

	"github.com/velrin/bestiago/internal/data"
)

// UsageTracker counts technique uses per creature for one battle. Techniques
// with a use cap are checked against it; unlimited techniques always pass.
type UsageTracker struct {
	mu     sync.Mutex
	counts map[string]map[string]int32 // creatureID -> techniqueID -> uses
}

// NewUsageTracker returns an empty tracker for a fresh battle.
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{counts: make(map[string]map[string]int32)}
}

// Used returns how many times the creature has used the technique this
// battle.
func (u *UsageTracker) Used(creatureID, techniqueID string) int32 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.counts[creatureID][techniqueID]
}

// CanUse reports whether the creature has uses left for the technique.
func (u *UsageTracker) CanUse(creatureID string, t *data.TechniqueTemplate) bool {
	if t.Unlimited() {
		return true
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.counts[creatureID][t.ID] < t.UsesPerBattle
}

// Consume records one use.
func (u *UsageTracker) Consume(creatureID, techniqueID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	m := u.counts[creatureID]
	if m == nil {
		m = make(map[string]int32)
		u.counts[creatureID] = m
	}
	m[techniqueID]++
}

// Reset clears all counters, for battle restarts.
func (u *UsageTracker) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.counts = make(map[string]map[string]int32)
}

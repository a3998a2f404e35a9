package memory

import (
	"fmt"
	"sync"

	"github.com/gdscore/graphstore/pkg/gdserrors"
)

// Tracker is a per-user, per-task memory reservation tracker. It is the
// process-wide collaborator spec.md §4.C describes: every user's named
// entities (graphs, running tasks) reserve and release byte counts against
// both their own total and a shared process-wide budget.
//
// Modeled as a single synchronized struct rather than a goroutine-per-user
// actor, matching the teacher's own style for shared mutable registries
// (e.g. pkg/storage's SchemaManager, pkg/cache's query cache) — a mutex
// guarding plain Go maps.
type Tracker struct {
	mu           sync.Mutex
	limitBytes   int64
	usedBytes    int64
	perUser      map[string]map[string]int64 // user -> entity name -> bytes
}

// NewTracker returns a Tracker with the given process-wide byte budget. A
// limit of 0 means unbounded.
func NewTracker(limitBytes int64) *Tracker {
	return &Tracker{
		limitBytes: limitBytes,
		perUser:    make(map[string]map[string]int64),
	}
}

// Reserve attempts to reserve bytes for (user, entity). It fails with
// gdserrors.ErrMemoryReservationExceeded if the process-wide budget would be
// exceeded; in that case no state is mutated.
func (t *Tracker) Reserve(user, entity string, bytes int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.limitBytes > 0 && t.usedBytes+bytes > t.limitBytes {
		return fmt.Errorf("%w: required %d bytes, %d available",
			gdserrors.ErrMemoryReservationExceeded, bytes, t.limitBytes-t.usedBytes)
	}

	entities, ok := t.perUser[user]
	if !ok {
		entities = make(map[string]int64)
		t.perUser[user] = entities
	}
	entities[entity] += bytes
	t.usedBytes += bytes
	return nil
}

// Release gives back a previously reserved amount for (user, entity).
func (t *Tracker) Release(user, entity string, bytes int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if entities, ok := t.perUser[user]; ok {
		entities[entity] -= bytes
		if entities[entity] <= 0 {
			delete(entities, entity)
		}
		if len(entities) == 0 {
			delete(t.perUser, user)
		}
	}
	t.usedBytes -= bytes
	if t.usedBytes < 0 {
		t.usedBytes = 0
	}
}

// UsedByUser returns the total bytes currently reserved across all of a
// user's entities.
func (t *Tracker) UsedByUser(user string) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total int64
	for _, bytes := range t.perUser[user] {
		total += bytes
	}
	return total
}

// TotalUsed returns the process-wide total currently reserved.
func (t *Tracker) TotalUsed() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.usedBytes
}

// Available returns how many bytes remain before the process-wide budget is
// exhausted. Returns -1 when the tracker is unbounded.
func (t *Tracker) Available() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.limitBytes <= 0 {
		return -1
	}
	return t.limitBytes - t.usedBytes
}

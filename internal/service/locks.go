package service

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// GroupLocks serializes roster and queue mutations per rotation group within
// this process. Row-level locks in Postgres serialize across processes; this
// keeps a single instance from interleaving read-modify-write cycles on the
// same group and gives bulk calls a deterministic acquisition order. One
// registry is shared by every service that mutates group state, so an
// assignment, a roster change and a reconciliation on the same group exclude
// each other.
type GroupLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewGroupLocks creates an empty lock registry
func NewGroupLocks() *GroupLocks {
	return &GroupLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (g *GroupLocks) get(groupID uuid.UUID) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()
	lock, ok := g.locks[groupID]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[groupID] = lock
	}
	return lock
}

// Lock acquires the lock for one group
func (g *GroupLocks) Lock(groupID uuid.UUID) {
	g.get(groupID).Lock()
}

// Unlock releases the lock for one group
func (g *GroupLocks) Unlock(groupID uuid.UUID) {
	g.get(groupID).Unlock()
}

// LockAll acquires locks for a set of groups in sorted order, so concurrent
// bulk calls touching overlapping group sets cannot deadlock. It returns the
// ids in acquisition order for the matching UnlockAll call.
func (g *GroupLocks) LockAll(groupIDs []uuid.UUID) []uuid.UUID {
	ordered := make([]uuid.UUID, 0, len(groupIDs))
	seen := make(map[uuid.UUID]bool, len(groupIDs))
	for _, id := range groupIDs {
		if !seen[id] {
			seen[id] = true
			ordered = append(ordered, id)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].String() < ordered[j].String()
	})
	for _, id := range ordered {
		g.Lock(id)
	}
	return ordered
}

// UnlockAll releases locks acquired by LockAll, in reverse order
func (g *GroupLocks) UnlockAll(ordered []uuid.UUID) {
	for i := len(ordered) - 1; i >= 0; i-- {
		g.Unlock(ordered[i])
	}
}

package service

import "sync"

// All mutations against one project must be serialized: a stat-definition
// edit reads and rewrites every entity's cached stats, so a concurrent
// attribute edit on the same project would race with that sweep. One mutex
// per project is enough; per-entity locking buys nothing when a single
// definition edit already touches every entity.
var projectLocks = struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}{m: make(map[string]*sync.Mutex)}

// lockProject acquires the exclusive scope for a project and returns the
// release function. Callers must defer the release so the scope is freed on
// every exit path, success or failure.
func lockProject(publicID string) func() {
	projectLocks.mu.Lock()
	l, ok := projectLocks.m[publicID]
	if !ok {
		l = &sync.Mutex{}
		projectLocks.m[publicID] = l
	}
	projectLocks.mu.Unlock()

	l.Lock()
	return l.Unlock
}

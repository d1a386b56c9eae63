package thread

import "time"

// Observer receives lifecycle notifications from a Spawner. Implementations
// must be safe for concurrent use: exit notifications arrive from the
// spawned threads themselves.
type Observer interface {
	// ThreadSpawned is called after a thread has started and its identity
	// is known, before Spawn returns.
	ThreadSpawned(id ID)

	// ThreadSpawnFailed is called when the spawner refuses to start a
	// thread.
	ThreadSpawnFailed(err error)

	// ThreadExited is called on the exiting thread after its function has
	// returned, with the thread's total lifetime.
	ThreadExited(id ID, lifetime time.Duration)

	// ThreadJoined is called after a successful Join, with the time the
	// joining caller spent blocked.
	ThreadJoined(id ID, wait time.Duration)

	// ThreadDetached is called after a successful Detach.
	ThreadDetached(id ID)
}

// NopObserver is an Observer that ignores all notifications.
type NopObserver struct{}

func (NopObserver) ThreadSpawned(ID)               {}
func (NopObserver) ThreadSpawnFailed(error)        {}
func (NopObserver) ThreadExited(ID, time.Duration) {}
func (NopObserver) ThreadJoined(ID, time.Duration) {}
func (NopObserver) ThreadDetached(ID)              {}

package thread

import (
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// record is the closure record allocated for every spawned thread. The
// trampoline owns it exclusively while the function runs; afterwards it is
// only reached through the owning handle by the reaping Join or Detach, the
// same way pthread_join reaches thread state through the native id.
type record struct {
	fn      func()
	started chan ID       // carries the new thread's identity back to Spawn
	done    chan struct{} // closed once fn has returned
	reaped  chan struct{} // closed by Join or Detach, releasing the parked thread
	born    time.Time

	obs Observer
	log *zap.Logger
}

// Spawner starts threads and carries the policy applied to them: an optional
// creation budget, a logger, and a lifecycle Observer. A Spawner is safe for
// concurrent use.
type Spawner struct {
	budget *semaphore.Weighted
	log    *zap.Logger
	obs    Observer
}

// Option configures a Spawner.
type Option func(*Spawner)

// WithLimit caps the number of concurrently live threads the spawner will
// start. Spawn fails with a CreationError wrapping ErrThreadLimit once the
// budget is exhausted; a slot is freed when a thread exits and is reaped.
// A limit <= 0 means unlimited.
func WithLimit(n int64) Option {
	return func(s *Spawner) {
		if n > 0 {
			s.budget = semaphore.NewWeighted(n)
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(log *zap.Logger) Option {
	return func(s *Spawner) {
		if log != nil {
			s.log = log
		}
	}
}

// WithObserver sets the Observer notified of lifecycle events.
func WithObserver(obs Observer) Option {
	return func(s *Spawner) {
		if obs != nil {
			s.obs = obs
		}
	}
}

// NewSpawner creates a Spawner. Without options it is unlimited, silent and
// unobserved.
func NewSpawner(opts ...Option) *Spawner {
	s := &Spawner{
		log: zap.NewNop(),
		obs: NopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSpawner = NewSpawner()

// Spawn starts fn on the default spawner. See Spawner.Spawn.
func Spawn(fn func()) (*Thread, error) {
	return defaultSpawner.Spawn(fn)
}

// Spawn starts fn on a fresh OS thread and returns an owning handle to it.
//
// fn and everything it captures are held in a record that outlives this
// call; the new thread invokes fn, drops the record's reference to it, and
// terminates naturally once reaped. No result or panic channel exists: a
// panic inside fn crashes the process.
//
// On failure no thread is started, nothing is retained, and a *CreationError
// is returned; the would-be handle simply does not exist. From the moment
// the new thread starts it races with the caller, since Spawn implies no
// synchronization beyond the creation itself.
func (s *Spawner) Spawn(fn func()) (*Thread, error) {
	if fn == nil {
		err := &CreationError{Err: ErrNilFunc}
		s.obs.ThreadSpawnFailed(err)
		return nil, err
	}
	if s.budget != nil && !s.budget.TryAcquire(1) {
		err := &CreationError{Err: ErrThreadLimit}
		s.obs.ThreadSpawnFailed(err)
		s.log.Warn("thread creation refused", zap.Error(err))
		return nil, err
	}

	rec := &record{
		fn:      fn,
		started: make(chan ID, 1),
		done:    make(chan struct{}),
		reaped:  make(chan struct{}),
		obs:     s.obs,
		log:     s.log,
	}
	go s.trampoline(rec)

	id := <-rec.started
	t := &Thread{id: id, rec: rec}
	runtime.SetFinalizer(t, finalize)
	s.obs.ThreadSpawned(id)
	s.log.Debug("thread spawned", zap.Uint64("tid", id.Native()))
	return t, nil
}

// trampoline is the start routine every spawned thread runs. It pins itself
// to a dedicated OS thread, publishes its identity, invokes the captured
// function, and then parks until it is reaped so the kernel cannot recycle
// its tid while a handle still names it. The goroutine never unlocks the
// thread: when it returns, the runtime destroys the thread instead of
// reusing it.
func (s *Spawner) trampoline(rec *record) {
	runtime.LockOSThread()

	id := Current()
	rec.born = time.Now()
	rec.started <- id

	rec.fn()
	rec.fn = nil
	lifetime := time.Since(rec.born)

	close(rec.done)
	<-rec.reaped

	rec.obs.ThreadExited(id, lifetime)
	rec.log.Debug("thread exited",
		zap.Uint64("tid", id.Native()),
		zap.Duration("lifetime", lifetime),
	)
	if s.budget != nil {
		s.budget.Release(1)
	}
}

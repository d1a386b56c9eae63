package thread

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// noCopy makes `go vet` reject value copies of types that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Thread is a move-only handle owning zero or one thread of execution.
//
// The zero value is an empty handle. A handle is owning exactly when its ID
// is non-zero; an owning handle must be joined, detached or moved from
// before it becomes unreachable, otherwise the process aborts.
//
// Handles must not be copied (pass *Thread) and must not be operated on
// concurrently: calling Join, Detach or MoveTo on the same handle from
// multiple goroutines is a data race.
type Thread struct {
	noCopy noCopy

	id ID

	// rec is the owned thread's closure record, the native resource behind
	// the identity. Set together with id at spawn, transferred on moves,
	// and cleared when the handle empties. The pointer also keeps the
	// handle out of the runtime's tiny allocator, where objects share
	// blocks with unrelated allocations and the abandonment finalizer
	// could be kept from ever running.
	rec *record
}

// ID returns the identity of the owned thread, or the zero ID if the handle
// is empty.
func (t *Thread) ID() ID {
	return t.id
}

// Joinable reports whether the handle owns a thread. A thread that has
// finished running but has not been joined yet is still owned, so the handle
// remains joinable until Join, Detach or a move empties it.
func (t *Thread) Joinable() bool {
	return !t.id.IsZero()
}

// Join blocks until the owned thread finishes, then empties the handle. The
// thread's termination happens-before Join returns, so everything it wrote
// is visible to the caller afterwards.
//
// Join returns ErrNotJoinable if the handle does not own a thread.
func (t *Thread) Join() error {
	if !t.Joinable() || t.rec == nil {
		return ErrNotJoinable
	}
	rec := t.rec
	start := time.Now()
	<-rec.done
	close(rec.reaped)
	wait := time.Since(start)
	rec.obs.ThreadJoined(t.id, wait)
	rec.log.Debug("thread joined",
		zap.Uint64("tid", t.id.Native()),
		zap.Duration("wait", wait),
	)
	t.id = ID{}
	t.rec = nil
	return nil
}

// Detach relinquishes join-responsibility and empties the handle
// immediately, without waiting for the thread to finish. The thread keeps
// running; its record is reclaimed when it exits naturally.
//
// Detach returns ErrNotJoinable if the handle does not own a thread.
func (t *Thread) Detach() error {
	if !t.Joinable() || t.rec == nil {
		return ErrNotJoinable
	}
	rec := t.rec
	close(rec.reaped)
	rec.obs.ThreadDetached(t.id)
	rec.log.Debug("thread detached", zap.Uint64("tid", t.id.Native()))
	t.id = ID{}
	t.rec = nil
	return nil
}

// MoveTo transfers ownership from t to dst, leaving t empty. After the call
// dst.ID() equals t's previous identity.
//
// If dst currently owns a thread, MoveTo panics: silently abandoning a live
// thread is forbidden, and neither auto-join (unbounded blocking hidden in
// an assignment) nor auto-detach (an ownership change the caller never
// asked for) is an acceptable substitute.
func (t *Thread) MoveTo(dst *Thread) {
	if dst.Joinable() {
		panic("thread: move onto a handle that still owns a thread (tid " + dst.id.String() + ")")
	}
	dst.id = t.id
	dst.rec = t.rec
	t.id = ID{}
	t.rec = nil
	if dst.Joinable() {
		runtime.SetFinalizer(dst, finalize)
	}
}

// Move transfers ownership into a freshly allocated handle, leaving t empty.
func (t *Thread) Move() *Thread {
	dst := new(Thread)
	t.MoveTo(dst)
	return dst
}

// finalize runs when a handle becomes unreachable. An owning handle at that
// point means some code path dropped a live thread without joining or
// detaching it; the unrecovered panic on the finalizer goroutine aborts the
// whole process.
func finalize(t *Thread) {
	if t.Joinable() {
		panic("thread: owning handle became unreachable without Join or Detach (tid " + t.id.String() + ")")
	}
}

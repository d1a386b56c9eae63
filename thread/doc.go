/*
Package thread provides a move-only handle over a dedicated OS thread.

# Overview

A Thread owns at most one live thread of execution. Constructing a handle
through a Spawner pins a goroutine to a fresh OS thread and runs the given
function on it; the handle captures the thread's native identity and is then
responsible for exactly one of Join or Detach before it goes out of scope.

# Ownership discipline

The package performs no internal locking of handles. Safety comes from the
ownership rules instead:

  - A handle is either empty or owning; ownership is represented exactly by
    a non-zero ID.
  - Join and Detach transition an owning handle to empty. Moving does too.
  - A handle that becomes unreachable while still owning aborts the process.
    Leaking a live thread is a programming error, not a recoverable state.
  - Handles are never shared: concurrent Join, Detach or MoveTo calls on the
    same handle are a data race the caller must not create.

# Identity

ID is a plain value identifying a live thread, usable as a map key and
comparable for equality and ordering. The zero ID is the sentinel meaning
"no thread". Identity values may be reused by the kernel once a thread has
terminated and been reaped, so equality does not imply the referent still
exists.

# Usage

	t, err := thread.Spawn(func() {
		// runs on its own OS thread
	})
	if err != nil {
		return err
	}
	defer t.Join()

This package is Linux-specific: identities are kernel thread ids as reported
by gettid(2).
*/
package thread

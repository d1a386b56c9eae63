package thread

import (
	"errors"
	"fmt"
)

var (
	// ErrNotJoinable is returned by Join and Detach when the handle does not
	// own a thread.
	ErrNotJoinable = errors.New("thread: handle does not own a thread")

	// ErrThreadLimit is the cause carried by a CreationError when the
	// spawner's thread budget is exhausted.
	ErrThreadLimit = errors.New("thread: thread limit reached")

	// ErrNilFunc is the cause carried by a CreationError when Spawn is given
	// a nil function.
	ErrNilFunc = errors.New("thread: nil function")
)

// CreationError reports that the spawner refused to start a thread. No
// thread runs and no resources are retained when it is returned; the handle
// that would have been produced does not exist. Retrying is the caller's
// decision.
type CreationError struct {
	Err error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("thread: create: %v", e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

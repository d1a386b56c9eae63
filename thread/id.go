package thread

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sys/unix"
)

// ID is a lightweight, freely copyable value identifying a thread of
// execution. It is designed for use as a key in associative containers,
// both ordered (Less) and unordered (Hash, or directly as a map key).
//
// The zero ID is the sentinel value that does not represent any thread.
// Once a thread has finished and been reaped, its ID may be reused by the
// kernel for another thread.
type ID struct {
	tid uint64
}

// Current returns the identity of the OS thread the caller is running on.
func Current() ID {
	return ID{tid: uint64(unix.Gettid())}
}

// Equal reports whether both identities refer to the same thread. Use this
// (or direct ==, which is equivalent for this representation) rather than
// comparing Native values obtained at different times.
func (id ID) Equal(other ID) bool {
	return id.tid == other.tid
}

// Less defines a total order over identities for ordered-container
// placement. The order carries no meaning beyond that; in particular it does
// not reflect creation order.
func (id ID) Less(other ID) bool {
	return id.tid < other.tid
}

// Hash returns a hash of the identity, stable for the lifetime of the value.
func (id ID) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], id.tid)
	return xxhash.Sum64(buf[:])
}

// IsZero reports whether id is the sentinel "no thread" identity.
func (id ID) IsZero() bool {
	return id.tid == 0
}

// Native returns the underlying kernel thread id. It is zero for the
// sentinel identity.
func (id ID) Native() uint64 {
	return id.tid
}

// String renders the identity for logs and debugging.
func (id ID) String() string {
	if id.IsZero() {
		return "id of a non-executing thread"
	}
	return strconv.FormatUint(id.tid, 10)
}

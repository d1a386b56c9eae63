package thread

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAbandonedHandleAborts re-executes the test binary and leaks an owning
// handle there, asserting that the child process aborts instead of exiting
// cleanly.
func TestAbandonedHandleAborts(t *testing.T) {
	if os.Getenv("THREADAPI_CRASH_TEST") == "1" {
		leakOwningHandle()
		// Reaching this line means the finalizer never fired; the marker
		// tells the parent the leak itself succeeded.
		fmt.Fprintln(os.Stderr, "leaked handle survived collection")
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestAbandonedHandleAborts$")
	cmd.Env = append(os.Environ(), "THREADAPI_CRASH_TEST=1")
	out, err := cmd.CombinedOutput()

	require.Error(t, err, "abandoning an owning handle must abort the process, got clean exit with output:\n%s", out)
	assert.Contains(t, string(out), "owning handle became unreachable")
}

// leakOwningHandle drops the only reference to an owning handle and churns
// the collector until the finalizer has had every chance to run.
func leakOwningHandle() {
	if _, err := Spawn(func() {}); err != nil {
		os.Exit(2)
	}

	for i := 0; i < 100; i++ {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
}

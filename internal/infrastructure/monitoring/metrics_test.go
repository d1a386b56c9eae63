package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tateev/threadapi/thread"
)

func TestObserverRecordsLifecycle(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	id := thread.Current()

	m.ThreadSpawned(id)
	m.ThreadSpawned(id)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SpawnsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ThreadsActive))

	m.ThreadExited(id, 5*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ThreadsActive))

	m.ThreadJoined(id, time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JoinsTotal))

	m.ThreadDetached(id)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DetachesTotal))

	m.ThreadSpawnFailed(errors.New("refused"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SpawnFailures))
}

func TestMetricsWiredIntoSpawner(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	s := thread.NewSpawner(thread.WithObserver(m))

	th, err := s.Spawn(func() {})
	require.NoError(t, err)
	require.NoError(t, th.Join())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SpawnsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JoinsTotal))

	// The exit notification arrives from the reaped thread itself, shortly
	// after Join returns.
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.ThreadsActive) == 0.0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestLimitRefusalCounted(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	s := thread.NewSpawner(thread.WithLimit(1), thread.WithObserver(m))

	release := make(chan struct{})
	th, err := s.Spawn(func() { <-release })
	require.NoError(t, err)

	_, err = s.Spawn(func() {})
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SpawnFailures))

	close(release)
	require.NoError(t, th.Join())
}

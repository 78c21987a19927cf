package socket

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunStatsTickerSkipsWithoutClients(t *testing.T) {
	hub := NewHub()
	stop := make(chan struct{})

	var builds atomic.Int32
	done := make(chan struct{})
	go func() {
		hub.RunStatsTicker(5*time.Millisecond, func(now time.Time) ([]byte, error) {
			builds.Add(1)
			return []byte("{}"), nil
		}, stop)
		close(done)
	}()

	// No clients are connected, so no tick should build a payload.
	time.Sleep(50 * time.Millisecond)
	close(stop)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not stop")
	}
	require.Zero(t, builds.Load())
}

func TestRunStatsTickerClampsNonPositiveInterval(t *testing.T) {
	hub := NewHub()

	// A zero or negative interval must not panic the ticker goroutine; it
	// falls back to the default cadence.
	for _, interval := range []time.Duration{0, -time.Second} {
		stop := make(chan struct{})
		done := make(chan struct{})
		go func() {
			hub.RunStatsTicker(interval, func(now time.Time) ([]byte, error) {
				return []byte("{}"), nil
			}, stop)
			close(done)
		}()

		close(stop)
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("ticker with interval %v did not stop", interval)
		}
	}
}

func TestHubClientCount(t *testing.T) {
	hub := NewHub()
	require.Zero(t, hub.ClientCount())

	hub.Register("conn-1", "viewer@logicore.example", nil)
	hub.Register("conn-2", "viewer@logicore.example", nil)
	require.Equal(t, 2, hub.ClientCount())

	hub.Unregister("conn-1")
	require.Equal(t, 1, hub.ClientCount())

	// Unregistering an unknown connection is a no-op.
	hub.Unregister("conn-9")
	require.Equal(t, 1, hub.ClientCount())
}

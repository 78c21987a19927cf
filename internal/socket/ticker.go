package socket

import (
	"time"

	"github.com/sirupsen/logrus"
)

// RunStatsTicker recomputes the dashboard payload at a fixed interval and
// broadcasts it to every connected client. This is the "minute tick" that
// keeps relative-age labels and aggregates fresh without client polling.
// Each tick is independent and idempotent; build errors skip the tick rather
// than stop the loop. Closing stop ends the loop.
func (h *Hub) RunStatsTicker(interval time.Duration, build func(now time.Time) ([]byte, error), stop <-chan struct{}) {
	// A non-positive interval would panic time.NewTicker.
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			if h.ClientCount() == 0 {
				continue
			}
			payload, err := build(now)
			if err != nil {
				logrus.WithError(err).Warn("stats tick build failed")
				continue
			}
			h.Broadcast(payload)
		}
	}
}

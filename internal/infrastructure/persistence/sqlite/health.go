package sqlite

import (
	"context"
	"time"

	"go.uber.org/atomic"

	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/logging"
)

const defaultHealthInterval = 5 * time.Second

// HealthMonitor pings the database on an interval and reports availability
// transitions to a listener. The first probe always reports.
type HealthMonitor struct {
	provider port.DatabaseProvider
	listener port.AvailabilityListener
	interval time.Duration

	available atomic.Bool
	probed    atomic.Bool
	failures  atomic.Int64
}

// NewHealthMonitor creates a monitor. interval <= 0 selects the default.
func NewHealthMonitor(provider port.DatabaseProvider, listener port.AvailabilityListener, interval time.Duration) *HealthMonitor {
	if interval <= 0 {
		interval = defaultHealthInterval
	}
	return &HealthMonitor{provider: provider, listener: listener, interval: interval}
}

// Available reports the result of the latest probe.
func (m *HealthMonitor) Available() bool {
	return m.available.Load()
}

// ConsecutiveFailures returns how many probes failed since the last success.
func (m *HealthMonitor) ConsecutiveFailures() int64 {
	return m.failures.Load()
}

// Check runs one probe and notifies the listener when availability changed.
func (m *HealthMonitor) Check(ctx context.Context) bool {
	ok := m.probe(ctx)
	if ok {
		m.failures.Store(0)
	} else {
		m.failures.Inc()
	}

	first := !m.probed.Swap(true)
	prev := m.available.Swap(ok)
	if first || prev != ok {
		log := logging.FromContext(ctx)
		if ok {
			log.Info().Msg("database available")
		} else {
			log.Warn().Int64("failures", m.failures.Load()).Msg("database unavailable")
		}
		if m.listener != nil {
			m.listener.DatabaseAvailabilityChanged(ok)
		}
	}
	return ok
}

// Run probes until ctx is cancelled.
func (m *HealthMonitor) Run(ctx context.Context) {
	m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

func (m *HealthMonitor) probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	db, err := m.provider.DB(probeCtx)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("database probe: open failed")
		return false
	}
	if err := db.PingContext(probeCtx); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("database probe: ping failed")
		return false
	}
	return true
}

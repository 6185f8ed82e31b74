package poller

import (
	"context"
	"sync"
	"time"

	"github.com/consultacr/app-fiscal/internal/logging"
	"github.com/consultacr/app-fiscal/internal/models"
	"github.com/consultacr/app-fiscal/internal/observability"
	"go.uber.org/zap"
)

// ProbeFunc issues one lightweight upstream request and reports its
// round-trip time.
type ProbeFunc func(ctx context.Context) (time.Duration, error)

// Poller probes one upstream on a fixed interval, independent of user
// lookups. A manual CheckNow produces the same state transition as the
// timer. Any failure is recorded uniformly as down, without latency.
type Poller struct {
	probe    ProbeFunc
	interval time.Duration
	logger   *logging.SafeLogger

	mu   sync.RWMutex
	last models.APIHealth

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a poller; Start begins the schedule.
func New(probe ProbeFunc, interval time.Duration) *Poller {
	return &Poller{
		probe:    probe,
		interval: interval,
		logger:   logging.NewSafeLogger("status_poller"),
	}
}

// Start launches the recurring probe, beginning with an immediate check.
func (p *Poller) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		p.CheckNow(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.CheckNow(ctx)
			}
		}
	}()
}

// Stop cancels the recurring schedule and waits for it to wind down.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}

// CheckNow runs one probe immediately and records the outcome.
func (p *Poller) CheckNow(ctx context.Context) models.APIHealth {
	latency, err := p.probe(ctx)

	sample := models.APIHealth{CheckedAt: time.Now()}
	if err != nil {
		p.logger.Warn("upstream probe failed", zap.Error(err))
		observability.UpstreamUp.Set(0)
	} else {
		sample.OK = true
		sample.LatencyMS = latency.Milliseconds()
		observability.UpstreamUp.Set(1)
		observability.UpstreamProbeLatency.Set(latency.Seconds())
	}

	p.mu.Lock()
	p.last = sample
	p.mu.Unlock()

	return sample
}

// Last returns the most recent probe sample. The zero value means no probe
// has completed yet.
func (p *Poller) Last() models.APIHealth {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

package poller

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kevontheweb/ut61e-plus-logger/internal/ut61e"
)

// the meter's physical display refreshes about six times a second;
// polling faster only re-reads the same frame
const DEFAULT_POLL_HZ = 6.0
const DEFAULT_WINDOW_SIZE = 200

// Source yields one measurement per poll round-trip. Both the real
// meter and the simulator satisfy it.
type Source interface {
	GetMeasurement() (*ut61e.Measurement, error)
}

// Poller runs the poll/decode cycle on one goroutine and publishes the
// latest measurement plus a rolling window of recent values. Run is
// the only writer; any number of readers may call Snapshot.
type Poller struct {
	source     Source
	logger     *zap.Logger
	limiter    *rate.Limiter
	windowSize int

	mu     sync.Mutex
	latest *ut61e.Measurement
	window []float64
}

func New(source Source, pollHz float64, windowSize int, logger *zap.Logger) *Poller {
	if pollHz <= 0 {
		pollHz = DEFAULT_POLL_HZ
	}
	if windowSize <= 0 {
		windowSize = DEFAULT_WINDOW_SIZE
	}

	return &Poller{
		source:     source,
		logger:     logger,
		limiter:    rate.NewLimiter(rate.Limit(pollHz), 1),
		windowSize: windowSize,
	}
}

// Run polls until the context is cancelled. Cycles that yield nothing
// are simply skipped; the next tick retries.
func (p *Poller) Run(ctx context.Context) error {
	for {
		if err := p.limiter.Wait(ctx); err != nil {
			return err
		}

		m, err := p.source.GetMeasurement()
		if err != nil {
			p.logger.Debug("no measurement this cycle", zap.Error(err))
			continue
		}

		p.publish(m)
	}
}

func (p *Poller) publish(m *ut61e.Measurement) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.latest = m
	p.window = append(p.window, m.Value)
	if len(p.window) > p.windowSize {
		copy(p.window, p.window[1:])
		p.window = p.window[:len(p.window)-1]
	}
}

// Snapshot returns the latest measurement (nil before the first good
// poll) and a copy of the rolling value window, oldest first.
func (p *Poller) Snapshot() (*ut61e.Measurement, []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	window := make([]float64, len(p.window))
	copy(window, p.window)
	return p.latest, window
}

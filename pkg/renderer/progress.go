package renderer

import (
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/log"
)

// progressTracker counts outstanding sample jobs and reports them at Notice,
// the default log level
type progressTracker struct {
	mu          sync.Mutex
	outstanding int
	total       int
	interval    time.Duration
	lastReport  time.Time
	logger      log.Logger
}

func newProgressTracker(total int, logger log.Logger) *progressTracker {
	return &progressTracker{
		outstanding: total,
		total:       total,
		interval:    time.Second,
		logger:      logger,
	}
}

// complete marks one job as finished and returns the remaining count
func (p *progressTracker) complete() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.outstanding--
	now := time.Now()
	if p.logger != nil && (p.outstanding == 0 || now.Sub(p.lastReport) >= p.interval) {
		p.logger.Noticef("samples remaining: %d/%d", p.outstanding, p.total)
		p.lastReport = now
	}
	return p.outstanding
}

// remaining returns the number of jobs not yet finished
func (p *progressTracker) remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outstanding
}

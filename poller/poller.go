// Package poller provides the dashboard auto-refresh: a two-state
// (idle/polling) cancellable schedule with at most one active timer per
// client run.
package poller

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Poller arms a recurring refresh. Arm performs an immediate refresh and then
// schedules one every interval; Disarm stops the schedule eagerly. Re-arming
// always passes through the idle state first, so two timers can never run at
// once. A refresh already in flight when Disarm is called may still resolve;
// callers guard against applying its result to a page that is no longer
// visible.
type Poller struct {
	mu       sync.Mutex
	interval time.Duration
	cron     *cron.Cron
	log      *zap.Logger
}

func New(interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{interval: interval, log: logger}
}

// Arm cancels any existing schedule, runs refresh once immediately, then
// schedules it every interval. refresh must contain its own error handling:
// a failing tick renders its own inline error and must not panic.
func (p *Poller) Arm(refresh func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	refresh()

	c := cron.New()
	spec := fmt.Sprintf("@every %s", p.interval)
	if _, err := c.AddFunc(spec, refresh); err != nil {
		// Only reachable with a malformed interval from configuration.
		p.log.Error("poller: bad schedule", zap.String("spec", spec), zap.Error(err))
		return
	}
	c.Start()
	p.cron = c
	p.log.Debug("poller: armed", zap.Duration("interval", p.interval))
}

// Disarm stops the recurring schedule. Safe to call when already idle.
func (p *Poller) Disarm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Active reports whether a schedule is currently armed.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cron != nil
}

func (p *Poller) stopLocked() {
	if p.cron != nil {
		p.cron.Stop()
		p.cron = nil
		p.log.Debug("poller: disarmed")
	}
}

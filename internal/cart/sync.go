package cart

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type SyncState int

const (
	SyncIdle SyncState = iota
	SyncPending
	SyncInFlight
)

func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncPending:
		return "pending"
	case SyncInFlight:
		return "in-flight"
	default:
		return fmt.Sprintf("SyncState(%d)", int(s))
	}
}

// debouncer is the pending-write state machine:
// Idle -> Pending(deadline) -> InFlight -> Idle, or back to Pending when the
// cart changed while the write was in flight.
type debouncer struct {
	state    SyncState
	deadline time.Time
	rearm    bool
}

// schedule pushes the deadline to now+window.
func (d *debouncer) schedule(now time.Time, window time.Duration) {
	d.deadline = now.Add(window)
	if d.state == SyncInFlight {
		d.rearm = true
		return
	}
	d.state = SyncPending
}

func (d *debouncer) due(now time.Time) bool {
	return d.state == SyncPending && !now.Before(d.deadline)
}

func (d *debouncer) begin() {
	d.state = SyncInFlight
	d.rearm = false
}

func (d *debouncer) finish() {
	if d.state != SyncInFlight {
		// reset while the write was in flight
		return
	}
	if d.rearm {
		d.state = SyncPending
		d.rearm = false
		return
	}
	d.state = SyncIdle
}

func (d *debouncer) reset() {
	d.state = SyncIdle
	d.rearm = false
	d.deadline = time.Time{}
}

func (e *Engine) SyncState() SyncState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.sync.state
}

// Flush pushes the cart to the server when the debounce deadline has passed.
// It reports whether a push was attempted. Push failures are logged and dropped.
func (e *Engine) Flush(ctx context.Context) bool {
	attempted, err := e.push(ctx, false)
	if err != nil {
		e.logger.Warn("cart sync failed", zap.Error(err))
	}
	return attempted
}

// SyncNow pushes a pending cart without waiting for the deadline, e.g. before the process exits.
func (e *Engine) SyncNow(ctx context.Context) error {
	if _, err := e.push(ctx, true); err != nil {
		return err
	}
	return nil
}

func (e *Engine) push(ctx context.Context, force bool) (bool, error) {
	e.mu.Lock()
	ready := e.sync.due(e.now()) || (force && e.sync.state == SyncPending)
	if !ready {
		e.mu.Unlock()
		return false, nil
	}
	if _, ok := e.identity.UserID(); !ok {
		e.sync.reset()
		e.mu.Unlock()
		return false, nil
	}

	snapshot := e.cart.Clone()
	e.sync.begin()
	e.mu.Unlock()

	err := e.server.PutCart(ctx, snapshot)

	e.mu.Lock()
	e.sync.finish()
	e.mu.Unlock()

	if err != nil {
		return true, fmt.Errorf("server.PutCart: %w", err)
	}
	return true, nil
}

// Run drives Flush from a ticker until ctx is done.
func (e *Engine) Run(ctx context.Context) {
	interval := e.debounce / 4
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.Flush(ctx)
		}
	}
}

// Package privacy governs whether the player's hole cards render face-up
// or masked. A reveal lasts a fixed duration and then auto-hides.
package privacy

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Keeper tracks hole-card visibility. Reveals never stack: a reveal while
// already visible cancels the pending hide and reschedules it from now.
type Keeper struct {
	mu      sync.Mutex
	clock   quartz.Clock
	ttl     time.Duration
	logger  *log.Logger
	timer   *quartz.Timer
	visible bool
	until   time.Time
	gen     int
	expired chan struct{}
	closed  bool
}

// NewKeeper creates a hidden keeper. The clock is injected so tests can
// drive expiry deterministically.
func NewKeeper(clock quartz.Clock, ttl time.Duration, logger *log.Logger) *Keeper {
	return &Keeper{
		clock:   clock,
		ttl:     ttl,
		logger:  logger.WithPrefix("privacy"),
		expired: make(chan struct{}, 1),
	}
}

// Reveal makes the hole cards visible until now plus the fixed duration
// and returns the expiry. A pending hide is cancelled and rescheduled.
func (k *Keeper) Reveal() time.Time {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return time.Time{}
	}
	if k.timer != nil {
		k.timer.Stop()
	}
	k.gen++
	gen := k.gen
	k.visible = true
	k.until = k.clock.Now().Add(k.ttl)
	k.timer = k.clock.AfterFunc(k.ttl, func() {
		k.expire(gen)
	})
	k.logger.Debug("hole cards revealed", "until", k.until)
	return k.until
}

// Hide masks the hole cards immediately and cancels any pending expiry
func (k *Keeper) Hide() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.hideLocked()
}

// Visible reports whether the hole cards are currently face-up
func (k *Keeper) Visible() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.visible
}

// RevealedUntil returns the pending expiry while visible
func (k *Keeper) RevealedUntil() (time.Time, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.visible {
		return time.Time{}, false
	}
	return k.until, true
}

// Expired delivers a signal each time a reveal lapses on its own, so an
// event loop can redraw. Manual hides do not signal.
func (k *Keeper) Expired() <-chan struct{} {
	return k.expired
}

// Close cancels any pending expiry. The keeper must not fire after the
// owning screen is torn down.
func (k *Keeper) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.closed = true
	k.hideLocked()
}

func (k *Keeper) hideLocked() {
	if k.timer != nil {
		k.timer.Stop()
		k.timer = nil
	}
	k.gen++
	k.visible = false
	k.until = time.Time{}
}

// expire is the scheduled hide. The generation guard drops callbacks that
// lost a race with Stop.
func (k *Keeper) expire(gen int) {
	k.mu.Lock()
	if k.closed || gen != k.gen {
		k.mu.Unlock()
		return
	}
	k.visible = false
	k.until = time.Time{}
	k.timer = nil
	k.mu.Unlock()

	k.logger.Debug("reveal expired, hiding hole cards")
	select {
	case k.expired <- struct{}{}:
	default:
	}
}

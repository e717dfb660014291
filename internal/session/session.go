// Package session owns the hand-entry state for the lifetime of a route
// scope. Screens borrow the scope; navigating away and back does not touch
// it. This replaces the original app's ambient context with an injected
// object so tests can construct isolated instances.
package session

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/chipbook/chipbook/internal/entry"
	"github.com/chipbook/chipbook/internal/privacy"
)

// Scope holds everything that must outlive an individual screen mount:
// the card slots, the consent flag, hole-card visibility and the context
// bounding in-flight analysis requests.
type Scope struct {
	store   *entry.Store
	consent bool
	keeper  *privacy.Keeper
	ctx     context.Context
	cancel  context.CancelFunc
	logger  *log.Logger
}

// NewScope creates a scope with an empty store and hidden hole cards
func NewScope(clock quartz.Clock, revealTTL time.Duration, logger *log.Logger) *Scope {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scope{
		store:  entry.NewStore(),
		keeper: privacy.NewKeeper(clock, revealTTL, logger),
		ctx:    ctx,
		cancel: cancel,
		logger: logger.WithPrefix("session"),
	}
}

// Store returns the card slot store
func (s *Scope) Store() *entry.Store {
	return s.store
}

// Consent reports whether the user accepted the analysis consent
func (s *Scope) Consent() bool {
	return s.consent
}

// SetConsent records the consent flag
func (s *Scope) SetConsent(v bool) {
	s.consent = v
}

// Privacy returns the hole-card visibility keeper
func (s *Scope) Privacy() *privacy.Keeper {
	return s.keeper
}

// Validate derives the current validation flags and hints
func (s *Scope) Validate() entry.Validation {
	return entry.Evaluate(s.store, s.consent)
}

// Context bounds outstanding analysis requests; it is cancelled when the
// scope closes so requests never outlive their owner.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Reset clears the entry state: cards, consent and any active reveal
func (s *Scope) Reset() {
	s.logger.Debug("Resetting hand entry state")
	s.store.Clear()
	s.consent = false
	s.keeper.Hide()
}

// Close tears the scope down, cancelling the reveal timer and any
// in-flight analysis request
func (s *Scope) Close() {
	s.keeper.Close()
	s.cancel()
}

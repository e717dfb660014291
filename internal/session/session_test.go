package session

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipbook/chipbook/internal/deck"
	"github.com/chipbook/chipbook/internal/entry"
)

func newTestScope(t *testing.T) *Scope {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	scope := NewScope(quartz.NewMock(t), 30*time.Second, logger)
	t.Cleanup(scope.Close)
	return scope
}

func TestScope(t *testing.T) {
	t.Run("state persists across borrowers", func(t *testing.T) {
		scope := newTestScope(t)

		// One screen writes, another reads: same store either way.
		scope.Store().Set(entry.Slot{Group: entry.Hand, Index: 0}, deck.NewCard(deck.Spades, deck.Ace))
		scope.SetConsent(true)

		assert.Equal(t, 1, scope.Store().Filled(entry.Hand))
		assert.True(t, scope.Consent())
	})

	t.Run("reset clears cards, consent and reveal", func(t *testing.T) {
		scope := newTestScope(t)
		scope.Store().Set(entry.Slot{Group: entry.Community, Index: 2}, deck.NewCard(deck.Hearts, deck.Nine))
		scope.SetConsent(true)
		scope.Privacy().Reveal()

		scope.Reset()

		assert.Equal(t, 0, scope.Store().Filled(entry.Community))
		assert.False(t, scope.Consent())
		assert.False(t, scope.Privacy().Visible())
	})

	t.Run("validate reflects store and consent", func(t *testing.T) {
		scope := newTestScope(t)
		v := scope.Validate()
		assert.False(t, v.Eligible)
		assert.Contains(t, v.Hints, "please accept consent")
	})

	t.Run("close cancels the request context", func(t *testing.T) {
		scope := newTestScope(t)
		require.NoError(t, scope.Context().Err())

		scope.Close()

		assert.Error(t, scope.Context().Err())
	})
}

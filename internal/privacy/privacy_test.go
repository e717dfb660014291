package privacy

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ttl = 30 * time.Second

func newTestKeeper(t *testing.T) (*Keeper, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	k := NewKeeper(clock, ttl, logger)
	t.Cleanup(k.Close)
	return k, clock
}

func TestKeeper(t *testing.T) {
	ctx := context.Background()

	t.Run("starts hidden", func(t *testing.T) {
		k, _ := newTestKeeper(t)
		assert.False(t, k.Visible())
		_, ok := k.RevealedUntil()
		assert.False(t, ok)
	})

	t.Run("reveal auto-hides after exactly the fixed duration", func(t *testing.T) {
		k, clock := newTestKeeper(t)

		until := k.Reveal()
		require.True(t, k.Visible())
		assert.Equal(t, clock.Now().Add(ttl), until)

		clock.Advance(ttl - time.Millisecond).MustWait(ctx)
		assert.True(t, k.Visible(), "must stay visible until the deadline")

		clock.Advance(time.Millisecond).MustWait(ctx)
		assert.False(t, k.Visible())

		select {
		case <-k.Expired():
		default:
			t.Fatal("expected an expiry signal")
		}
	})

	t.Run("second reveal resets the timer instead of stacking", func(t *testing.T) {
		k, clock := newTestKeeper(t)

		k.Reveal()
		clock.Advance(ttl / 2).MustWait(ctx)
		k.Reveal()

		// The original deadline passes; the reveal must survive it.
		clock.Advance(ttl / 2).MustWait(ctx)
		assert.True(t, k.Visible())
		select {
		case <-k.Expired():
			t.Fatal("stale expiry fired")
		default:
		}

		clock.Advance(ttl / 2).MustWait(ctx)
		assert.False(t, k.Visible())

		// Exactly one transition fired.
		<-k.Expired()
		select {
		case <-k.Expired():
			t.Fatal("duplicate expiry fired")
		default:
		}
	})

	t.Run("manual hide cancels the pending expiry", func(t *testing.T) {
		k, clock := newTestKeeper(t)

		k.Reveal()
		k.Hide()
		assert.False(t, k.Visible())

		clock.Advance(ttl).MustWait(ctx)
		select {
		case <-k.Expired():
			t.Fatal("cancelled expiry fired")
		default:
		}
	})

	t.Run("close stops future reveals and expiries", func(t *testing.T) {
		k, clock := newTestKeeper(t)

		k.Reveal()
		k.Close()
		assert.False(t, k.Visible())

		k.Reveal()
		assert.False(t, k.Visible(), "reveal after close is a no-op")

		clock.Advance(ttl).MustWait(ctx)
		select {
		case <-k.Expired():
			t.Fatal("expiry fired after close")
		default:
		}
	})
}

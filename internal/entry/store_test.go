package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipbook/chipbook/internal/deck"
)

func TestStore(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		s := NewStore()
		for _, slot := range AllSlots() {
			_, ok := s.Get(slot)
			assert.False(t, ok, "slot %v should start empty", slot)
		}
		assert.Equal(t, 0, s.Filled(Hand))
		assert.Equal(t, 0, s.Filled(Community))
	})

	t.Run("set and get round trip", func(t *testing.T) {
		s := NewStore()
		card := deck.NewCard(deck.Spades, deck.Ace)
		slot := Slot{Group: Hand, Index: 1}

		s.Set(slot, card)

		got, ok := s.Get(slot)
		require.True(t, ok)
		assert.Equal(t, card, got)
		assert.Equal(t, 1, s.Filled(Hand))
	})

	t.Run("set replaces rather than appends", func(t *testing.T) {
		s := NewStore()
		slot := Slot{Group: Community, Index: 0}

		s.Set(slot, deck.NewCard(deck.Hearts, deck.Two))
		s.Set(slot, deck.NewCard(deck.Clubs, deck.Nine))

		got, ok := s.Get(slot)
		require.True(t, ok)
		assert.Equal(t, deck.NewCard(deck.Clubs, deck.Nine), got)
		assert.Equal(t, 1, s.Filled(Community))
	})

	t.Run("capacity is fixed at two plus five", func(t *testing.T) {
		s := NewStore()
		// Hammer every slot repeatedly; counts can never exceed capacity.
		for i := 0; i < 3; i++ {
			for _, slot := range AllSlots() {
				s.Set(slot, deck.NewCard(deck.Diamonds, deck.King))
			}
		}
		assert.Equal(t, HandSlots, s.Filled(Hand))
		assert.Equal(t, CommunitySlots, s.Filled(Community))
		assert.Len(t, s.Cards(), HandSlots+CommunitySlots)
	})

	t.Run("duplicates are storable", func(t *testing.T) {
		s := NewStore()
		card := deck.NewCard(deck.Spades, deck.Ace)

		s.Set(Slot{Group: Hand, Index: 0}, card)
		s.Set(Slot{Group: Community, Index: 0}, card)

		assert.Len(t, s.Cards(), 2)
	})

	t.Run("clear empties everything", func(t *testing.T) {
		s := NewStore()
		s.Set(Slot{Group: Hand, Index: 0}, deck.NewCard(deck.Spades, deck.Ace))
		s.Set(Slot{Group: Community, Index: 4}, deck.NewCard(deck.Hearts, deck.Ten))

		s.Clear()

		assert.Equal(t, 0, s.Filled(Hand))
		assert.Equal(t, 0, s.Filled(Community))
		assert.Empty(t, s.Cards())
	})

	t.Run("out of range slots read as empty", func(t *testing.T) {
		s := NewStore()
		_, ok := s.Get(Slot{Group: Hand, Index: 5})
		assert.False(t, ok)
		_, ok = s.Get(Slot{Group: Community, Index: -1})
		assert.False(t, ok)
	})
}

func TestAllSlotsScanOrder(t *testing.T) {
	slots := AllSlots()
	require.Len(t, slots, HandSlots+CommunitySlots)

	assert.Equal(t, Slot{Group: Hand, Index: 0}, slots[0])
	assert.Equal(t, Slot{Group: Hand, Index: 1}, slots[1])
	for i := 0; i < CommunitySlots; i++ {
		assert.Equal(t, Slot{Group: Community, Index: i}, slots[HandSlots+i])
	}
}

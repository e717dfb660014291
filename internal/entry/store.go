// Package entry holds the hand-entry state for the Poker AI screen: the
// card slots, the two-stage rank/suit picker and the derived validation
// flags that gate submission.
package entry

import (
	"fmt"

	"github.com/chipbook/chipbook/internal/deck"
)

// Group identifies which row of slots a card belongs to
type Group int

const (
	Hand Group = iota
	Community
)

// String returns the display name of a slot group
func (g Group) String() string {
	switch g {
	case Hand:
		return "hand"
	case Community:
		return "community"
	default:
		return "unknown"
	}
}

// Slot counts are fixed: two hole cards, five board cards
// (flop is the first three, then turn and river).
const (
	HandSlots      = 2
	CommunitySlots = 5
	// MinCommunity is how many board cards submission requires
	MinCommunity = 3
)

// Slot addresses a single card position
type Slot struct {
	Group Group
	Index int
}

// String returns a display form like "community 3"
func (s Slot) String() string {
	return fmt.Sprintf("%s %d", s.Group, s.Index+1)
}

// AllSlots returns every slot in scan order: hand slots by ascending
// index, then community slots by ascending index.
func AllSlots() []Slot {
	slots := make([]Slot, 0, HandSlots+CommunitySlots)
	for i := 0; i < HandSlots; i++ {
		slots = append(slots, Slot{Group: Hand, Index: i})
	}
	for i := 0; i < CommunitySlots; i++ {
		slots = append(slots, Slot{Group: Community, Index: i})
	}
	return slots
}

// Store holds the card slots being entered. Writes are never validated;
// duplicate identities are storable so the user sees a warning instead of
// having a pick silently refused.
type Store struct {
	hand      [HandSlots]*deck.Card
	community [CommunitySlots]*deck.Card
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Get returns the card in a slot, if any
func (s *Store) Get(slot Slot) (deck.Card, bool) {
	c := s.at(slot)
	if c == nil {
		return deck.Card{}, false
	}
	return *c, true
}

// Set writes a card into a slot, replacing whatever was there
func (s *Store) Set(slot Slot, card deck.Card) {
	switch slot.Group {
	case Hand:
		s.hand[slot.Index] = &card
	case Community:
		s.community[slot.Index] = &card
	}
}

// Clear empties every slot
func (s *Store) Clear() {
	s.hand = [HandSlots]*deck.Card{}
	s.community = [CommunitySlots]*deck.Card{}
}

// Filled returns how many slots in a group hold a card
func (s *Store) Filled(g Group) int {
	n := 0
	for _, slot := range AllSlots() {
		if slot.Group != g {
			continue
		}
		if _, ok := s.Get(slot); ok {
			n++
		}
	}
	return n
}

// Cards returns every filled card in scan order
func (s *Store) Cards() []deck.Card {
	var cards []deck.Card
	for _, slot := range AllSlots() {
		if c, ok := s.Get(slot); ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// GroupCards returns the filled cards of one group in slot order
func (s *Store) GroupCards(g Group) []deck.Card {
	var cards []deck.Card
	for _, slot := range AllSlots() {
		if slot.Group != g {
			continue
		}
		if c, ok := s.Get(slot); ok {
			cards = append(cards, c)
		}
	}
	return cards
}

func (s *Store) at(slot Slot) *deck.Card {
	switch slot.Group {
	case Hand:
		if slot.Index >= 0 && slot.Index < HandSlots {
			return s.hand[slot.Index]
		}
	case Community:
		if slot.Index >= 0 && slot.Index < CommunitySlots {
			return s.community[slot.Index]
		}
	}
	return nil
}

package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the symbol representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Name returns the full suit name used on the wire (e.g. "Spades")
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return "Unknown"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the compact display representation of a rank
func (r Rank) String() string {
	if r == Ten {
		return "T"
	}
	return r.Symbol()
}

// Symbol returns the rank symbol used on the wire (A, 2..10, J, Q, K)
func (r Rank) Symbol() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Ten {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the compact representation of a card (e.g. "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Label returns the wire representation of a card (e.g. "A of Spades"),
// the format the analysis endpoint expects.
func (c Card) Label() string {
	return fmt.Sprintf("%s of %s", c.Rank.Symbol(), c.Suit.Name())
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Ranks returns all thirteen ranks in picker order, ace first
func Ranks() []Rank {
	ranks := []Rank{Ace}
	for r := Two; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Suits returns all four suits in picker order
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// ParseLabel parses a wire label (e.g. "10 of Diamonds") back into a card
func ParseLabel(label string) (Card, error) {
	parts := strings.SplitN(label, " of ", 2)
	if len(parts) != 2 {
		return Card{}, fmt.Errorf("malformed card label %q", label)
	}

	var rank Rank
	found := false
	for _, r := range Ranks() {
		if strings.EqualFold(parts[0], r.Symbol()) {
			rank = r
			found = true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("unknown rank %q", parts[0])
	}

	for _, s := range Suits() {
		if strings.EqualFold(parts[1], s.Name()) {
			return Card{Suit: s, Rank: rank}, nil
		}
	}
	return Card{}, fmt.Errorf("unknown suit %q", parts[1])
}

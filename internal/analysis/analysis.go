// Package analysis talks to the external hand-analysis endpoint: it builds
// the wire request from the entry store, posts it, and classifies the
// response for the celebration effect.
package analysis

import (
	"fmt"

	"github.com/chipbook/chipbook/internal/entry"
)

// Request is the analysis request body. Cards are serialized as
// "<rank> of <suit>".
type Request struct {
	YourHand       []string `json:"your_hand"`
	CommunityCards []string `json:"community_cards"`
}

// Response is the analysis response body, rendered verbatim
type Response struct {
	Action       string `json:"action"`
	Potential    string `json:"potential"`
	Reasoning    string `json:"reasoning"`
	HandStrength string `json:"hand_strength"`
}

// BuildRequest serializes the entry store into a request. It fails when
// the store does not meet the submission shape (two hole cards, at least
// three community cards); the UI gates submission on the same conditions.
func BuildRequest(s *entry.Store) (Request, error) {
	hand := s.GroupCards(entry.Hand)
	if len(hand) != entry.HandSlots {
		return Request{}, fmt.Errorf("need %d hole cards, have %d", entry.HandSlots, len(hand))
	}
	community := s.GroupCards(entry.Community)
	if len(community) < entry.MinCommunity {
		return Request{}, fmt.Errorf("need at least %d community cards, have %d", entry.MinCommunity, len(community))
	}

	req := Request{
		YourHand:       make([]string, 0, len(hand)),
		CommunityCards: make([]string, 0, len(community)),
	}
	for _, c := range hand {
		req.YourHand = append(req.YourHand, c.Label())
	}
	for _, c := range community {
		req.CommunityCards = append(req.CommunityCards, c.Label())
	}
	return req, nil
}

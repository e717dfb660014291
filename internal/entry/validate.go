package entry

import "fmt"

// Validation is the derived view of the entry state. Local gates are
// advisory: they block submission with hints but never reject an edit.
type Validation struct {
	// Duplicate is true when any (rank, suit) identity is filled twice
	// across hand and community slots
	Duplicate bool
	// Eligible is true when submission is permitted
	Eligible bool
	// Hints lists every unmet gate so the UI can show all blocking
	// reasons at once instead of a single disabled control
	Hints []string
}

// Evaluate derives the duplicate flag, the submission eligibility and the
// per-gate hints from the store plus the consent flag. Eligibility
// requires a full hand, at least three community cards, consent and no
// duplicates.
func Evaluate(s *Store, consent bool) Validation {
	v := Validation{}

	seen := make(map[string]int)
	for _, c := range s.Cards() {
		seen[c.Label()]++
		if seen[c.Label()] > 1 {
			v.Duplicate = true
		}
	}

	if missing := HandSlots - s.Filled(Hand); missing > 0 {
		v.Hints = append(v.Hints, fmt.Sprintf("need %d more hand %s", missing, pluralCard(missing)))
	}
	if missing := MinCommunity - s.Filled(Community); missing > 0 {
		v.Hints = append(v.Hints, fmt.Sprintf("need %d more community %s", missing, pluralCard(missing)))
	}
	if !consent {
		v.Hints = append(v.Hints, "please accept consent")
	}
	if v.Duplicate {
		v.Hints = append(v.Hints, "duplicate cards selected")
	}

	v.Eligible = len(v.Hints) == 0
	return v
}

func pluralCard(n int) string {
	if n == 1 {
		return "card"
	}
	return "cards"
}

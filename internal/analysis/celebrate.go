package analysis

import "strings"

// celebratedStrengths is the allow-list of hand strengths worth a
// celebration. Matching is a case-insensitive substring test against the
// free-text hand_strength field, so any upstream wording or localization
// change silently disables the effect; that contract is fragile but
// matches the service as deployed.
var celebratedStrengths = []string{
	"straight flush",
	"royal flush",
	"four of a kind",
	"full house",
	"flush",
	"straight",
}

// Celebratory reports whether a hand-strength text warrants the
// celebration effect
func Celebratory(handStrength string) bool {
	text := strings.ToLower(handStrength)
	for _, s := range celebratedStrengths {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

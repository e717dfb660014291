package deck

import "testing"

func TestCardLabels(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		expected string
	}{
		{
			name:     "ace of spades",
			card:     Card{Suit: Spades, Rank: Ace},
			expected: "A of Spades",
		},
		{
			name:     "ten uses digits on the wire",
			card:     Card{Suit: Diamonds, Rank: Ten},
			expected: "10 of Diamonds",
		},
		{
			name:     "low card",
			card:     Card{Suit: Clubs, Rank: Two},
			expected: "2 of Clubs",
		},
		{
			name:     "face card",
			card:     Card{Suit: Hearts, Rank: Queen},
			expected: "Q of Hearts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.Label(); got != tt.expected {
				t.Errorf("Label() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Card
		wantErr  bool
	}{
		{
			name:     "ace of spades",
			input:    "A of Spades",
			expected: Card{Suit: Spades, Rank: Ace},
		},
		{
			name:     "ten of diamonds",
			input:    "10 of Diamonds",
			expected: Card{Suit: Diamonds, Rank: Ten},
		},
		{
			name:     "case insensitive",
			input:    "k of hearts",
			expected: Card{Suit: Hearts, Rank: King},
		},
		{
			name:    "invalid rank",
			input:   "X of Spades",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "A of Stars",
			wantErr: true,
		},
		{
			name:    "malformed label",
			input:   "AofSpades",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLabel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLabel(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLabel(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseLabel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range Suits() {
		for _, r := range Ranks() {
			card := NewCard(s, r)
			parsed, err := ParseLabel(card.Label())
			if err != nil {
				t.Fatalf("ParseLabel(%q): %v", card.Label(), err)
			}
			if parsed != card {
				t.Errorf("round trip %v -> %q -> %v", card, card.Label(), parsed)
			}
		}
	}
}

func TestPickerOrder(t *testing.T) {
	ranks := Ranks()
	if len(ranks) != 13 {
		t.Fatalf("expected 13 ranks, got %d", len(ranks))
	}
	if ranks[0] != Ace || ranks[1] != Two || ranks[12] != King {
		t.Errorf("unexpected rank order: %v", ranks)
	}
	if len(Suits()) != 4 {
		t.Fatalf("expected 4 suits, got %d", len(Suits()))
	}
}

package entry

import "github.com/chipbook/chipbook/internal/deck"

// Stage is the picker's current step. The picker is a single tagged value
// rather than independent nullable fields, so a chosen suit without a rank
// cannot exist.
type Stage int

const (
	Closed Stage = iota
	PickingRank
	PickingSuit
)

// String returns the stage name for logging
func (s Stage) String() string {
	switch s {
	case Closed:
		return "closed"
	case PickingRank:
		return "picking-rank"
	case PickingSuit:
		return "picking-suit"
	default:
		return "unknown"
	}
}

// Picker drives the two-stage card selection workflow over a store.
// Tapping a slot opens the rank stage for it; a rank moves to the suit
// stage; a suit commits the card and auto-advances to the next empty slot.
type Picker struct {
	store  *Store
	stage  Stage
	target Slot
	rank   deck.Rank
}

// NewPicker creates a closed picker over the given store
func NewPicker(store *Store) *Picker {
	return &Picker{store: store}
}

// Stage returns the current picker stage
func (p *Picker) Stage() Stage {
	return p.stage
}

// Target returns the slot being edited, if the picker is open
func (p *Picker) Target() (Slot, bool) {
	if p.stage == Closed {
		return Slot{}, false
	}
	return p.target, true
}

// PendingRank returns the chosen rank while in the suit stage
func (p *Picker) PendingRank() (deck.Rank, bool) {
	if p.stage != PickingSuit {
		return 0, false
	}
	return p.rank, true
}

// Tap opens the picker at the rank stage for a slot. Tapping while the
// picker is already open simply retargets it.
func (p *Picker) Tap(slot Slot) {
	p.stage = PickingRank
	p.target = slot
	p.rank = 0
}

// ChooseRank records the rank and moves to the suit stage. Ignored unless
// the picker is at the rank stage.
func (p *Picker) ChooseRank(r deck.Rank) {
	if p.stage != PickingRank {
		return
	}
	p.rank = r
	p.stage = PickingSuit
}

// ChooseSuit commits the pending card to the store and auto-advances to
// the next empty slot, or closes the picker when every slot is filled.
// Ignored unless the picker is at the suit stage.
func (p *Picker) ChooseSuit(s deck.Suit) {
	if p.stage != PickingSuit {
		return
	}
	written := p.target
	p.store.Set(written, deck.NewCard(s, p.rank))

	next, ok := nextEmpty(p.store, written)
	if !ok {
		p.stage = Closed
		p.target = Slot{}
		p.rank = 0
		return
	}
	p.stage = PickingRank
	p.target = next
	p.rank = 0
}

// Cancel closes the picker without writing anything
func (p *Picker) Cancel() {
	p.stage = Closed
	p.target = Slot{}
	p.rank = 0
}

// nextEmpty scans for the first empty slot in the fixed order (hand slots
// ascending, then community ascending), excluding the slot just written.
func nextEmpty(store *Store, exclude Slot) (Slot, bool) {
	for _, slot := range AllSlots() {
		if slot == exclude {
			continue
		}
		if _, ok := store.Get(slot); !ok {
			return slot, true
		}
	}
	return Slot{}, false
}

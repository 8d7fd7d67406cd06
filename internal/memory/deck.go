package memory

import (
	"math/rand"

	"github.com/vovakirdan/tui-memory/internal/catalog"
)

// Deal assigns every card to exactly two slots.
//
// len(slots)/2 distinct ids are drawn from the catalog without replacement.
// Each copy goes to a random slot; when that slot is taken the index walks
// forward (wrapping) to the next free one. The walk skews placement toward
// higher indices after collisions, which is acceptable for a card game.
//
// On error the slots are left untouched.
func Deal(slots []*Slot, cat *catalog.Catalog, rng *rand.Rand) error {
	n := len(slots)
	if n == 0 || n%2 != 0 {
		return &DealError{Slots: n}
	}
	pairs := n / 2
	if cat.Len() < pairs {
		return &InsufficientCatalogError{Need: pairs, Have: cat.Len()}
	}

	for _, s := range slots {
		s.CardID = Unassigned
	}

	ids := cat.IDs()
	perm := rng.Perm(len(ids))
	for p := 0; p < pairs; p++ {
		id := ids[perm[p]]
		for copyN := 0; copyN < 2; copyN++ {
			i := rng.Intn(n)
			for slots[i].Assigned() {
				i = (i + 1) % n
			}
			slots[i].CardID = id
		}
	}
	return nil
}

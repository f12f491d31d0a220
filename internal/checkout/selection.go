package checkout

import "storefront/internal/cart"

// Selection tracks which cart lines participate in checkout. Lines start
// selected; unselected lines are excluded from the order total entirely,
// which is what makes partial checkout work.
type Selection struct {
	AllSelected bool            `json:"allSelected"`
	Picked      map[string]bool `json:"picked"`
}

// NewSelection builds the initial selection for the given cart lines, every
// line selected.
func NewSelection(lines []cart.Line) Selection {
	sel := Selection{
		AllSelected: true,
		Picked:      make(map[string]bool, len(lines)),
	}
	for _, l := range lines {
		sel.Picked[l.CartID] = true
	}
	return sel
}

// ToggleAll flips every entry to the opposite of the current select-all
// flag.
func (s *Selection) ToggleAll() {
	s.AllSelected = !s.AllSelected
	for id := range s.Picked {
		s.Picked[id] = s.AllSelected
	}
}

// Toggle flips a single entry. Turning any entry off clears the select-all
// flag; turning the last unselected entry on restores it.
func (s *Selection) Toggle(cartID string) {
	if _, ok := s.Picked[cartID]; !ok {
		return
	}
	s.Picked[cartID] = !s.Picked[cartID]
	s.AllSelected = s.allPicked()
}

// Sync reconciles the selection with the current cart lines: entries for
// removed lines are pruned so stale selected state never leaks into
// subtotal math, and lines added since the last sync default to selected.
func (s *Selection) Sync(lines []cart.Line) {
	current := make(map[string]bool, len(lines))
	for _, l := range lines {
		current[l.CartID] = true
		if _, ok := s.Picked[l.CartID]; !ok {
			s.Picked[l.CartID] = true
		}
	}
	for id := range s.Picked {
		if !current[id] {
			delete(s.Picked, id)
		}
	}
	s.AllSelected = s.allPicked()
}

// SelectedIDs returns the selected cart ids in the order their lines appear
// in the cart. Bulk actions rely on this ordering.
func (s *Selection) SelectedIDs(lines []cart.Line) []string {
	var ids []string
	for _, l := range lines {
		if s.Picked[l.CartID] {
			ids = append(ids, l.CartID)
		}
	}
	return ids
}

// Reset clears the selection after a bulk action. Every entry is marked
// explicitly unselected rather than dropped: a later sync prunes the
// removed lines but must not default the survivors back to selected, so
// lines that stayed in the cart remain out of the total until the customer
// reselects them.
func (s *Selection) Reset() {
	s.AllSelected = false
	for id := range s.Picked {
		s.Picked[id] = false
	}
}

func (s *Selection) allPicked() bool {
	if len(s.Picked) == 0 {
		return false
	}
	for _, picked := range s.Picked {
		if !picked {
			return false
		}
	}
	return true
}

// SelectedSubtotal sums price * quantity over the lines whose selection
// flag is true.
func SelectedSubtotal(lines []cart.Line, sel Selection) float64 {
	var total float64
	for _, l := range lines {
		if sel.Picked[l.CartID] {
			total += l.Price * float64(l.Quantity)
		}
	}
	return total
}

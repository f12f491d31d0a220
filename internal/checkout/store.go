package checkout

import (
	"sync"

	"storefront/internal/cart"
)

// session is the per-user checkout state: which lines are selected and
// which discount currently applies. It lives for the session, unlike the
// cart itself which is durable.
type session struct {
	selection      Selection
	appliedCode    string
	appliedPercent int
}

// SessionStore holds checkout sessions keyed by user id. It is an explicit
// injectable container rather than ambient global state, so services and
// tests construct their own. All mutation happens under the store lock;
// accessors hand out copies.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uint]*session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uint]*session)}
}

// locked; creates an empty session on first access.
func (st *SessionStore) get(userID uint) *session {
	s, ok := st.sessions[userID]
	if !ok {
		s = &session{selection: Selection{Picked: make(map[string]bool)}}
		st.sessions[userID] = s
	}
	return s
}

// Sync reconciles the user's selection with the current cart lines and
// returns a snapshot. First access selects everything.
func (st *SessionStore) Sync(userID uint, lines []cart.Line) Selection {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.get(userID)
	s.selection.Sync(lines)
	return copySelection(s.selection)
}

func (st *SessionStore) ToggleAll(userID uint) Selection {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.get(userID)
	s.selection.ToggleAll()
	return copySelection(s.selection)
}

func (st *SessionStore) Toggle(userID uint, cartID string) Selection {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.get(userID)
	s.selection.Toggle(cartID)
	return copySelection(s.selection)
}

// ResetSelection clears the selection after a bulk action.
func (st *SessionStore) ResetSelection(userID uint) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.get(userID).selection.Reset()
}

// SetDiscount records the applied code and percent.
func (st *SessionStore) SetDiscount(userID uint, code string, percent int) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.get(userID)
	s.appliedCode = code
	s.appliedPercent = percent
}

// Discount returns the currently applied code and percent.
func (st *SessionStore) Discount(userID uint) (string, int) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.get(userID)
	return s.appliedCode, s.appliedPercent
}

// Drop discards a user's checkout session, e.g. on logout.
func (st *SessionStore) Drop(userID uint) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}

func copySelection(sel Selection) Selection {
	out := Selection{
		AllSelected: sel.AllSelected,
		Picked:      make(map[string]bool, len(sel.Picked)),
	}
	for id, picked := range sel.Picked {
		out.Picked[id] = picked
	}
	return out
}

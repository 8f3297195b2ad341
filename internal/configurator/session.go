package configurator

import (
	"errors"
	"sync"
	"time"

	"github.com/Sayedtaha55/ray-eg/internal/catalog"
)

var ErrNoOpenSession = errors.New("no open configurator session")

// Session is one open configurator: an immutable catalog snapshot plus
// the selection being edited. It exists only between open and
// commit/cancel; committed lines never read it again.
type Session struct {
	Snapshot *catalog.Snapshot
	State    SelectionState
	OpenedAt time.Time
}

// SessionManager holds at most one open session per owner. Opening a new
// session discards the prior one (last-open-wins); cancel is a local
// discard with nothing to undo.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// clone detaches a session from the manager's mutable copy. The snapshot
// pointer is shared (snapshots are immutable); the selection, including
// the add-on slice Toggle rewrites in place, is copied.
func (s *Session) clone() *Session {
	out := *s
	out.State.Addons = append([]AddonPick(nil), s.State.Addons...)
	return &out
}

func (m *SessionManager) Open(owner string, snap *catalog.Snapshot) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := &Session{
		Snapshot: snap,
		State:    DefaultSelection(snap),
		OpenedAt: time.Now(),
	}
	m.sessions[owner] = session
	return session.clone()
}

// Get returns a copy of the open session. Callers read it freely while
// concurrent PickVariant/ToggleAddon calls mutate the stored one.
func (m *SessionManager) Get(owner string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[owner]
	if !ok {
		return nil, ErrNoOpenSession
	}
	return session.clone(), nil
}

// Cancel closes the session without touching the cart.
func (m *SessionManager) Cancel(owner string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, owner)
}

// Take removes and returns the session for commit. Once deleted no
// mutator can reach it, so the caller owns the returned value outright.
func (m *SessionManager) Take(owner string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[owner]
	if !ok {
		return nil, ErrNoOpenSession
	}
	delete(m.sessions, owner)
	return session, nil
}

// PickVariant replaces the variant choice. Switching menu types carries
// the size over when it still exists under the new type, otherwise the
// type's first size is picked.
func (m *SessionManager) PickVariant(owner string, choice VariantChoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[owner]
	if !ok {
		return ErrNoOpenSession
	}

	if sel, isMenu := choice.(MenuSelection); isMenu {
		sizes := SizesForType(session.Snapshot, sel.TypeID)
		if len(sizes) == 0 {
			sel.SizeID = ""
		} else {
			found := false
			for _, s := range sizes {
				if s.ID == sel.SizeID {
					found = true
					break
				}
			}
			if !found {
				sel.SizeID = sizes[0].ID
			}
		}
		choice = sel
	}

	session.State.Choice = choice
	return nil
}

func (m *SessionManager) ToggleAddon(owner, optionID, variantID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[owner]
	if !ok {
		return ErrNoOpenSession
	}
	session.State.Toggle(optionID, variantID)
	return nil
}

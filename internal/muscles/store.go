package muscles

import (
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownMuscle = errors.New("unknown muscle id")
	ErrUnknownView   = errors.New("unknown anatomical view")
)

// Selection is the browser-visible snapshot of one session's selector
// state. MuscleIDs keeps toggle order.
type Selection struct {
	MuscleIDs []string `json:"muscleIds"`
	View      string   `json:"view"`
}

type sessionSelection struct {
	selected   map[string]bool
	order      []string
	view       string
	lastActive time.Time
}

// SelectionStore keeps per-session muscle selections in memory. The
// state is deliberately not persisted: a service restart drops it, the
// same way a page reload drops the selector state in the browser.
type SelectionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionSelection
	ttl      time.Duration
}

func NewSelectionStore(ttl time.Duration) *SelectionStore {
	return &SelectionStore{
		sessions: make(map[string]*sessionSelection),
		ttl:      ttl,
	}
}

func (s *SelectionStore) session(token string) *sessionSelection {
	sel, ok := s.sessions[token]
	if !ok {
		sel = &sessionSelection{
			selected: make(map[string]bool),
			view:     ViewFront,
		}
		s.sessions[token] = sel
	}
	sel.lastActive = time.Now()
	return sel
}

func (sel *sessionSelection) snapshot() Selection {
	ids := make([]string, len(sel.order))
	copy(ids, sel.order)
	return Selection{
		MuscleIDs: ids,
		View:      sel.view,
	}
}

// Toggle flips one muscle in or out of the selection. Toggling the same
// id twice restores the previous selection.
func (s *SelectionStore) Toggle(token, muscleID string) (Selection, error) {
	if !IsValidID(muscleID) {
		return Selection{}, ErrUnknownMuscle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.session(token)
	if sel.selected[muscleID] {
		delete(sel.selected, muscleID)
		for i, id := range sel.order {
			if id == muscleID {
				sel.order = append(sel.order[:i], sel.order[i+1:]...)
				break
			}
		}
	} else {
		sel.selected[muscleID] = true
		sel.order = append(sel.order, muscleID)
	}

	return sel.snapshot(), nil
}

func (s *SelectionStore) Clear(token string) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.session(token)
	sel.selected = make(map[string]bool)
	sel.order = nil

	return sel.snapshot()
}

// SetView switches the anatomical view. The selection itself survives
// the switch.
func (s *SelectionStore) SetView(token, view string) (Selection, error) {
	if !IsValidView(view) {
		return Selection{}, ErrUnknownView
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.session(token)
	sel.view = view

	return sel.snapshot(), nil
}

// ApplyPreset replaces the whole selection with the preset's muscle
// groups. Ids unknown to the catalog are skipped.
func (s *SelectionStore) ApplyPreset(token string, muscleIDs []string) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.session(token)
	sel.selected = make(map[string]bool)
	sel.order = nil
	for _, id := range muscleIDs {
		if !IsValidID(id) {
			log.Warnf("apply preset: skipping unknown muscle id %q", id)
			continue
		}
		if sel.selected[id] {
			continue
		}
		sel.selected[id] = true
		sel.order = append(sel.order, id)
	}

	return sel.snapshot()
}

func (s *SelectionStore) Selection(token string) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(token).snapshot()
}

// ScanAndClean drops selections idle for longer than the store TTL.
func (s *SelectionStore) ScanAndClean() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, sel := range s.sessions {
		if time.Since(sel.lastActive) > s.ttl {
			delete(s.sessions, token)
		}
	}
}

package sessions

import (
	"sync"

	"komani-booking/internal/domain/booking"
	"komani-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotFound = errs.New("booking session not found")

// Store keeps in-progress booking selections in process memory. Sessions are
// short-lived: created when the booking page opens, dropped on confirmation.
// Each selection has a single logical owner, but the map itself is shared
// across request goroutines and so is guarded.
type Store struct {
	mu         sync.RWMutex
	selections map[uuid.UUID]*booking.Selection
}

func NewStore() *Store {
	return &Store{
		selections: make(map[uuid.UUID]*booking.Selection),
	}
}

func (s *Store) Create(sel *booking.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.selections[sel.ID()]; exists {
		return errs.New("booking session already exists")
	}
	s.selections[sel.ID()] = sel.Clone()
	return nil
}

// Get returns a copy; callers never see store-held state directly.
func (s *Store) Get(id uuid.UUID) (*booking.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel, ok := s.selections[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sel.Clone(), nil
}

// Update applies mutate to the stored selection under the store lock, so a
// status guard inside mutate (for example BeginSubmission) is atomic with
// respect to concurrent submits. When mutate fails the selection is left as
// it was.
func (s *Store) Update(id uuid.UUID, mutate func(*booking.Selection) error) (*booking.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.selections[id]
	if !ok {
		return nil, ErrNotFound
	}

	working := sel.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	s.selections[id] = working
	return working.Clone(), nil
}

func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selections[id]; !ok {
		return ErrNotFound
	}
	delete(s.selections, id)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selections)
}

package person

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"people/internal/people/models"
	id "people/pkg/domain"
	"people/pkg/platform/sentinel"
)

// Error Contract:
// - Return ErrNotFound when the requested person does not exist
// - Return ErrConflict when Create targets an id already present
// InMemory keeps people in insertion order.
type InMemory struct {
	mu     sync.RWMutex
	people map[id.PersonID]models.Person
	order  []id.PersonID
}

// New constructs an empty in-memory person store.
func New() *InMemory {
	return &InMemory{people: make(map[id.PersonID]models.Person)}
}

func (s *InMemory) Create(_ context.Context, p models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[p.ID]; ok {
		return fmt.Errorf("person %s: %w", p.ID, sentinel.ErrConflict)
	}
	s.people[p.ID] = p
	s.order = append(s.order, p.ID)
	return nil
}

func (s *InMemory) Update(_ context.Context, p models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[p.ID]; !ok {
		return fmt.Errorf("person %s: %w", p.ID, sentinel.ErrNotFound)
	}
	s.people[p.ID] = p
	return nil
}

// Delete removes the person and returns the record that was stored.
func (s *InMemory) Delete(_ context.Context, personID id.PersonID) (models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.people[personID]
	if !ok {
		return models.Person{}, fmt.Errorf("person %s: %w", personID, sentinel.ErrNotFound)
	}
	delete(s.people, personID)
	s.order = slices.DeleteFunc(s.order, func(k id.PersonID) bool { return k == personID })
	return p, nil
}

func (s *InMemory) FindByID(_ context.Context, personID id.PersonID) (models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.people[personID]
	if !ok {
		return models.Person{}, fmt.Errorf("person %s: %w", personID, sentinel.ErrNotFound)
	}
	return p, nil
}

func (s *InMemory) List(_ context.Context) ([]models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Person, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.people[k])
	}
	return out, nil
}

func (s *InMemory) Exists(_ context.Context, personID id.PersonID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.people[personID]
	return ok, nil
}

package media

import (
	"context"
	"sync"
	"time"
)

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps items in process memory. It is used when no database is
// configured and in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	items  []*Item
	nextID int64
	now    func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		now:    time.Now,
	}
}

// List returns the owner's items in insertion order
func (s *MemoryStore) List(ctx context.Context, ownerID int64, filter Filter) ([]*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*Item, 0)
	for _, item := range s.items {
		if item.OwnerID == ownerID && filter.Matches(item) {
			items = append(items, clone(item))
		}
	}
	return items, nil
}

// Get returns one of the owner's items
func (s *MemoryStore) Get(ctx context.Context, ownerID, id int64) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(ownerID, id); i >= 0 {
		return clone(s.items[i]), nil
	}
	return nil, ErrNotFound
}

// Exists reports whether the owner already has an equivalent item
func (s *MemoryStore) Exists(ctx context.Context, ownerID int64, title string, year int, kind Kind) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	probe := &Item{OwnerID: ownerID, Title: title, Year: year, Kind: kind}
	for _, item := range s.items {
		if SameEntry(item, probe) {
			return true, nil
		}
	}
	return false, nil
}

// Insert assigns an id and creation time and stores the item
func (s *MemoryStore) Insert(ctx context.Context, item *Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if SameEntry(existing, item) {
			return ErrAlreadyExists
		}
	}

	item.ID = s.nextID
	item.CreatedAt = s.now()
	s.nextID++
	s.items = append(s.items, clone(item))
	return nil
}

// Update replaces a stored item. CreatedAt is kept from the stored copy.
func (s *MemoryStore) Update(ctx context.Context, item *Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(item.OwnerID, item.ID)
	if i < 0 {
		return ErrNotFound
	}
	for j, existing := range s.items {
		if j != i && SameEntry(existing, item) {
			return ErrAlreadyExists
		}
	}

	item.CreatedAt = s.items[i].CreatedAt
	s.items[i] = clone(item)
	return nil
}

// Delete removes one of the owner's items
func (s *MemoryStore) Delete(ctx context.Context, ownerID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(ownerID, id)
	if i < 0 {
		return ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

func (s *MemoryStore) indexOf(ownerID, id int64) int {
	for i, item := range s.items {
		if item.ID == id && item.OwnerID == ownerID {
			return i
		}
	}
	return -1
}

func clone(item *Item) *Item {
	c := *item
	if item.Description != nil {
		d := *item.Description
		c.Description = &d
	}
	if item.Rating != nil {
		r := *item.Rating
		c.Rating = &r
	}
	return &c
}

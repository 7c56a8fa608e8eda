package user

import (
	"sync"

	"github.com/google/uuid"
)

// WildcardID addresses every stored record in Delete.
const WildcardID = "*"

// Store exposes user persistence for HTTP handlers.
type Store interface {
	List() []User
	Find(id string) (User, bool)
	Insert(u User) (User, error)
	Replace(id string, u User) (User, error)
	Delete(id string) (wiped bool, err error)
	Len() int
}

// MemoryStore implements Store with a mutex-guarded slice kept in insertion order.
type MemoryStore struct {
	mu    sync.Mutex
	items []User
	newID func() string
}

// NewMemoryStore returns an empty MemoryStore that generates UUID v4 ids.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{newID: uuid.NewString}
}

// List returns a copy of all records in insertion order.
func (s *MemoryStore) List() []User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append(make([]User, 0, len(s.items)), s.items...)
}

// Find looks up a record by identifier.
func (s *MemoryStore) Find(id string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return User{}, false
}

// Insert appends u, generating an id when u has none. An empty id counts as
// none, so "" is never stored or checked for conflicts.
func (s *MemoryStore) Insert(u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = s.newID()
	} else if s.indexOf(u.ID) >= 0 {
		return User{}, ErrConflict
	}

	s.items = append(s.items, u)
	return u, nil
}

// Replace overwrites the record stored under id with u. The path id is only
// used when u carries no id of its own; an empty u.ID counts as none.
func (s *MemoryStore) Replace(id string, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = id
	}

	i := s.indexOf(id)
	if i < 0 {
		return User{}, ErrNotFound
	}
	s.items[i] = u
	return u, nil
}

// Delete removes the record stored under id. An exact match wins over the
// wildcard; WildcardID otherwise clears the store and reports wiped.
func (s *MemoryStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		return false, nil
	}

	if id != WildcardID {
		return false, ErrNotFound
	}
	if len(s.items) == 0 {
		return false, ErrEmpty
	}
	s.items = nil
	return true, nil
}

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// indexOf must be called with s.mu held.
func (s *MemoryStore) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

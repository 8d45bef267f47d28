// Package workspace holds the per-user in-flight image list used by the
// optimistic save flow: a confirmed generation appears here immediately under
// a temporary id, is swapped for the persisted record once the remote write
// succeeds, and is removed if the write fails.
package workspace

import (
	"sync"

	"design-service/internal/domain/image"

	"github.com/google/uuid"
)

type Store struct {
	mutex  sync.RWMutex
	byUser map[uuid.UUID][]*image.Image
}

func NewStore() *Store {
	return &Store{
		byUser: make(map[uuid.UUID][]*image.Image),
	}
}

// Add appends an optimistic record to the user's workspace.
func (s *Store) Add(userID uuid.UUID, img *image.Image) {
	s.mutex.Lock()
	s.byUser[userID] = append(s.byUser[userID], img)
	s.mutex.Unlock()
}

// Replace swaps the record with the given temporary id for the persisted one.
// Returns false when the temporary record is no longer present.
func (s *Store) Replace(userID, tempID uuid.UUID, persisted *image.Image) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	records := s.byUser[userID]
	for i, rec := range records {
		if rec.ID == tempID {
			records[i] = persisted
			return true
		}
	}

	return false
}

// Remove deletes the record with the given id, compensating a failed remote
// write. Returns false when no such record exists.
func (s *Store) Remove(userID, id uuid.UUID) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	records := s.byUser[userID]
	for i, rec := range records {
		if rec.ID == id {
			s.byUser[userID] = append(records[:i], records[i+1:]...)
			return true
		}
	}

	return false
}

// List returns a copy of the user's workspace records in insertion order.
func (s *Store) List(userID uuid.UUID) []*image.Image {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	records := s.byUser[userID]
	out := make([]*image.Image, len(records))
	copy(out, records)
	return out
}

// Contains reports whether a record with the given id is present.
func (s *Store) Contains(userID, id uuid.UUID) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, rec := range s.byUser[userID] {
		if rec.ID == id {
			return true
		}
	}

	return false
}

// ClearUser drops all workspace state for a user.
func (s *Store) ClearUser(userID uuid.UUID) {
	s.mutex.Lock()
	delete(s.byUser, userID)
	s.mutex.Unlock()
}

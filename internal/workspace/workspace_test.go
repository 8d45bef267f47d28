package workspace

import (
	"testing"

	"design-service/internal/domain/image"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStore_AddAndList(t *testing.T) {
	s := NewStore()
	userID := uuid.New()

	first := &image.Image{ID: uuid.New(), Name: "Living_Room"}
	second := &image.Image{ID: uuid.New(), Name: "Kitchen"}
	s.Add(userID, first)
	s.Add(userID, second)

	records := s.List(userID)
	assert.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
}

func TestStore_ReplaceSwapsTemporaryRecord(t *testing.T) {
	s := NewStore()
	userID := uuid.New()
	tempID := uuid.New()

	s.Add(userID, &image.Image{ID: tempID, Name: "pending"})

	persisted := &image.Image{ID: uuid.New(), Name: "pending"}
	assert.True(t, s.Replace(userID, tempID, persisted))

	assert.False(t, s.Contains(userID, tempID))
	assert.True(t, s.Contains(userID, persisted.ID))
	assert.Len(t, s.List(userID), 1)
}

func TestStore_ReplaceMissingRecord(t *testing.T) {
	s := NewStore()
	userID := uuid.New()

	assert.False(t, s.Replace(userID, uuid.New(), &image.Image{ID: uuid.New()}))
}

func TestStore_RemoveCompensatesFailedWrite(t *testing.T) {
	s := NewStore()
	userID := uuid.New()
	tempID := uuid.New()

	s.Add(userID, &image.Image{ID: tempID})
	assert.True(t, s.Remove(userID, tempID))
	assert.False(t, s.Contains(userID, tempID))
	assert.Empty(t, s.List(userID))

	assert.False(t, s.Remove(userID, tempID))
}

func TestStore_UsersAreIsolated(t *testing.T) {
	s := NewStore()
	alice := uuid.New()
	bob := uuid.New()

	s.Add(alice, &image.Image{ID: uuid.New()})

	assert.Len(t, s.List(alice), 1)
	assert.Empty(t, s.List(bob))

	s.ClearUser(alice)
	assert.Empty(t, s.List(alice))
}

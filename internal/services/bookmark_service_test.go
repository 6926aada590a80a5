package services

import (
	"testing"

	"github.com/alimgiray/hrboard/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func TestBookmarkAddIsIdempotent(t *testing.T) {
	service := NewBookmarkService(repositories.NewMemorySnapshotStore())

	service.Add(5)
	service.Add(5)
	service.Add(7)

	assert.Equal(t, []int{5, 7}, service.Bookmarks())
	assert.True(t, service.IsBookmarked(5))
	assert.False(t, service.IsBookmarked(9))
}

func TestBookmarkRemove(t *testing.T) {
	service := NewBookmarkService(repositories.NewMemorySnapshotStore())

	service.Add(1)
	service.Add(2)
	service.Add(3)

	service.Remove(2)
	assert.Equal(t, []int{1, 3}, service.Bookmarks())

	// Removing an absent id is harmless
	service.Remove(99)
	assert.Equal(t, []int{1, 3}, service.Bookmarks())
}

func TestBookmarkClear(t *testing.T) {
	service := NewBookmarkService(repositories.NewMemorySnapshotStore())

	service.Add(1)
	service.Add(2)
	service.Clear()

	assert.Empty(t, service.Bookmarks())
}

func TestBookmarkPersistence(t *testing.T) {
	snapshots := repositories.NewMemorySnapshotStore()

	first := NewBookmarkService(snapshots)
	first.Add(3)
	first.Add(8)

	second := NewBookmarkService(snapshots)
	assert.Equal(t, []int{3, 8}, second.Bookmarks(), "bookmarks survive a restart")
}

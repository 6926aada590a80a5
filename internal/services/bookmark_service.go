package services

import (
	"sync"

	"github.com/alimgiray/hrboard/internal/repositories"
	"github.com/alimgiray/hrboard/pkg/logger"
)

type bookmarkSnapshot struct {
	Bookmarks []int `json:"bookmarks"`
}

// BookmarkService holds the set of bookmarked employee ids, persisted in the
// bookmarks slot. Membership records only; removing a bookmark never touches
// the employee itself.
type BookmarkService struct {
	mu        sync.Mutex
	snapshots repositories.SnapshotStore
	bookmarks []int
}

func NewBookmarkService(snapshots repositories.SnapshotStore) *BookmarkService {
	s := &BookmarkService{
		snapshots: snapshots,
	}

	var snap bookmarkSnapshot
	found, err := snapshots.Load(repositories.SlotBookmarks, &snap)
	if err != nil {
		logger.WithError(err).Warnf("Failed to restore bookmark snapshot")
	} else if found {
		s.bookmarks = snap.Bookmarks
	}

	return s
}

// Bookmarks returns the bookmarked ids in insertion order
func (s *BookmarkService) Bookmarks() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out
}

// Add bookmarks an employee; already-bookmarked ids are a no-op
func (s *BookmarkService) Add(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookmarks {
		if existing == id {
			return
		}
	}

	s.bookmarks = append(s.bookmarks, id)
	s.persistLocked()
}

// Remove drops an employee from the bookmarks
func (s *BookmarkService) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.bookmarks[:0]
	for _, existing := range s.bookmarks {
		if existing != id {
			filtered = append(filtered, existing)
		}
	}

	s.bookmarks = filtered
	s.persistLocked()
}

// Clear removes every bookmark
func (s *BookmarkService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookmarks = nil
	s.persistLocked()
}

// IsBookmarked reports whether an employee id is bookmarked
func (s *BookmarkService) IsBookmarked(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookmarks {
		if existing == id {
			return true
		}
	}
	return false
}

func (s *BookmarkService) persistLocked() {
	snap := bookmarkSnapshot{Bookmarks: s.bookmarks}
	if err := s.snapshots.Save(repositories.SlotBookmarks, snap); err != nil {
		logger.WithError(err).Errorf("Failed to persist bookmark snapshot")
	}
}

package services

import (
	"sync"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/alimgiray/hrboard/internal/repositories"
	"github.com/alimgiray/hrboard/pkg/logger"
)

type profileSnapshot struct {
	Profile models.Profile `json:"profile"`
}

// ProfileService holds the dashboard user's own profile, persisted in the
// profile slot
type ProfileService struct {
	mu        sync.Mutex
	snapshots repositories.SnapshotStore
	profile   models.Profile
}

func NewProfileService(snapshots repositories.SnapshotStore) *ProfileService {
	s := &ProfileService{
		snapshots: snapshots,
		profile:   models.DefaultProfile(),
	}

	var snap profileSnapshot
	found, err := snapshots.Load(repositories.SlotProfile, &snap)
	if err != nil {
		logger.WithError(err).Warnf("Failed to restore profile snapshot")
	} else if found {
		s.profile = snap.Profile
	}

	return s
}

// Profile returns the current profile
func (s *ProfileService) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateProfile merges the partial update into the profile
func (s *ProfileService) UpdateProfile(update models.ProfileUpdate) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	update.Apply(&s.profile)
	s.persistLocked()
	return s.profile
}

// UpdateAvatar replaces just the avatar
func (s *ProfileService) UpdateAvatar(avatar string) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.Avatar = avatar
	s.persistLocked()
	return s.profile
}

// Reset replaces the profile with one derived from a logged-in user
func (s *ProfileService) Reset(firstName, lastName, email, role string) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = models.ProfileForUser(firstName, lastName, email, role)
	s.persistLocked()
	return s.profile
}

func (s *ProfileService) persistLocked() {
	snap := profileSnapshot{Profile: s.profile}
	if err := s.snapshots.Save(repositories.SlotProfile, snap); err != nil {
		logger.WithError(err).Errorf("Failed to persist profile snapshot")
	}
}

package services

import (
	"strings"
	"sync"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/alimgiray/hrboard/internal/repositories"
	"github.com/alimgiray/hrboard/pkg/logger"
	"github.com/google/uuid"
)

// Built-in mock accounts. The dashboard has no real identity provider; these
// exist so the demo can always be logged into.
var mockUsers = []models.Credential{
	{
		ID:       "1",
		Email:    "admin@company.com",
		Password: "admin123",
		Name:     "Admin User",
		Role:     "HR Manager",
	},
	{
		ID:       "2",
		Email:    "hr@company.com",
		Password: "hr123",
		Name:     "HR Specialist",
		Role:     "HR Specialist",
	},
	{
		ID:       "3",
		Email:    "manager@company.com",
		Password: "manager123",
		Name:     "Department Manager",
		Role:     "Manager",
	},
}

type authSnapshot struct {
	// Only registrations persist; whether someone is logged in lives in the
	// session cookie, never in the snapshot.
	RegisteredUsers []models.Credential `json:"registeredUsers"`
}

// AuthResult is what a login or register attempt resolves to
type AuthResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
}

// AuthService validates credentials against the mock corpus plus any
// registered accounts, persisted in the auth slot
type AuthService struct {
	mu         sync.Mutex
	snapshots  repositories.SnapshotStore
	registered []models.Credential
}

func NewAuthService(snapshots repositories.SnapshotStore) *AuthService {
	s := &AuthService{
		snapshots: snapshots,
	}

	var snap authSnapshot
	found, err := snapshots.Load(repositories.SlotAuth, &snap)
	if err != nil {
		logger.WithError(err).Warnf("Failed to restore auth snapshot")
	} else if found {
		s.registered = snap.RegisteredUsers
	}

	return s
}

// Login checks the credentials against mock users first, then registrations
func (s *AuthService) Login(email, password string) AuthResult {
	for _, candidate := range mockUsers {
		if candidate.Email == email && candidate.Password == password {
			user := candidate.User()
			return AuthResult{Success: true, Message: "Login successful", User: &user}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, candidate := range s.registered {
		if candidate.Email == email && candidate.Password == password {
			user := candidate.User()
			return AuthResult{Success: true, Message: "Login successful", User: &user}
		}
	}

	return AuthResult{Success: false, Message: "Invalid email or password"}
}

// Register creates a new account unless the email is already taken
func (s *AuthService) Register(name, email, password, role string) AuthResult {
	for _, existing := range mockUsers {
		if existing.Email == email {
			return AuthResult{Success: false, Message: "User with this email already exists"}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.registered {
		if existing.Email == email {
			return AuthResult{Success: false, Message: "User with this email already exists"}
		}
	}

	credential := models.Credential{
		ID:       uuid.New().String(),
		Email:    email,
		Password: password,
		Name:     name,
		Role:     role,
	}

	s.registered = append(s.registered, credential)
	s.persistLocked()

	user := credential.User()
	return AuthResult{Success: true, Message: "Account created successfully", User: &user}
}

// SplitName separates a display name into first and last for profile resets
func SplitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func (s *AuthService) persistLocked() {
	snap := authSnapshot{RegisteredUsers: s.registered}
	if err := s.snapshots.Save(repositories.SlotAuth, snap); err != nil {
		logger.WithError(err).Errorf("Failed to persist auth snapshot")
	}
}

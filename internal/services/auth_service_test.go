package services

import (
	"testing"

	"github.com/alimgiray/hrboard/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthLoginMockUsers(t *testing.T) {
	service := NewAuthService(repositories.NewMemorySnapshotStore())

	testCases := []struct {
		name     string
		email    string
		password string
		success  bool
		role     string
	}{
		{name: "admin login", email: "admin@company.com", password: "admin123", success: true, role: "HR Manager"},
		{name: "hr login", email: "hr@company.com", password: "hr123", success: true, role: "HR Specialist"},
		{name: "manager login", email: "manager@company.com", password: "manager123", success: true, role: "Manager"},
		{name: "wrong password", email: "admin@company.com", password: "nope", success: false},
		{name: "unknown email", email: "ghost@company.com", password: "admin123", success: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := service.Login(tc.email, tc.password)
			assert.Equal(t, tc.success, result.Success)
			if tc.success {
				require.NotNil(t, result.User)
				assert.Equal(t, tc.role, result.User.Role)
				assert.Equal(t, tc.email, result.User.Email)
			} else {
				assert.Nil(t, result.User)
				assert.Equal(t, "Invalid email or password", result.Message)
			}
		})
	}
}

func TestAuthRegisterAndLogin(t *testing.T) {
	service := NewAuthService(repositories.NewMemorySnapshotStore())

	result := service.Register("Jane Smith", "jane@company.com", "secret", "Employee")
	require.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.NotEmpty(t, result.User.ID)

	login := service.Login("jane@company.com", "secret")
	assert.True(t, login.Success)
	assert.Equal(t, "Jane Smith", login.User.Name)
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	service := NewAuthService(repositories.NewMemorySnapshotStore())

	t.Run("mock email taken", func(t *testing.T) {
		result := service.Register("Impostor", "admin@company.com", "secret", "Employee")
		assert.False(t, result.Success)
		assert.Equal(t, "User with this email already exists", result.Message)
	})

	t.Run("registered email taken", func(t *testing.T) {
		require.True(t, service.Register("Jane Smith", "jane@company.com", "secret", "Employee").Success)

		result := service.Register("Other Jane", "jane@company.com", "other", "Employee")
		assert.False(t, result.Success)
	})
}

func TestAuthRegistrationPersistence(t *testing.T) {
	snapshots := repositories.NewMemorySnapshotStore()

	first := NewAuthService(snapshots)
	require.True(t, first.Register("Jane Smith", "jane@company.com", "secret", "Employee").Success)

	second := NewAuthService(snapshots)
	login := second.Login("jane@company.com", "secret")
	assert.True(t, login.Success, "registrations survive a restart")
}

func TestSplitName(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedFirst string
		expectedLast  string
	}{
		{name: "two parts", input: "Jane Smith", expectedFirst: "Jane", expectedLast: "Smith"},
		{name: "single part", input: "Jane", expectedFirst: "Jane", expectedLast: ""},
		{name: "three parts", input: "Jane van Dyk", expectedFirst: "Jane", expectedLast: "van Dyk"},
		{name: "empty", input: "", expectedFirst: "", expectedLast: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := SplitName(tc.input)
			assert.Equal(t, tc.expectedFirst, first)
			assert.Equal(t, tc.expectedLast, last)
		})
	}
}

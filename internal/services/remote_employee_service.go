package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/alimgiray/hrboard/pkg/config"
	"github.com/alimgiray/hrboard/pkg/logger"
)

// NotFoundError is returned when a single-employee lookup misses. It is the
// only hard error the gateway surfaces; everything else degrades to fallback
// data.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee with ID %s not found", e.ID)
}

// rawUser is the directory API's user shape, fields we consume only
type rawUser struct {
	ID        int             `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Age       int             `json:"age"`
	Gender    string          `json:"gender"`
	Image     string          `json:"image"`
	Address   *models.Address `json:"address"`
	Phone     string          `json:"phone"`
}

type usersResponse struct {
	Users []rawUser `json:"users"`
}

// RemoteEmployeeService resolves the employee collection from the remote
// directory, falling back to deterministic generation when the directory is
// unreachable. The result is memoized in the injected cache, so at most one
// outbound call happens per cache lifetime.
type RemoteEmployeeService struct {
	cfg    config.DirectoryConfig
	cache  *DirectoryCache
	client *http.Client
}

func NewRemoteEmployeeService(cfg config.DirectoryConfig, cache *DirectoryCache) *RemoteEmployeeService {
	return &RemoteEmployeeService{
		cfg:   cfg,
		cache: cache,
		client: &http.Client{
			Timeout: cfg.FetchTimeout,
		},
	}
}

// FetchAll returns the full employee collection and whether it was served
// from fallback generation. Never returns an error: remote failures are
// absorbed here and converted into deterministic fallback data.
func (s *RemoteEmployeeService) FetchAll(ctx context.Context) ([]models.Employee, bool) {
	if employees, fallback, ok := s.cache.Get(); ok {
		return employees, fallback
	}

	employees, err := s.fetchRemote(ctx)
	if err != nil {
		logger.WithError(err).Warnf("Directory fetch failed, generating fallback employees")
		employees = GenerateEmployees(s.cfg.Seed, s.cfg.PageSize)
		s.cache.Set(employees, true)
		return employees, true
	}

	s.cache.Set(employees, false)
	return employees, false
}

// FetchOne looks up a single employee by its id rendered as a string
func (s *RemoteEmployeeService) FetchOne(ctx context.Context, id string) (*models.Employee, error) {
	employees, _ := s.FetchAll(ctx)

	for i := range employees {
		if fmt.Sprintf("%d", employees[i].ID) == id {
			return &employees[i], nil
		}
	}

	return nil, &NotFoundError{ID: id}
}

// ClearCache invalidates the memoized collection
func (s *RemoteEmployeeService) ClearCache() {
	s.cache.Invalidate()
}

// fetchRemote performs the single timeout-bounded directory request
func (s *RemoteEmployeeService) fetchRemote(ctx context.Context) ([]models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/users?limit=%d", s.cfg.BaseURL, s.cfg.PageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("directory responded with status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory response: %w", err)
	}

	var payload usersResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal directory response: %w", err)
	}

	if err := validateUsers(payload.Users); err != nil {
		return nil, fmt.Errorf("directory payload failed validation: %w", err)
	}

	return s.mapUsers(payload.Users), nil
}

// validateUsers rejects payloads that don't hold a usable user collection
func validateUsers(users []rawUser) error {
	if len(users) == 0 {
		return fmt.Errorf("empty users collection")
	}

	for i, user := range users {
		if user.ID <= 0 {
			return fmt.Errorf("user at index %d has invalid id %d", i, user.ID)
		}
		if user.FirstName == "" || user.LastName == "" || user.Email == "" {
			return fmt.Errorf("user %d is missing name or email", user.ID)
		}
	}

	return nil
}

// mapUsers converts raw directory records into employees, deriving the
// fields the directory doesn't carry.
func (s *RemoteEmployeeService) mapUsers(users []rawUser) []models.Employee {
	employees := make([]models.Employee, 0, len(users))

	for i, user := range users {
		department, rating := DeriveAssignment(s.cfg.Seed, user.ID, i)

		employees = append(employees, models.Employee{
			ID:                user.ID,
			FirstName:         user.FirstName,
			LastName:          user.LastName,
			Email:             user.Email,
			Age:               user.Age,
			Gender:            user.Gender,
			Image:             user.Image,
			Address:           user.Address,
			Phone:             user.Phone,
			Department:        department,
			PerformanceRating: rating,
		})
	}

	return employees
}

package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/alimgiray/hrboard/internal/repositories"
	"github.com/alimgiray/hrboard/pkg/logger"
)

// employeeSnapshot is the persisted slice of the store's state. Loading and
// error flags are transient and deliberately left out.
type employeeSnapshot struct {
	Employees      []models.Employee `json:"employees"`
	HasInitialized bool              `json:"hasInitialized"`
	LastFetchTime  *time.Time        `json:"lastFetchTime"`
}

// EmployeeService owns the canonical in-session employee collection. It
// decides when to consult the remote directory, applies local mutations, and
// snapshots its state into the employees slot so a restart inside the cache
// window never re-fetches.
type EmployeeService struct {
	mu        sync.Mutex
	remote    *RemoteEmployeeService
	snapshots repositories.SnapshotStore
	allocator IDAllocator
	ttl       time.Duration

	employees      []models.Employee
	isLoading      bool
	err            string
	hasInitialized bool
	lastFetchTime  *time.Time
	degraded       bool

	// now is swappable so tests can sit exactly on the TTL boundary
	now func() time.Time
}

func NewEmployeeService(remote *RemoteEmployeeService, snapshots repositories.SnapshotStore, allocator IDAllocator, ttl time.Duration) *EmployeeService {
	s := &EmployeeService{
		remote:    remote,
		snapshots: snapshots,
		allocator: allocator,
		ttl:       ttl,
		now:       time.Now,
	}

	s.restore()
	return s
}

// restore loads the persisted snapshot, if any, before the first fetch
func (s *EmployeeService) restore() {
	var snap employeeSnapshot
	found, err := s.snapshots.Load(repositories.SlotEmployees, &snap)
	if err != nil {
		logger.WithError(err).Warnf("Failed to restore employee snapshot")
		return
	}
	if !found {
		return
	}

	s.employees = snap.Employees
	s.hasInitialized = snap.HasInitialized
	s.lastFetchTime = snap.LastFetchTime
	s.reserveAboveMax()
}

// FetchEmployees runs one resolution cycle unless a cycle is already in
// flight or the cached collection is still fresh. Failures never leave the
// store empty: a minimal local fallback is installed instead.
func (s *EmployeeService) FetchEmployees(ctx context.Context) {
	s.mu.Lock()

	if s.isLoading {
		s.mu.Unlock()
		return
	}

	if len(s.employees) > 0 && s.lastFetchTime != nil && s.now().Sub(*s.lastFetchTime) < s.ttl {
		// Fresh enough; just drop any stale error
		s.err = ""
		s.mu.Unlock()
		return
	}

	s.isLoading = true
	s.err = ""
	s.mu.Unlock()

	// Network happens outside the lock; the isLoading flag keeps
	// overlapping callers out.
	employees, fallback := s.remote.FetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.isLoading = false
	s.hasInitialized = true

	if len(employees) > 0 {
		s.employees = employees
		now := s.now()
		s.lastFetchTime = &now
		s.degraded = fallback
		s.err = ""
		s.reserveAboveMax()
	} else {
		s.err = "employee directory returned no records"
		if len(s.employees) == 0 {
			s.employees = emergencyEmployees()
			s.degraded = true
			s.reserveAboveMax()
		}
	}

	s.persistLocked()
}

// Employees returns a copy of the current collection
func (s *EmployeeService) Employees() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// Employee looks up one entry by its id rendered as a string
func (s *EmployeeService) Employee(id string) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if fmt.Sprintf("%d", s.employees[i].ID) == id {
			e := s.employees[i]
			return &e, nil
		}
	}

	return nil, &NotFoundError{ID: id}
}

// AddEmployee appends a new record. A zero id gets one from the allocator;
// non-zero ids are trusted to be unique by the caller.
func (s *EmployeeService) AddEmployee(employee models.Employee) models.Employee {
	if employee.ID == 0 {
		employee.ID = s.allocator.Next()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = append(s.employees, employee)
	s.persistLocked()
	return employee
}

// UpdateEmployee merges the partial update into the matching entry. Returns
// false when no entry matches.
func (s *EmployeeService) UpdateEmployee(id int, update models.EmployeeUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID == id {
			update.Apply(&s.employees[i])
			s.persistLocked()
			return true
		}
	}

	return false
}

// ClearEmployees resets the store so the next fetch hits the directory again
func (s *EmployeeService) ClearEmployees() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = nil
	s.hasInitialized = false
	s.lastFetchTime = nil
	s.degraded = false
	s.err = ""
	s.persistLocked()
}

// Refresh drops the store and the gateway memo, then runs a fetch cycle.
// Unlike FetchEmployees this always goes over the wire.
func (s *EmployeeService) Refresh(ctx context.Context) {
	s.ClearEmployees()
	s.remote.ClearCache()
	s.FetchEmployees(ctx)
}

// IsLoading reports whether a resolution cycle is in flight
func (s *EmployeeService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// Error returns the current store-level error message, empty when healthy
func (s *EmployeeService) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Degraded reports whether the current collection came from fallback data
func (s *EmployeeService) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// HasInitialized reports whether at least one fetch attempt has resolved
func (s *EmployeeService) HasInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasInitialized
}

// persistLocked snapshots the durable fields; the caller holds the lock
func (s *EmployeeService) persistLocked() {
	snap := employeeSnapshot{
		Employees:      s.employees,
		HasInitialized: s.hasInitialized,
		LastFetchTime:  s.lastFetchTime,
	}

	if err := s.snapshots.Save(repositories.SlotEmployees, snap); err != nil {
		logger.WithError(err).Errorf("Failed to persist employee snapshot")
	}
}

// reserveAboveMax keeps locally allocated ids clear of the loaded collection
func (s *EmployeeService) reserveAboveMax() {
	max := 0
	for i := range s.employees {
		if s.employees[i].ID > max {
			max = s.employees[i].ID
		}
	}
	s.allocator.Reserve(max + 1)
}

// emergencyEmployees is the last-resort collection. Much simpler than the
// gateway's generator: the goal is only that the dashboard never renders
// zero rows because of a transient failure.
func emergencyEmployees() []models.Employee {
	names := [][2]string{
		{"Alex", "Morgan"},
		{"Jordan", "Lee"},
		{"Casey", "Brooks"},
		{"Riley", "Hayes"},
		{"Taylor", "Quinn"},
	}

	employees := make([]models.Employee, 0, len(names))
	for i, name := range names {
		employees = append(employees, models.Employee{
			ID:                i + 1,
			FirstName:         name[0],
			LastName:          name[1],
			Email:             fmt.Sprintf("%s.%s@example.com", name[0], name[1]),
			Age:               30 + i,
			Image:             "/placeholder.svg",
			Department:        models.Departments[i%len(models.Departments)],
			PerformanceRating: 3,
		})
	}

	return employees
}

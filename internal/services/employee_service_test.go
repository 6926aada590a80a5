package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/alimgiray/hrboard/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func newCountingDirectoryServer(t *testing.T, delay time.Duration) (*httptest.Server, *int32) {
	t.Helper()

	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		if delay > 0 {
			time.Sleep(delay)
		}
		w.Write([]byte(directoryPayload))
	}))
	t.Cleanup(server.Close)

	return server, &requests
}

func newTestEmployeeService(baseURL string, snapshots repositories.SnapshotStore, ttl time.Duration) *EmployeeService {
	cfg := directoryConfig(baseURL)
	cfg.CacheTTL = ttl
	remote := NewRemoteEmployeeService(cfg, NewDirectoryCache())
	return NewEmployeeService(remote, snapshots, NewCounterAllocator(1), ttl)
}

func TestFetchEmployeesCommitsResult(t *testing.T) {
	server, requests := newCountingDirectoryServer(t, 0)
	service := newTestEmployeeService(server.URL, repositories.NewMemorySnapshotStore(), time.Hour)

	service.FetchEmployees(context.Background())

	assert.Equal(t, int32(1), atomic.LoadInt32(requests))
	assert.Len(t, service.Employees(), 3)
	assert.True(t, service.HasInitialized())
	assert.False(t, service.Degraded())
	assert.Empty(t, service.Error())
}

func TestFetchEmployeesFreshnessWindow(t *testing.T) {
	server, requests := newCountingDirectoryServer(t, 0)
	service := newTestEmployeeService(server.URL, repositories.NewMemorySnapshotStore(), time.Hour)

	service.FetchEmployees(context.Background())
	assert.Equal(t, int32(1), atomic.LoadInt32(requests))

	// The gateway memo would hide a second cycle, so drop it: any further
	// resolution now has to go over the wire.
	service.remote.ClearCache()

	t.Run("Just inside the window", func(t *testing.T) {
		stamp := time.Now().Add(-(time.Hour - time.Millisecond))
		service.lastFetchTime = &stamp
		service.err = "stale failure"

		before := service.Employees()
		service.FetchEmployees(context.Background())

		assert.Equal(t, int32(1), atomic.LoadInt32(requests), "fresh data must not trigger a resolution")
		assert.Equal(t, before, service.Employees(), "collection must be untouched")
		assert.Empty(t, service.Error(), "freshness short-circuit clears stale errors")
	})

	t.Run("Just outside the window", func(t *testing.T) {
		stamp := time.Now().Add(-(time.Hour + time.Millisecond))
		service.lastFetchTime = &stamp

		service.FetchEmployees(context.Background())

		assert.Equal(t, int32(2), atomic.LoadInt32(requests), "stale data must trigger exactly one resolution")
	})
}

func TestFetchEmployeesLoadingGuard(t *testing.T) {
	server, requests := newCountingDirectoryServer(t, 100*time.Millisecond)
	service := newTestEmployeeService(server.URL, repositories.NewMemorySnapshotStore(), time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.FetchEmployees(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(requests), "overlapping calls must collapse into one cycle")
	assert.Len(t, service.Employees(), 3)
}

func TestFetchEmployeesEmergencyFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	// A zero page size makes the gateway's own fallback empty, which is the
	// only way the store ever sees an empty resolution.
	cfg := directoryConfig(server.URL)
	cfg.PageSize = 0
	remote := NewRemoteEmployeeService(cfg, NewDirectoryCache())
	service := NewEmployeeService(remote, repositories.NewMemorySnapshotStore(), NewCounterAllocator(1), time.Hour)

	service.FetchEmployees(context.Background())

	assert.NotEmpty(t, service.Error(), "empty resolution surfaces a store-level error")
	assert.True(t, service.HasInitialized())
	assert.True(t, service.Degraded())
	assert.NotEmpty(t, service.Employees(), "the store must never be left with zero rows")
}

func TestAddEmployee(t *testing.T) {
	server, _ := newCountingDirectoryServer(t, 0)
	service := newTestEmployeeService(server.URL, repositories.NewMemorySnapshotStore(), time.Hour)
	service.FetchEmployees(context.Background())

	t.Run("Allocates id above the roster", func(t *testing.T) {
		added := service.AddEmployee(models.Employee{FirstName: "New", LastName: "Hire", Email: "new.hire@example.com"})
		assert.Greater(t, added.ID, 3, "allocated id must clear the fetched collection")
		assert.Len(t, service.Employees(), 4)
	})

	t.Run("Keeps explicit ids", func(t *testing.T) {
		added := service.AddEmployee(models.Employee{ID: 42, FirstName: "Explicit", LastName: "Id", Email: "explicit@example.com"})
		assert.Equal(t, 42, added.ID)
	})
}

func TestUpdateEmployeeIsolatesById(t *testing.T) {
	server, _ := newCountingDirectoryServer(t, 0)
	service := newTestEmployeeService(server.URL, repositories.NewMemorySnapshotStore(), time.Hour)
	service.FetchEmployees(context.Background())

	before := service.Employees()

	age := 99
	assert.True(t, service.UpdateEmployee(2, models.EmployeeUpdate{Age: &age}))

	after := service.Employees()
	for i := range after {
		if after[i].ID == 2 {
			assert.Equal(t, 99, after[i].Age)
			assert.Equal(t, before[i].FirstName, after[i].FirstName, "other fields survive the merge")
		} else {
			assert.Equal(t, before[i], after[i], "only the matching entry changes")
		}
	}

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		assert.False(t, service.UpdateEmployee(999999, models.EmployeeUpdate{Age: &age}))
		assert.Equal(t, after, service.Employees())
	})
}

func TestClearEmployeesForcesRefetch(t *testing.T) {
	server, requests := newCountingDirectoryServer(t, 0)
	service := newTestEmployeeService(server.URL, repositories.NewMemorySnapshotStore(), time.Hour)

	service.FetchEmployees(context.Background())
	assert.Equal(t, int32(1), atomic.LoadInt32(requests))

	service.ClearEmployees()
	service.remote.ClearCache()
	assert.Empty(t, service.Employees())
	assert.False(t, service.HasInitialized())

	service.FetchEmployees(context.Background())
	assert.Equal(t, int32(2), atomic.LoadInt32(requests))
	assert.Len(t, service.Employees(), 3)
}

func TestRefreshAlwaysGoesOverTheWire(t *testing.T) {
	server, requests := newCountingDirectoryServer(t, 0)
	service := newTestEmployeeService(server.URL, repositories.NewMemorySnapshotStore(), time.Hour)

	service.FetchEmployees(context.Background())
	assert.Equal(t, int32(1), atomic.LoadInt32(requests))

	service.Refresh(context.Background())

	assert.Equal(t, int32(2), atomic.LoadInt32(requests), "refresh must bypass both the store TTL and the gateway memo")
	assert.Len(t, service.Employees(), 3)
	assert.True(t, service.HasInitialized())
}

func TestWarmRestartSkipsRefetchInsideTTL(t *testing.T) {
	server, requests := newCountingDirectoryServer(t, 0)
	snapshots := repositories.NewMemorySnapshotStore()

	first := newTestEmployeeService(server.URL, snapshots, time.Hour)
	first.FetchEmployees(context.Background())
	assert.Equal(t, int32(1), atomic.LoadInt32(requests))

	// A new service over the same snapshot store stands in for a process
	// restart. Fresh gateway cache, so any fetch would hit the server.
	second := newTestEmployeeService(server.URL, snapshots, time.Hour)
	second.FetchEmployees(context.Background())

	assert.Equal(t, int32(1), atomic.LoadInt32(requests), "warm restart inside the TTL must not re-fetch")
	assert.Equal(t, first.Employees(), second.Employees())
}

func TestSnapshotExcludesTransientFields(t *testing.T) {
	server, _ := newCountingDirectoryServer(t, 0)
	snapshots := repositories.NewMemorySnapshotStore()

	service := newTestEmployeeService(server.URL, snapshots, time.Hour)
	service.FetchEmployees(context.Background())

	var raw map[string]interface{}
	found, err := snapshots.Load(repositories.SlotEmployees, &raw)
	assert.NoError(t, err)
	assert.True(t, found)

	assert.Contains(t, raw, "employees")
	assert.Contains(t, raw, "hasInitialized")
	assert.Contains(t, raw, "lastFetchTime")
	assert.NotContains(t, raw, "isLoading")
	assert.NotContains(t, raw, "error")
}

package services

import (
	"sync"

	"github.com/alimgiray/hrboard/internal/models"
)

// DirectoryCache memoizes the first collection the remote directory resolves,
// so the process makes at most one outbound call per cache lifetime. Owned by
// the composition root and handed to the gateway explicitly.
type DirectoryCache struct {
	mu        sync.Mutex
	employees []models.Employee
	fallback  bool
	populated bool
}

func NewDirectoryCache() *DirectoryCache {
	return &DirectoryCache{}
}

// Get returns the memoized collection and whether it came from fallback
// generation. The third result is false when the cache is cold.
func (c *DirectoryCache) Get() ([]models.Employee, bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.populated {
		return nil, false, false
	}
	return c.employees, c.fallback, true
}

// Set memoizes a resolved collection
func (c *DirectoryCache) Set(employees []models.Employee, fallback bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.employees = employees
	c.fallback = fallback
	c.populated = true
}

// Invalidate empties the cache so the next fetch goes out again
func (c *DirectoryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.employees = nil
	c.fallback = false
	c.populated = false
}

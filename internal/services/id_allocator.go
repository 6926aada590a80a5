package services

import "sync"

// IDAllocator hands out unique integer ids for locally created records
type IDAllocator interface {
	Next() int

	// Reserve bumps the allocator so it never hands out anything below min
	Reserve(min int)
}

// CounterAllocator is a monotonic in-process IDAllocator
type CounterAllocator struct {
	mu   sync.Mutex
	next int
}

func NewCounterAllocator(start int) *CounterAllocator {
	return &CounterAllocator{
		next: start,
	}
}

// Next returns the next free id
func (a *CounterAllocator) Next() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.next
	a.next++
	return id
}

// Reserve makes sure future ids start at or above min
func (a *CounterAllocator) Reserve(min int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if min > a.next {
		a.next = min
	}
}

package workers

import (
	"context"
	"time"

	"github.com/alimgiray/hrboard/internal/services"
	"github.com/alimgiray/hrboard/pkg/logger"
)

// RefreshWorker keeps the employee cache warm by running a fetch cycle once
// per TTL window. The store's own freshness guard makes extra ticks free
// no-ops, so the worker never causes duplicate network calls.
type RefreshWorker struct {
	WorkerID string
	Running  bool
	StopChan chan struct{}

	employeeService *services.EmployeeService
	interval        time.Duration
}

// NewRefreshWorker creates a new refresh worker
func NewRefreshWorker(workerID string, employeeService *services.EmployeeService, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		WorkerID:        workerID,
		StopChan:        make(chan struct{}),
		employeeService: employeeService,
		interval:        interval,
	}
}

// Start begins the refresh worker process
func (w *RefreshWorker) Start(ctx context.Context) error {
	w.Running = true
	logger.Infof("Refresh worker %s started", w.WorkerID)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Warm the cache right away instead of waiting a full interval
	w.employeeService.FetchEmployees(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Infof("Refresh worker %s stopping due to context cancellation", w.WorkerID)
			return ctx.Err()
		case <-w.StopChan:
			logger.Infof("Refresh worker %s stopping", w.WorkerID)
			return nil
		case <-ticker.C:
			w.employeeService.FetchEmployees(ctx)
		}
	}
}

// Stop gracefully stops the worker
func (w *RefreshWorker) Stop() error {
	if w.Running {
		w.Running = false
		close(w.StopChan)
	}
	return nil
}

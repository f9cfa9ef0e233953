package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yourusername/kubedash/internal/datasource"
	"go.uber.org/zap"
)

// Refresher handles automatic snapshot refresh
type Refresher struct {
	dataSource      *datasource.AggregatedDataSource
	cache           *TTLCache
	refreshInterval time.Duration
	logger          *zap.Logger

	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.RWMutex
	isRunning  bool
	lastError  error
	lastUpdate time.Time
}

// NewRefresher creates a new snapshot refresher
func NewRefresher(
	dataSource *datasource.AggregatedDataSource,
	cache *TTLCache,
	refreshInterval time.Duration,
	logger *zap.Logger,
) *Refresher {
	ctx, cancel := context.WithCancel(context.Background())

	return &Refresher{
		dataSource:      dataSource,
		cache:           cache,
		refreshInterval: refreshInterval,
		logger:          logger,
		ctx:             ctx,
		cancel:          cancel,
	}
}

// Start begins the automatic refresh process
func (r *Refresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return fmt.Errorf("refresher already running")
	}

	r.logger.Info("Starting snapshot refresher",
		zap.Duration("interval", r.refreshInterval),
	)

	r.isRunning = true
	r.wg.Add(1)

	go r.run()

	return nil
}

// Stop stops the automatic refresh process
func (r *Refresher) Stop() error {
	r.mu.Lock()
	if !r.isRunning {
		r.mu.Unlock()
		return fmt.Errorf("refresher not running")
	}
	r.mu.Unlock()

	r.logger.Info("Stopping snapshot refresher")

	r.cancel()
	r.wg.Wait()

	r.mu.Lock()
	r.isRunning = false
	r.mu.Unlock()

	r.logger.Info("Snapshot refresher stopped")
	return nil
}

// run is the main refresh loop
func (r *Refresher) run() {
	defer r.wg.Done()

	// Do initial refresh immediately
	r.refresh()

	ticker := time.NewTicker(r.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			r.logger.Debug("Refresh loop exiting")
			return

		case <-ticker.C:
			r.refresh()
		}
	}
}

// refresh performs a single refresh operation
func (r *Refresher) refresh() {
	r.logger.Debug("Refreshing overview snapshot")

	startTime := time.Now()

	data, err := r.dataSource.GetOverviewData(r.ctx)
	if err != nil {
		r.mu.Lock()
		r.lastError = err
		r.mu.Unlock()

		r.logger.Error("Failed to refresh overview snapshot",
			zap.Error(err),
			zap.Duration("elapsed", time.Since(startTime)),
		)
		return
	}

	if err := r.cache.Set(r.ctx, data); err != nil {
		r.logger.Error("Failed to update cache",
			zap.Error(err),
		)
		return
	}

	r.mu.Lock()
	r.lastError = nil
	r.lastUpdate = time.Now()
	r.mu.Unlock()

	r.logger.Info("Overview snapshot refreshed successfully",
		zap.Duration("elapsed", time.Since(startTime)),
		zap.Int("namespaces", len(data.Namespaces)),
		zap.Int("nodes", len(data.Nodes)),
		zap.Int("pods", len(data.Pods)),
	)
}

// RefreshNow forces an immediate refresh
func (r *Refresher) RefreshNow() error {
	r.logger.Info("Forcing immediate refresh")
	r.refresh()

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastError
}

// GetStatus returns the current refresher status
func (r *Refresher) GetStatus() RefresherStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RefresherStatus{
		IsRunning:  r.isRunning,
		LastUpdate: r.lastUpdate,
		LastError:  r.lastError,
		Interval:   r.refreshInterval,
	}
}

// RefresherStatus represents the current state of the refresher
type RefresherStatus struct {
	IsRunning  bool
	LastUpdate time.Time
	LastError  error
	Interval   time.Duration
}

// SetInterval updates the refresh interval
func (r *Refresher) SetInterval(interval time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger.Info("Updating refresh interval",
		zap.Duration("old_interval", r.refreshInterval),
		zap.Duration("new_interval", interval),
	)

	r.refreshInterval = interval
}

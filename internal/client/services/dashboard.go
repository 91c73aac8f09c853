package services

import (
	"context"
	"sync"
	"time"

	"github.com/avelev/schoolguard/internal/client/api"
	"github.com/avelev/schoolguard/internal/client/models"
	"github.com/avelev/schoolguard/internal/logging"
)

// DefaultPollInterval is how often the dashboard refreshes while a
// consumer keeps its Run loop alive.
const DefaultPollInterval = 30 * time.Second

// DashboardService aggregates the backend collections into a display
// snapshot and keeps it fresh on a fixed interval.
//
// Contract:
//   - Fetch/Refresh: run one full aggregation cycle.
//   - Run: poll until the context is canceled (view unmount).
//   - Snapshot: last successfully built snapshot plus the last error,
//     if any. A failed cycle never clears a previous snapshot.
type DashboardService interface {
	Fetch(ctx context.Context) (*models.Snapshot, error)
	Refresh(ctx context.Context) (*models.Snapshot, error)
	Run(ctx context.Context)
	Snapshot() (*models.Snapshot, string)
	Stats(ctx context.Context) (*models.DashboardStats, error)
	Incidents(ctx context.Context) ([]models.Incident, error)
}

type dashboardService struct {
	client   api.Client
	logger   logging.Logger
	interval time.Duration

	mu         sync.Mutex
	nextGen    uint64
	appliedGen uint64
	snapshot   *models.Snapshot
	lastErr    string
}

func NewDashboardService(client api.Client, logger logging.Logger, interval time.Duration) DashboardService {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &dashboardService{
		client:   client,
		logger:   logger.With("component", "dashboard"),
		interval: interval,
	}
}

// Fetch runs one aggregation cycle: volunteers, incidents, and location
// counts, in that order. Any failure aborts the whole cycle. Each cycle
// carries a generation number; a slow response from an older cycle can
// never overwrite the result of a newer one.
func (d *dashboardService) Fetch(ctx context.Context) (*models.Snapshot, error) {
	gen := d.beginCycle()

	volunteers, err := d.client.GetVolunteers(ctx)
	if err != nil {
		return d.fail(ctx, gen, err)
	}

	incidents, err := d.client.GetIncidents(ctx)
	if err != nil {
		return d.fail(ctx, gen, err)
	}

	locations, err := d.client.GetIncidentCountsByLocation(ctx)
	if err != nil {
		return d.fail(ctx, gen, err)
	}

	return d.apply(gen, models.BuildSnapshot(volunteers, incidents, locations))
}

// Refresh re-invokes Fetch.
func (d *dashboardService) Refresh(ctx context.Context) (*models.Snapshot, error) {
	return d.Fetch(ctx)
}

// Run fetches immediately and then on every tick until ctx is canceled.
// Errors are logged and kept for Snapshot; the next tick is the only
// recovery mechanism.
func (d *dashboardService) Run(ctx context.Context) {
	if _, err := d.Fetch(ctx); err != nil {
		d.logger.Error(ctx, "dashboard fetch failed", "error", err)
	}

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := d.Fetch(ctx); err != nil {
				d.logger.Error(ctx, "dashboard fetch failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Snapshot returns the last good snapshot (possibly stale) and the last
// cycle's error message, empty when the last cycle succeeded.
func (d *dashboardService) Snapshot() (*models.Snapshot, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot, d.lastErr
}

func (d *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return d.client.GetDashboardStats(ctx)
}

func (d *dashboardService) Incidents(ctx context.Context) ([]models.Incident, error) {
	return d.client.GetIncidents(ctx)
}

func (d *dashboardService) beginCycle() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextGen++
	return d.nextGen
}

func (d *dashboardService) apply(gen uint64, snap *models.Snapshot) (*models.Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen <= d.appliedGen {
		// A newer cycle finished first; drop this result.
		return d.snapshot, nil
	}
	d.appliedGen = gen
	d.snapshot = snap
	d.lastErr = ""
	return snap, nil
}

func (d *dashboardService) fail(ctx context.Context, gen uint64, err error) (*models.Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen > d.appliedGen {
		d.appliedGen = gen
		d.lastErr = err.Error()
	}
	// Previous snapshot stays displayed, stale but available.
	return d.snapshot, err
}

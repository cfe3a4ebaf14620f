package jobs

import (
	"context"
	"log/slog"
	"sync"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/tracking"

	"github.com/robfig/cron/v3"
)

// TrackingFetchJob polls the tracking snapshot for one order every ten
// seconds and keeps the latest result for the consuming screen. A failed
// tick keeps the previous snapshot; once the order reports delivered the
// job stops itself.
type TrackingFetchJob struct {
	handler queries.GetTrackingSnapshotQueryHandler
	orderID int64
	view    tracking.View
	cron    *cron.Cron
	logger  *slog.Logger

	mu       sync.RWMutex
	latest   tracking.Snapshot
	hasFetch bool
}

// NewTrackingFetchJob creates a polling job for one order's tracking view.
func NewTrackingFetchJob(
	handler queries.GetTrackingSnapshotQueryHandler,
	orderID int64,
	view tracking.View,
	logger *slog.Logger,
) *TrackingFetchJob {
	return &TrackingFetchJob{
		handler: handler,
		orderID: orderID,
		view:    view,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "tracking_fetch_job", "order_id", orderID),
	}
}

// Start begins polling every ten seconds.
func (j *TrackingFetchJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		j.tick(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking fetch job started (running every 10 seconds)")
	return nil
}

// Stop stops the polling job. Safe to call after the job stopped itself.
func (j *TrackingFetchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking fetch job stopped")
}

// Latest returns the most recent snapshot and whether any fetch has
// succeeded yet.
func (j *TrackingFetchJob) Latest() (tracking.Snapshot, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.latest, j.hasFetch
}

func (j *TrackingFetchJob) tick(ctx context.Context) {
	query, err := queries.NewGetTrackingSnapshotQuery(j.orderID, j.view)
	if err != nil {
		j.logger.ErrorContext(ctx, "Tracking fetch job misconfigured", "error", err)
		return
	}

	snapshot, err := j.handler.Handle(ctx, query)
	if err != nil {
		// Keep presenting the last known snapshot.
		j.logger.WarnContext(ctx, "Tracking fetch failed", "error", err)
		return
	}

	j.mu.Lock()
	j.latest = snapshot
	j.hasFetch = true
	j.mu.Unlock()

	if snapshot.Delivered {
		j.logger.InfoContext(ctx, "Order delivered, stopping tracking poll")
		j.cron.Stop()
	}
}

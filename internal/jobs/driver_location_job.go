package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DriverLocationJob samples the driver's position every five seconds and
// pushes it to the delivery backend. Pushes are best-effort telemetry: every
// failure is logged and swallowed so the next tick always runs.
type DriverLocationJob struct {
	handler  commands.PushDriverLocationCommandHandler
	driverID string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDriverLocationJob creates a location push job for one driver.
func NewDriverLocationJob(
	handler commands.PushDriverLocationCommandHandler,
	driverID string,
	logger *slog.Logger,
) *DriverLocationJob {
	return &DriverLocationJob{
		handler:  handler,
		driverID: driverID,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "driver_location_job", "driver_id", driverID),
	}
}

// Start begins pushing every five seconds.
func (j *DriverLocationJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		j.tick(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver location job started (running every 5 seconds)")
	return nil
}

// Stop stops the location push job.
func (j *DriverLocationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver location job stopped")
}

func (j *DriverLocationJob) tick(ctx context.Context) {
	cmd, err := commands.NewPushDriverLocationCommand(j.driverID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Driver location job misconfigured", "error", err)
		return
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.WarnContext(ctx, "Location push failed", "error", err)
	}
}

package jobs

import (
	"fmt"
)

// JobManager coordinates the polling loops of one screen session. Either
// job may be nil when the corresponding role is not active: a customer
// session has no driver location job and a driver session may not track a
// customer order.
type JobManager struct {
	trackingFetchJob  *TrackingFetchJob
	driverLocationJob *DriverLocationJob
}

// NewJobManager creates a job manager over the session's jobs.
func NewJobManager(trackingFetchJob *TrackingFetchJob, driverLocationJob *DriverLocationJob) *JobManager {
	return &JobManager{
		trackingFetchJob:  trackingFetchJob,
		driverLocationJob: driverLocationJob,
	}
}

// StartAll starts every configured job.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.trackingFetchJob != nil {
		if err := jm.trackingFetchJob.Start(); err != nil {
			return fmt.Errorf("failed to start tracking fetch job: %w", err)
		}
	}

	if jm.driverLocationJob != nil {
		if err := jm.driverLocationJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			if jm.trackingFetchJob != nil {
				jm.trackingFetchJob.Stop()
			}
			return fmt.Errorf("failed to start driver location job: %w", err)
		}
	}

	return nil
}

// StopAll stops every configured job synchronously so no timer outlives the
// session.
func (jm *JobManager) StopAll() {
	if jm.driverLocationJob != nil {
		jm.driverLocationJob.Stop()
	}

	if jm.trackingFetchJob != nil {
		jm.trackingFetchJob.Stop()
	}
}

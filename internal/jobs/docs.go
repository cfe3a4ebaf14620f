// Package jobs provides the scheduled polling loops of the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to stand in for a push channel from the backends.
//
// # Available Jobs
//
// 1. TrackingFetchJob - Runs every 10 seconds to refresh one order's
// delivery tracking snapshot
// 2. DriverLocationJob - Runs every 5 seconds to sample and push the
// driver's position
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(trackingJob, driverLocationJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The tracking job absorbs fetch failures into its last known snapshot
//   and stops itself once the order is delivered
// - The location job logs and swallows push failures; a failed tick never
//   blocks the next one
//
// The two loops are independent: neither waits for or orders itself
// against the other.
package jobs

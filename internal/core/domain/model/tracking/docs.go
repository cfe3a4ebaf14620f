// Package tracking contains the live-delivery read model: the raw delivery
// record fetched from the delivery backend and the presentation snapshot
// derived from it. Snapshots are pure functions of their inputs; the polling
// loops rebuild them on every tick and never mutate shared state.
package tracking

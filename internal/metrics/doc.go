// Package metrics provides Prometheus collectors for the tracker daemon.
//
// Key metrics:
//   - poll cycle and poll error counts
//   - products fetched across all cycles
//   - API tokens left after the most recent response
package metrics

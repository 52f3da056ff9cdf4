// Package poller implements the product poll loop of the tracker daemon.
//
// The poller:
//   - Fetches all configured ASINs in one batched request per cycle
//   - Hands each product record to a ProductHandler
//   - Leaves request pacing to the API client's token handling
//   - Records cycle counts and token level when metrics are attached
package poller

// Package api provides the Keepa product-data API client.
//
// REST endpoints:
//   - https://api.keepa.com/product
//   - https://api.keepa.com/category/
//   - https://api.keepa.com/bestsellers
//   - https://api.keepa.com/seller
//   - https://api.keepa.com/token
//
// Every response carries the server's token accounting. Request pacing is
// driven entirely by that per-response state (429 plus refillIn), never
// by a client-side limiter.
package api

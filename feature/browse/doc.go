// Package browse exposes the loaded catalog over HTTP.
//
// # HTTP Endpoints
//
//   - GET /catalog/stats : totals, index sizes and top entries (cached).
//   - GET /catalog/machines/:name : one machine with its derived values.
//   - GET /catalog/top/:index?k=N : the N highest-count entries of an index.
//
// Stats and top answer 409 while no data is loaded.
package browse

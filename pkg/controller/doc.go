// Package controller holds the gin middlewares the API server stacks around
// its routes, and the pprof mux it mounts for profiling.
//
//   - Logger assigns a request ID, echoes it in X-Request-Id and writes an access log.
//   - Metrics records request count and latency per route template.
//   - CORS answers preflight requests and sets CORS headers for any or a fixed set of origins.
//   - Recovery answers a panicking handler with a JSON 500.
package controller

// Package timeouts defines the HTTP server timeouts shared by commands.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown bounds the final span flush on exit.
const TelemetryShutdown = 5 * time.Second

// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives or the
// listener fails, then shuts the server down within the configured timeout.
// Start and stop hooks receive the server's logger.
package httpserver

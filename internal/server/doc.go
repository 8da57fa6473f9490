// Package server runs the HTTP transport of the reference Remote Authority.
//
// It provides startup, signal handling, and graceful shutdown.
package server

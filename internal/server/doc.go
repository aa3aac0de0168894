// Package server runs the HTTP server of recipe-keeper.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server

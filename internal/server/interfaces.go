package server

// Server defines the lifecycle contract for the transport server managed by
// this package.
//
// RunServer blocks until a stop signal arrives or the listener fails, then
// shuts the server down.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

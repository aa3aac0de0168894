package server

type Server interface {
	// RunServer blocks until SIGTERM, SIGINT or SIGQUIT and then shuts
	// the server down.
	RunServer()

	Shutdown()
}

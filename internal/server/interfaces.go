package server

// Server is the reference backend process.
type Server interface {
	// RunServer serves until a stop signal arrives.
	RunServer()

	// Shutdown drains in-flight requests and stops listening.
	Shutdown()
}

package server

// Server is the process-level lifecycle of the notes backend.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down.
	RunServer()

	// Shutdown drains the HTTP server and stops the gRPC server.
	Shutdown()
}
